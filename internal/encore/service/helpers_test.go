package service

import (
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/metrics"
	"github.com/aussiebroadwan/encore/internal/encore/store/drivers/sqlite"
	"github.com/aussiebroadwan/encore/pkg/cryptox"
	"github.com/aussiebroadwan/encore/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type testEnv struct {
	clock   *fakeClock
	store   *sqlite.Store
	totp    *TOTPEngine
	mfa     *MFAService
	auth    *AuthService
	tokens  *jwtx.Issuer
	metrics metrics.Recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := newFakeClock()
	st := newTestStore(t)

	tokens, err := jwtx.NewHS256Issuer([]byte("0123456789abcdef0123456789abcdef"), "encore-test", time.Minute, clock.Now)
	require.NoError(t, err)

	engine := &TOTPEngine{Issuer: "Encore", Now: clock.Now}
	mfa := &MFAService{
		Store:      st,
		TOTP:       engine,
		Metrics:    metrics.Nop{},
		PendingTTL: DefaultPendingSetupTTL,
		Now:        clock.Now,
	}
	auth := &AuthService{
		Store:      st,
		Hasher:     cryptox.NewPasswordHasher("test-pepper"),
		Tokens:     tokens,
		MFA:        mfa,
		Metrics:    metrics.Nop{},
		TokenTTL:   15 * time.Minute,
		PartialTTL: 2 * time.Minute,
	}

	return &testEnv{
		clock:   clock,
		store:   st,
		totp:    engine,
		mfa:     mfa,
		auth:    auth,
		tokens:  tokens,
		metrics: metrics.Nop{},
	}
}

// code returns the current TOTP code for secret.
func (e *testEnv) code(t *testing.T, secret string) string {
	t.Helper()
	c, err := e.totp.CodeAt(secret, e.clock.Now())
	require.NoError(t, err)
	return c
}

// wrongCode returns a well-formed code that is not valid for secret now.
func (e *testEnv) wrongCode(t *testing.T, secret string) string {
	t.Helper()
	// Ten minutes away is far outside the one-step window.
	c, err := e.totp.CodeAt(secret, e.clock.Now().Add(10*time.Minute))
	require.NoError(t, err)
	if e.totp.VerifyCode(c, secret) {
		t.Skip("improbable code collision")
	}
	return c
}
