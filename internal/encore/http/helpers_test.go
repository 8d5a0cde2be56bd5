package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/metrics"
	"github.com/aussiebroadwan/encore/internal/encore/service"
	"github.com/aussiebroadwan/encore/internal/encore/store/drivers/sqlite"
	"github.com/aussiebroadwan/encore/pkg/cryptox"
	"github.com/aussiebroadwan/encore/pkg/encoresdk"
	"github.com/aussiebroadwan/encore/pkg/jwtx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
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

type testServer struct {
	t      *testing.T
	clock  *fakeClock
	router *Router
	totp   *service.TOTPEngine
	reg    *prometheus.Registry

	mu   sync.Mutex
	reqs int
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	clock := &fakeClock{t: time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)}

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	tokens, err := jwtx.NewHS256Issuer([]byte("0123456789abcdef0123456789abcdef"), "encore-test", 15*time.Minute, clock.Now)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	engine := &service.TOTPEngine{Issuer: "Encore", Now: clock.Now}
	mfa := &service.MFAService{
		Store:      st,
		TOTP:       engine,
		Metrics:    collector,
		PendingTTL: service.DefaultPendingSetupTTL,
		Now:        clock.Now,
	}
	auth := &service.AuthService{
		Store:      st,
		Hasher:     cryptox.NewPasswordHasher("test-pepper"),
		Tokens:     tokens,
		MFA:        mfa,
		Metrics:    collector,
		TokenTTL:   15 * time.Minute,
		PartialTTL: 2 * time.Minute,
	}
	concerts := service.NewConcertService(st)
	concerts.Now = clock.Now

	r := NewRouter(tokens, "test", st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.AuthService = auth
	r.MFAService = mfa
	r.ConcertService = concerts
	r.Metrics = collector
	r.Gatherer = reg
	r.ApplyRoutes()

	return &testServer{t: t, clock: clock, router: r, totp: engine, reg: reg}
}

// do sends a request from a fresh client address so per-IP limits do not
// interfere unless a test pins the address itself.
func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	s.mu.Lock()
	s.reqs++
	req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:40000", s.reqs/250, s.reqs%250+1)
	s.mu.Unlock()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	require.Equal(t, msg, decode[encoresdk.ErrorResponse](t, rec).Error)
}

// register creates an account and returns its full token and id.
func (s *testServer) register(email string) (token, userID string) {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/register", "", encoresdk.RegisterRequest{
		Email: email, Password: "pw-" + email, Name: "Fan",
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	res := decode[encoresdk.AuthResponse](s.t, rec)
	return res.Token, res.User.ID
}

func (s *testServer) code(secret string) string {
	s.t.Helper()
	c, err := s.totp.CodeAt(secret, s.clock.Now())
	require.NoError(s.t, err)
	return c
}

func (s *testServer) wrongCode(secret string) string {
	s.t.Helper()
	c, err := s.totp.CodeAt(secret, s.clock.Now().Add(10*time.Minute))
	require.NoError(s.t, err)
	if s.totp.VerifyCode(c, secret) {
		s.t.Skip("improbable code collision")
	}
	return c
}

// enableTwoFactor runs enrollment to completion and returns the secret.
func (s *testServer) enableTwoFactor(token string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/2fa/setup", token, nil)
	require.Equal(s.t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	setup := decode[encoresdk.TwoFactorSetupResponse](s.t, rec)

	rec = s.do(http.MethodPost, "/api/auth/2fa/verify", token, encoresdk.TwoFactorCodeRequest{
		Token: s.code(setup.Secret), SetupID: setup.SetupID,
	})
	require.Equal(s.t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	return setup.Secret
}

// doFrom sends an unauthenticated request from a fixed client address.
func (s *testServer) doFrom(remoteAddr, method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(s.t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
