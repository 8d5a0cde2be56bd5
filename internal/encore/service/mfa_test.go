package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/store"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, env *testEnv, email, password string) domain.PublicUser {
	t.Helper()
	u, _, err := env.auth.Register(context.Background(), email, password, "Test User")
	require.NoError(t, err)
	return u
}

func loadUser(t *testing.T, env *testEnv, id string) domain.User {
	t.Helper()
	u, err := env.store.Users().GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func TestMFA_BeginSetupUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.mfa.BeginSetup(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMFA_EnrollmentHappyPath(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := registerUser(t, env, "a@x.com", "pw1")

	setup, err := env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, setup.Secret)
	require.NotEmpty(t, setup.SetupID)
	require.True(t, strings.HasPrefix(setup.QRCode, "data:image/png;base64,"))
	require.Contains(t, setup.URI, "otpauth://totp/Encore:a@x.com")

	stored := loadUser(t, env, u.ID)
	require.False(t, stored.TwoFactorEnabled)
	require.Equal(t, setup.Secret, *stored.PendingTwoFactorSecret)

	require.NoError(t, env.mfa.ConfirmSetup(ctx, u.ID, env.code(t, setup.Secret), setup.SetupID))

	stored = loadUser(t, env, u.ID)
	require.True(t, stored.TwoFactorEnabled)
	require.Equal(t, setup.Secret, *stored.TwoFactorSecret)
	require.False(t, stored.HasPendingSetup())
}

func TestMFA_ConfirmWithoutSetup(t *testing.T) {
	env := newTestEnv(t)
	u := registerUser(t, env, "a@x.com", "pw1")

	err := env.mfa.ConfirmSetup(context.Background(), u.ID, "123456", "")
	require.ErrorIs(t, err, domain.ErrNoSetupInProgress)

	err = env.mfa.ConfirmSetup(context.Background(), "missing", "123456", "")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMFA_ConfirmWrongCodeLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := registerUser(t, env, "a@x.com", "pw1")

	setup, err := env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)
	before := loadUser(t, env, u.ID)

	for _, code := range []string{env.wrongCode(t, setup.Secret), "abc", "12345", ""} {
		require.ErrorIs(t, env.mfa.ConfirmSetup(ctx, u.ID, code, ""), domain.ErrInvalidCode, "code %q", code)
	}

	after := loadUser(t, env, u.ID)
	require.Equal(t, *before.PendingTwoFactorSecret, *after.PendingTwoFactorSecret)
	require.Equal(t, *before.PendingSetupID, *after.PendingSetupID)
	require.False(t, after.TwoFactorEnabled)

	// The pending setup is still usable.
	require.NoError(t, env.mfa.ConfirmSetup(ctx, u.ID, env.code(t, setup.Secret), ""))
}

func TestMFA_NewSetupSupersedesOld(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := registerUser(t, env, "a@x.com", "pw1")

	first, err := env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)
	second, err := env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Secret, second.Secret)

	// A code from the first secret no longer works.
	err = env.mfa.ConfirmSetup(ctx, u.ID, env.code(t, first.Secret), "")
	require.ErrorIs(t, err, domain.ErrInvalidCode)

	// Echoing the stale setup id is reported as superseded.
	err = env.mfa.ConfirmSetup(ctx, u.ID, env.code(t, first.Secret), first.SetupID)
	require.ErrorIs(t, err, domain.ErrSetupSuperseded)

	require.NoError(t, env.mfa.ConfirmSetup(ctx, u.ID, env.code(t, second.Secret), second.SetupID))
	require.Equal(t, second.Secret, *loadUser(t, env, u.ID).TwoFactorSecret)
}

// racingUsers restarts enrollment just before the promotion lands, as a
// concurrent BeginSetup would.
type racingUsers struct {
	store.Users
	onPromote func()
}

func (r racingUsers) PromoteTwoFactorSecret(ctx context.Context, userID, setupID string) error {
	if r.onPromote != nil {
		r.onPromote()
	}
	return r.Users.PromoteTwoFactorSecret(ctx, userID, setupID)
}

type racingStore struct {
	store.Store
	users racingUsers
}

func (r racingStore) Users() store.Users { return r.users }

func TestMFA_ConfirmRacingWithBeginIsSuperseded(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := registerUser(t, env, "a@x.com", "pw1")

	setup, err := env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)

	var racer *MFAService
	racing := racingStore{Store: env.store}
	racing.users = racingUsers{
		Users: env.store.Users(),
		onPromote: func() {
			_, err := racer.BeginSetup(ctx, u.ID)
			require.NoError(t, err)
		},
	}
	racer = &MFAService{Store: env.store, TOTP: env.totp, Now: env.clock.Now}
	confirming := &MFAService{Store: racing, TOTP: env.totp, Now: env.clock.Now}

	err = confirming.ConfirmSetup(ctx, u.ID, env.code(t, setup.Secret), "")
	require.ErrorIs(t, err, domain.ErrSetupSuperseded)

	stored := loadUser(t, env, u.ID)
	require.False(t, stored.TwoFactorEnabled)
	require.Nil(t, stored.TwoFactorSecret)
	require.True(t, stored.HasPendingSetup())
	require.NotEqual(t, setup.Secret, *stored.PendingTwoFactorSecret)
}

func TestMFA_PendingSetupExpires(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := registerUser(t, env, "a@x.com", "pw1")

	setup, err := env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)

	env.clock.Advance(DefaultPendingSetupTTL + time.Second)

	err = env.mfa.ConfirmSetup(ctx, u.ID, env.code(t, setup.Secret), setup.SetupID)
	require.ErrorIs(t, err, domain.ErrNoSetupInProgress)

	_, err = env.mfa.QRCode(ctx, u.ID)
	require.ErrorIs(t, err, domain.ErrNoSetupInProgress)
}

func TestMFA_QRCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := registerUser(t, env, "a@x.com", "pw1")

	_, err := env.mfa.QRCode(ctx, u.ID)
	require.ErrorIs(t, err, domain.ErrNoSetupInProgress)

	_, err = env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)

	qr, err := env.mfa.QRCode(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
}

func TestMFA_VerifyActiveAndDisable(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := registerUser(t, env, "a@x.com", "pw1")

	_, err := env.mfa.VerifyActive(ctx, u.ID, "123456")
	require.ErrorIs(t, err, domain.ErrNotEnabled)
	require.ErrorIs(t, env.mfa.Disable(ctx, u.ID, "123456"), domain.ErrNotEnabled)

	setup, err := env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)
	require.NoError(t, env.mfa.ConfirmSetup(ctx, u.ID, env.code(t, setup.Secret), ""))

	_, err = env.mfa.VerifyActive(ctx, u.ID, env.wrongCode(t, setup.Secret))
	require.ErrorIs(t, err, domain.ErrInvalidCode)

	got, err := env.mfa.VerifyActive(ctx, u.ID, env.code(t, setup.Secret))
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	require.ErrorIs(t, env.mfa.Disable(ctx, u.ID, env.wrongCode(t, setup.Secret)), domain.ErrInvalidCode)
	require.True(t, loadUser(t, env, u.ID).TwoFactorEnabled)

	require.NoError(t, env.mfa.Disable(ctx, u.ID, env.code(t, setup.Secret)))
	stored := loadUser(t, env, u.ID)
	require.False(t, stored.TwoFactorEnabled)
	require.Nil(t, stored.TwoFactorSecret)
}

func TestMFA_RestartWhileEnabledDisablesUntilConfirmed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := registerUser(t, env, "a@x.com", "pw1")

	setup, err := env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)
	require.NoError(t, env.mfa.ConfirmSetup(ctx, u.ID, env.code(t, setup.Secret), ""))

	_, err = env.mfa.BeginSetup(ctx, u.ID)
	require.NoError(t, err)

	_, err = env.mfa.VerifyActive(ctx, u.ID, env.code(t, setup.Secret))
	require.ErrorIs(t, err, domain.ErrNotEnabled)
}
