package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/store"
	"github.com/aussiebroadwan/encore/internal/encore/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createUser(t *testing.T, s store.Store, id, email string) {
	t.Helper()
	require.NoError(t, s.Users().CreateUser(context.Background(), domain.User{
		ID:           id,
		Email:        email,
		Name:         "Test",
		PasswordHash: "$argon2id$dummy",
	}))
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	createUser(t, s, "u1", "a@x.com")

	byID, err := s.Users().GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", byID.Email)
	require.False(t, byID.TwoFactorEnabled)
	require.Nil(t, byID.TwoFactorSecret)
	require.Nil(t, byID.PendingTwoFactorSecret)
	require.False(t, byID.CreatedAt.IsZero())

	byEmail, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "u1", byEmail.ID)

	// Emails match exactly as stored.
	_, err = s.Users().GetUserByEmail(ctx, "A@X.COM")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	createUser(t, s, "u1", "a@x.com")

	err := s.Users().CreateUser(context.Background(), domain.User{
		ID: "u2", Email: "a@x.com", Name: "Other", PasswordHash: "h",
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsers_TwoFactorLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	createUser(t, s, "u1", "a@x.com")
	users := s.Users()
	now := time.Now()

	require.NoError(t, users.BeginTwoFactorSetup(ctx, "u1", "SECRETA", "setup-a", now))
	u, err := users.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.True(t, u.HasPendingSetup())
	require.Equal(t, "SECRETA", *u.PendingTwoFactorSecret)
	require.Equal(t, "setup-a", *u.PendingSetupID)
	require.WithinDuration(t, now, *u.PendingCreatedAt, time.Millisecond)

	// A second setup supersedes the first.
	require.NoError(t, users.BeginTwoFactorSetup(ctx, "u1", "SECRETB", "setup-b", now))
	require.ErrorIs(t, users.PromoteTwoFactorSecret(ctx, "u1", "setup-a"), store.ErrConflict)

	require.NoError(t, users.PromoteTwoFactorSecret(ctx, "u1", "setup-b"))
	u, err = users.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.True(t, u.TwoFactorEnabled)
	require.Equal(t, "SECRETB", *u.TwoFactorSecret)
	require.Nil(t, u.PendingTwoFactorSecret)
	require.Nil(t, u.PendingSetupID)
	require.Nil(t, u.PendingCreatedAt)

	// Promoting twice finds nothing pending.
	require.ErrorIs(t, users.PromoteTwoFactorSecret(ctx, "u1", "setup-b"), store.ErrConflict)

	// Re-entering setup while enabled disables 2FA until confirmed.
	require.NoError(t, users.BeginTwoFactorSetup(ctx, "u1", "SECRETC", "setup-c", now))
	u, err = users.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.False(t, u.TwoFactorEnabled)
	require.Nil(t, u.TwoFactorSecret)

	require.NoError(t, users.DisableTwoFactor(ctx, "u1"))
	u, err = users.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.False(t, u.TwoFactorEnabled)
	require.False(t, u.HasPendingSetup())

	require.ErrorIs(t, users.BeginTwoFactorSetup(ctx, "nope", "S", "x", now), store.ErrNotFound)
	require.ErrorIs(t, users.DisableTwoFactor(ctx, "nope"), store.ErrNotFound)
}

func TestUsers_ClearStalePendingSetups(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	createUser(t, s, "old", "old@x.com")
	createUser(t, s, "new", "new@x.com")

	now := time.Now()
	require.NoError(t, s.Users().BeginTwoFactorSetup(ctx, "old", "S1", "a", now.Add(-time.Hour)))
	require.NoError(t, s.Users().BeginTwoFactorSetup(ctx, "new", "S2", "b", now))

	n, err := s.Users().ClearStalePendingSetups(ctx, now.Add(-10*time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	old, err := s.Users().GetUserByID(ctx, "old")
	require.NoError(t, err)
	require.False(t, old.HasPendingSetup())

	fresh, err := s.Users().GetUserByID(ctx, "new")
	require.NoError(t, err)
	require.True(t, fresh.HasPendingSetup())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, domain.User{
			ID: "u1", Email: "a@x.com", Name: "A", PasswordHash: "h",
		}))
		// Nested transactions are refused.
		_, nestedErr := tx.Tx(ctx)
		require.Error(t, nestedErr)
		return store.ErrConflict
	})
	require.ErrorIs(t, err, store.ErrConflict)

	_, err = s.Users().GetUserByID(ctx, "u1")
	require.ErrorIs(t, err, store.ErrNotFound)
}
