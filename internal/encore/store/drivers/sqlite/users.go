package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/store"
)

type usersRepo struct {
	q querier
}

const userColumns = `
	id, email, name, password_hash,
	pending_two_factor_secret, pending_two_factor_setup_id, pending_two_factor_created_at,
	two_factor_secret, two_factor_enabled, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u              domain.User
		pendingSecret  sql.NullString
		pendingSetupID sql.NullString
		pendingAt      sql.NullInt64
		secret         sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash,
		&pendingSecret, &pendingSetupID, &pendingAt,
		&secret, &u.TwoFactorEnabled, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.PendingTwoFactorSecret = mapNullStringPtr(pendingSecret)
	u.PendingSetupID = mapNullStringPtr(pendingSetupID)
	u.PendingCreatedAt = mapUnixMilliPtr(pendingAt)
	u.TwoFactorSecret = mapNullStringPtr(secret)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash) VALUES (?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.PasswordHash,
	)
	return mapConstraint(err)
}

func (r *usersRepo) BeginTwoFactorSetup(ctx context.Context, userID, secret, setupID string, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET pending_two_factor_secret = ?,
		    pending_two_factor_setup_id = ?,
		    pending_two_factor_created_at = ?,
		    two_factor_enabled = 0,
		    two_factor_secret = NULL,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		secret, setupID, at.UnixMilli(), userID,
	)
	return expectOneRow(res, err)
}

func (r *usersRepo) PromoteTwoFactorSecret(ctx context.Context, userID, setupID string) error {
	// SET expressions read the pre-update row, so two_factor_secret receives
	// the pending secret before it is cleared.
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET two_factor_secret = pending_two_factor_secret,
		    two_factor_enabled = 1,
		    pending_two_factor_secret = NULL,
		    pending_two_factor_setup_id = NULL,
		    pending_two_factor_created_at = NULL,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		  AND pending_two_factor_setup_id = ?
		  AND pending_two_factor_secret IS NOT NULL`,
		userID, setupID,
	)
	if err := expectOneRow(res, err); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrConflict
		}
		return err
	}
	return nil
}

func (r *usersRepo) DisableTwoFactor(ctx context.Context, userID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET two_factor_enabled = 0,
		    two_factor_secret = NULL,
		    pending_two_factor_secret = NULL,
		    pending_two_factor_setup_id = NULL,
		    pending_two_factor_created_at = NULL,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		userID,
	)
	return expectOneRow(res, err)
}

func (r *usersRepo) ClearStalePendingSetups(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET pending_two_factor_secret = NULL,
		    pending_two_factor_setup_id = NULL,
		    pending_two_factor_created_at = NULL,
		    updated_at = CURRENT_TIMESTAMP
		WHERE pending_two_factor_created_at IS NOT NULL
		  AND pending_two_factor_created_at < ?`,
		cutoff.UnixMilli(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
