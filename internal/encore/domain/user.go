package domain

import "time"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2id PHC string

	// Enrollment in progress. All three are set together by BeginSetup and
	// cleared together on promotion, supersession or expiry.
	PendingTwoFactorSecret *string
	PendingSetupID         *string
	PendingCreatedAt       *time.Time

	TwoFactorSecret  *string // base32; only set while TwoFactorEnabled
	TwoFactorEnabled bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPendingSetup reports whether a 2FA enrollment is awaiting confirmation.
func (u User) HasPendingSetup() bool {
	return u.PendingTwoFactorSecret != nil && *u.PendingTwoFactorSecret != ""
}

// PublicUser is the profile shape returned to clients. It never carries the
// password hash or any TOTP secret.
type PublicUser struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		TwoFactorEnabled: u.TwoFactorEnabled,
	}
}
