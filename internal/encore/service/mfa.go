package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/metrics"
	"github.com/aussiebroadwan/encore/internal/encore/store"
	"github.com/aussiebroadwan/encore/pkg/idx"
	"github.com/aussiebroadwan/encore/pkg/slogx"
)

// DefaultPendingSetupTTL bounds how long an unconfirmed enrollment stays
// usable.
const DefaultPendingSetupTTL = 10 * time.Minute

// MFAService drives the per-user enrollment state machine:
// DISABLED -> PENDING -> ENABLED, with PENDING re-entrant and ENABLED able to
// drop back to PENDING when setup is restarted.
type MFAService struct {
	Store   store.Store
	TOTP    *TOTPEngine
	Metrics metrics.Recorder

	// PendingTTL expires unconfirmed setups. Zero disables the check.
	PendingTTL time.Duration
	Now        func() time.Time
}

func (s *MFAService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *MFAService) record(event string) {
	if s.Metrics != nil {
		s.Metrics.RecordTwoFactor(event)
	}
}

func (s *MFAService) getUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// pendingSecret returns the live pending secret, treating an expired one as
// absent.
func (s *MFAService) pendingSecret(u domain.User) (string, bool) {
	if !u.HasPendingSetup() {
		return "", false
	}
	if s.PendingTTL > 0 && u.PendingCreatedAt != nil && s.now().Sub(*u.PendingCreatedAt) > s.PendingTTL {
		return "", false
	}
	return *u.PendingTwoFactorSecret, true
}

// BeginSetup starts (or restarts) enrollment. Any earlier pending secret is
// discarded and an active secret is cleared until the new one is confirmed.
func (s *MFAService) BeginSetup(ctx context.Context, userID string) (domain.TwoFactorSetup, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.TwoFactorSetup{}, err
	}

	secret, uri, err := s.TOTP.GenerateSecret(u.Email)
	if err != nil {
		return domain.TwoFactorSetup{}, err
	}
	qr, err := s.TOTP.RenderQRCode(uri)
	if err != nil {
		return domain.TwoFactorSetup{}, err
	}

	now := s.now()
	setupID := idx.NewAt(now).String()
	if err := s.Store.Users().BeginTwoFactorSetup(ctx, userID, secret, setupID, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TwoFactorSetup{}, domain.ErrUserNotFound
		}
		return domain.TwoFactorSetup{}, fmt.Errorf("failed to store pending secret: %w", err)
	}

	slogx.FromContext(ctx).Info("2fa setup started", "user_id", userID, "setup_id", setupID)
	s.record(metrics.TwoFactorSetupStarted)

	return domain.TwoFactorSetup{
		Secret:  secret,
		URI:     uri,
		QRCode:  qr,
		SetupID: setupID,
	}, nil
}

// ConfirmSetup promotes the pending secret once the user proves possession
// with code. When setupID is non-empty it must name the setup currently
// pending. The promotion itself is a compare-and-swap on the setup id, so a
// BeginSetup racing with this call makes it fail with ErrSetupSuperseded
// rather than enabling a secret the user never saw.
func (s *MFAService) ConfirmSetup(ctx context.Context, userID, code, setupID string) error {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	secret, ok := s.pendingSecret(u)
	if !ok {
		return domain.ErrNoSetupInProgress
	}
	current := ""
	if u.PendingSetupID != nil {
		current = *u.PendingSetupID
	}
	if setupID != "" && setupID != current {
		s.record(metrics.TwoFactorSuperseded)
		return domain.ErrSetupSuperseded
	}

	if !s.TOTP.VerifyCode(code, secret) {
		s.record(metrics.TwoFactorInvalidCode)
		return domain.ErrInvalidCode
	}

	if err := s.Store.Users().PromoteTwoFactorSecret(ctx, userID, current); err != nil {
		if errors.Is(err, store.ErrConflict) {
			s.record(metrics.TwoFactorSuperseded)
			return domain.ErrSetupSuperseded
		}
		return fmt.Errorf("failed to enable 2fa: %w", err)
	}

	slogx.FromContext(ctx).Info("2fa enabled", "user_id", userID)
	s.record(metrics.TwoFactorEnabled)
	return nil
}

// VerifyActive checks code against the user's active secret.
func (s *MFAService) VerifyActive(ctx context.Context, userID, code string) (domain.User, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if !u.TwoFactorEnabled || u.TwoFactorSecret == nil {
		return domain.User{}, domain.ErrNotEnabled
	}
	if !s.TOTP.VerifyCode(code, *u.TwoFactorSecret) {
		s.record(metrics.TwoFactorInvalidCode)
		return domain.User{}, domain.ErrInvalidCode
	}
	s.record(metrics.TwoFactorVerified)
	return u, nil
}

// QRCode re-renders the QR code of the pending setup.
func (s *MFAService) QRCode(ctx context.Context, userID string) (string, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return "", err
	}
	secret, ok := s.pendingSecret(u)
	if !ok {
		return "", domain.ErrNoSetupInProgress
	}

	return s.TOTP.RenderQRCode(s.TOTP.ProvisioningURI(u.Email, secret))
}

// Disable turns 2FA off after checking a current code.
func (s *MFAService) Disable(ctx context.Context, userID, code string) error {
	if _, err := s.VerifyActive(ctx, userID, code); err != nil {
		return err
	}
	if err := s.Store.Users().DisableTwoFactor(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to disable 2fa: %w", err)
	}

	slogx.FromContext(ctx).Info("2fa disabled", "user_id", userID)
	s.record(metrics.TwoFactorDisabled)
	return nil
}
