package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/metrics"
	"github.com/aussiebroadwan/encore/internal/encore/store"
	"github.com/aussiebroadwan/encore/pkg/cryptox"
	"github.com/aussiebroadwan/encore/pkg/idx"
	"github.com/aussiebroadwan/encore/pkg/jwtx"
	"github.com/aussiebroadwan/encore/pkg/slogx"
)

// AuthService implements registration and the two-stage login: password
// first, then a TOTP code for users with 2FA enabled.
type AuthService struct {
	Store   store.Store
	Hasher  *cryptox.PasswordHasher
	Tokens  *jwtx.Issuer
	MFA     *MFAService
	Metrics metrics.Recorder

	TokenTTL   time.Duration // full tokens; zero uses the issuer default
	PartialTTL time.Duration // partial tokens between the two login steps

	dummyOnce sync.Once
	dummyHash string
}

func (s *AuthService) record(outcome string) {
	if s.Metrics != nil {
		s.Metrics.RecordLogin(outcome)
	}
}

func (s *AuthService) partialTTL() time.Duration {
	if s.PartialTTL > 0 {
		return s.PartialTTL
	}
	return jwtx.DefaultPartialTokenTTL
}

// issueFull signs a full token for u. amr lists the methods that were
// verified.
func (s *AuthService) issueFull(u domain.User, amr ...string) (string, error) {
	tok, err := s.Tokens.Issue(jwtx.NewFullClaims(u.ID, u.Email, u.Name, amr...), s.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tok, nil
}

// burnHash spends the same argon2 effort as a real verification so unknown
// emails are not distinguishable by timing.
func (s *AuthService) burnHash(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Hasher.Hash("encore-dummy-password")
	})
	if s.dummyHash != "" {
		_ = s.Hasher.Verify(password, s.dummyHash)
	}
}

// Register creates an account and returns it with a full token.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (domain.PublicUser, string, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return domain.PublicUser{}, "", domain.InvalidInput("Email, password, and name are required")
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.PublicUser{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.PublicUser{}, "", domain.ErrEmailTaken
		}
		return domain.PublicUser{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	tok, err := s.issueFull(u, jwtx.AMRPassword)
	if err != nil {
		return domain.PublicUser{}, "", err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", u.ID)
	return u.Public(), tok, nil
}

// Login runs the password step. Users without 2FA get a full token; users
// with 2FA get a partial token and must call CompleteLoginWithCode.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	log := slogx.FromContext(ctx)
	if email == "" || password == "" {
		return domain.LoginResult{}, domain.InvalidInput("Email and password are required")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		s.burnHash(password)
		s.record(metrics.LoginInvalidCredentials)
		return domain.LoginResult{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.LoginResult{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash unreadable", "user_id", u.ID, "error", err)
		}
		s.record(metrics.LoginInvalidCredentials)
		return domain.LoginResult{}, domain.ErrInvalidCredentials
	}

	if u.TwoFactorEnabled {
		temp, err := s.Tokens.Issue(jwtx.NewPartialClaims(u.ID), s.partialTTL())
		if err != nil {
			return domain.LoginResult{}, fmt.Errorf("failed to sign partial token: %w", err)
		}
		log.Info("password verified, awaiting second factor", "user_id", u.ID)
		s.record(metrics.LoginTwoFactorRequired)
		return domain.LoginResult{
			RequireTwoFactor: true,
			UserID:           u.ID,
			TempToken:        temp,
		}, nil
	}

	tok, err := s.issueFull(u, jwtx.AMRPassword)
	if err != nil {
		return domain.LoginResult{}, err
	}
	log.Info("user logged in", "user_id", u.ID)
	s.record(metrics.LoginSuccess)
	return domain.LoginResult{User: u.Public(), Token: tok}, nil
}

// ValidatePartialToken checks that token is a live partial token for userID.
func (s *AuthService) ValidatePartialToken(token, userID string) error {
	claims, err := s.Tokens.Verify(token)
	if err != nil || !claims.Partial || claims.Subject != userID {
		return domain.ErrTokenInvalid
	}
	return nil
}

// CompleteLoginWithCode runs the second step and returns a full token.
func (s *AuthService) CompleteLoginWithCode(ctx context.Context, userID, code string) (domain.PublicUser, string, error) {
	if userID == "" || code == "" {
		return domain.PublicUser{}, "", domain.InvalidInput("User ID and verification code are required")
	}

	u, err := s.MFA.VerifyActive(ctx, userID, code)
	if err != nil {
		return domain.PublicUser{}, "", err
	}

	tok, err := s.issueFull(u, jwtx.AMRPassword, jwtx.AMROTP)
	if err != nil {
		return domain.PublicUser{}, "", err
	}

	slogx.FromContext(ctx).Info("user logged in with second factor", "user_id", u.ID)
	s.record(metrics.LoginSuccess)
	return u.Public(), tok, nil
}

// Me returns the profile of userID.
func (s *AuthService) Me(ctx context.Context, userID string) (domain.PublicUser, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.PublicUser{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u.Public(), nil
}
