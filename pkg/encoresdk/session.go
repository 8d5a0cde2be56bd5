package encoresdk

import (
	"context"
	"net/http"
	"strconv"
	"sync"
)

// Session holds a fully authenticated token. Tokens are short lived and are
// not refreshed; log in again when calls start failing with IsUnauthorized.
type Session struct {
	client *SDKClient

	mu    sync.RWMutex
	token string
	user  User
}

func newSession(c *SDKClient, res AuthResponse) *Session {
	return &Session{client: c, token: res.Token, user: res.User}
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the profile returned at login. Call Me for a fresh copy.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) do(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	return s.client.do(ctx, method, path, s.Token(), body, target, expectedStatus)
}

// Me fetches the current profile.
func (s *Session) Me(ctx context.Context) (*User, error) {
	var out MeResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.user = out.User
	s.mu.Unlock()
	return &out.User, nil
}

// BeginTwoFactorSetup starts, or restarts, two-factor enrollment.
func (s *Session) BeginTwoFactorSetup(ctx context.Context) (*TwoFactorSetupResponse, error) {
	var out TwoFactorSetupResponse
	if err := s.do(ctx, http.MethodPost, "/api/auth/2fa/setup", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmTwoFactorSetup enables two-factor authentication. setupID may be
// empty to confirm whichever enrollment is pending.
func (s *Session) ConfirmTwoFactorSetup(ctx context.Context, code, setupID string) error {
	req := TwoFactorCodeRequest{Token: code, SetupID: setupID}
	return s.do(ctx, http.MethodPost, "/api/auth/2fa/verify", req, &SuccessResponse{}, http.StatusOK)
}

// TwoFactorQRCode re-renders the QR code of the pending enrollment.
func (s *Session) TwoFactorQRCode(ctx context.Context) (string, error) {
	var out QRCodeResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth/2fa/qrcode", nil, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.QRCode, nil
}

// DisableTwoFactor turns two-factor authentication off. It needs a current
// code.
func (s *Session) DisableTwoFactor(ctx context.Context, code string) error {
	req := TwoFactorCodeRequest{Token: code}
	return s.do(ctx, http.MethodPost, "/api/auth/2fa/disable", req, &SuccessResponse{}, http.StatusOK)
}

// CreateConcert adds a concert.
func (s *Session) CreateConcert(ctx context.Context, req ConcertRequest) (*Concert, error) {
	var out Concert
	if err := s.do(ctx, http.MethodPost, "/api/concerts", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConcert replaces concert id.
func (s *Session) UpdateConcert(ctx context.Context, id int64, req ConcertRequest) (*Concert, error) {
	var out Concert
	if err := s.do(ctx, http.MethodPut, "/api/concerts/"+strconv.FormatInt(id, 10), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConcert removes concert id and returns what was removed.
func (s *Session) DeleteConcert(ctx context.Context, id int64) (*Concert, error) {
	var out Concert
	if err := s.do(ctx, http.MethodDelete, "/api/concerts/"+strconv.FormatInt(id, 10), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bulk applies queued operations in order. Individual failures are
// reported per result, not as an error.
func (s *Session) Bulk(ctx context.Context, ops []BulkOperation) ([]BulkResult, error) {
	var out BulkResponse
	if err := s.do(ctx, http.MethodPost, "/api/concerts/bulk", BulkRequest{Operations: ops}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Results, nil
}
