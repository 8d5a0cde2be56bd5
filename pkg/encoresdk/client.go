package encoresdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the encore API. It provides the public
// endpoints and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSessionFromToken wraps an existing full token.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Register creates an account and returns a session for it.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// Login runs the password step. When the account has two-factor
// authentication enabled the returned response has RequireTwoFactor set and
// must be completed with CompleteTwoFactorLogin.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuthenticateWithPassword logs in an account without two-factor
// authentication. It fails with a *TwoFactorRequiredError otherwise.
func (c *SDKClient) AuthenticateWithPassword(ctx context.Context, email, password string) (*Session, error) {
	res, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if res.RequireTwoFactor {
		return nil, &TwoFactorRequiredError{Challenge: res}
	}
	return newSession(c, AuthResponse{User: derefUser(res.User), Token: res.Token}), nil
}

// CompleteTwoFactorLogin exchanges the challenge from Login and a TOTP code
// for a session.
func (c *SDKClient) CompleteTwoFactorLogin(ctx context.Context, challenge *LoginResponse, code string) (*Session, error) {
	req := TwoFactorLoginRequest{
		UserID:    challenge.UserID,
		Token:     code,
		TempToken: challenge.TempToken,
	}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/2fa/login", "", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", "", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", "", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func derefUser(u *User) User {
	if u == nil {
		return User{}
	}
	return *u
}
