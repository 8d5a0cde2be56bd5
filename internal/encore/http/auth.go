package http

import (
	"net/http"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/service"
	"github.com/aussiebroadwan/encore/pkg/encoresdk"
	"github.com/aussiebroadwan/encore/pkg/httpx"
	"github.com/aussiebroadwan/encore/pkg/slogx"
)

// AuthHandler serves registration, both login steps and the profile.
type AuthHandler struct {
	AuthService         *service.AuthService
	RequirePartialToken bool
}

func toUser(u domain.PublicUser) encoresdk.User {
	return encoresdk.User{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		TwoFactorEnabled: u.TwoFactorEnabled,
	}
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register an account
//	@Description	Creates an account and returns it with a full access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		encoresdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	encoresdk.AuthResponse		"Created account and token"
//	@Failure		400		{object}	encoresdk.ErrorResponse		"Missing fields or email already registered"
//	@Failure		429		{object}	encoresdk.ErrorResponse		"Rate limit exceeded"
//	@Failure		500		{object}	encoresdk.ErrorResponse		"Internal server error"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req encoresdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeServiceError(w, r, err, "Registration failed")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, encoresdk.AuthResponse{
		User:  toUser(user),
		Token: token,
	})
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Log in with a password
//	@Description	Verifies the password. Accounts without two-factor authentication receive a full
//	@Description	token. Accounts with it receive requireTwoFactor, userId and a short lived partial
//	@Description	tempToken to present at /api/auth/2fa/login.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		encoresdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	encoresdk.LoginResponse	"Token or second factor challenge"
//	@Failure		400		{object}	encoresdk.ErrorResponse	"Missing fields"
//	@Failure		401		{object}	encoresdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	encoresdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	encoresdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req encoresdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Authentication failed")
		return
	}

	if res.RequireTwoFactor {
		httpx.WriteJSON(w, http.StatusOK, encoresdk.LoginResponse{
			RequireTwoFactor: true,
			UserID:           res.UserID,
			TempToken:        res.TempToken,
		})
		return
	}

	user := toUser(res.User)
	httpx.WriteJSON(w, http.StatusOK, encoresdk.LoginResponse{
		User:  &user,
		Token: res.Token,
	})
}

// HandleTwoFactorLogin handles POST /api/auth/2fa/login
//
//	@Summary		Complete a two-factor login
//	@Description	Exchanges the partial token from /api/auth/login and a TOTP code for a full token.
//	@Description	The partial token may be sent as tempToken or as a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		encoresdk.TwoFactorLoginRequest	true	"User id, code and partial token"
//	@Success		200		{object}	encoresdk.AuthResponse			"Account and full token"
//	@Failure		400		{object}	encoresdk.ErrorResponse			"Missing fields"
//	@Failure		401		{object}	encoresdk.ErrorResponse			"Invalid code or partial token"
//	@Failure		429		{object}	encoresdk.ErrorResponse			"Rate limit exceeded"
//	@Failure		500		{object}	encoresdk.ErrorResponse			"Internal server error"
//	@Router			/api/auth/2fa/login [post].
func (h *AuthHandler) HandleTwoFactorLogin(w http.ResponseWriter, r *http.Request) {
	var req encoresdk.TwoFactorLoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" || req.Token == "" {
		httpx.WriteError(w, http.StatusBadRequest, "User ID and verification code are required")
		return
	}

	if h.RequirePartialToken {
		temp := req.TempToken
		if temp == "" {
			temp, _ = httpx.BearerToken(r)
		}
		if err := h.AuthService.ValidatePartialToken(temp, req.UserID); err != nil {
			writeTwoFactorLoginError(w, r, err)
			return
		}
	}

	user, token, err := h.AuthService.CompleteLoginWithCode(r.Context(), req.UserID, req.Token)
	if err != nil {
		writeTwoFactorLoginError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, encoresdk.AuthResponse{
		User:  toUser(user),
		Token: token,
	})
}

// writeTwoFactorLoginError answers every rejected second step with the same
// 401 body, so a caller cannot tell a bad token from an unknown account.
func writeTwoFactorLoginError(w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput, domain.KindInternal:
		writeServiceErrorStatus(w, r, err, http.StatusBadRequest, "2FA login failed")
	default:
		slogx.FromContext(r.Context()).Warn("2fa login rejected", "kind", domain.KindOf(err).String(), "err", err)
		httpx.WriteError(w, http.StatusUnauthorized, domain.ErrInvalidCode.Error())
	}
}

// HandleMe handles GET /api/auth/me
//
//	@Summary		Current account
//	@Description	Returns the profile of the authenticated account.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	encoresdk.MeResponse	"Profile"
//	@Failure		401	{object}	encoresdk.ErrorResponse	"No token provided"
//	@Failure		403	{object}	encoresdk.ErrorResponse	"Invalid or partial token"
//	@Failure		404	{object}	encoresdk.ErrorResponse	"Account no longer exists"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	user, err := h.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, encoresdk.MeResponse{User: toUser(user)})
}
