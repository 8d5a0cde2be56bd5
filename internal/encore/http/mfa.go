package http

import (
	"net/http"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/service"
	"github.com/aussiebroadwan/encore/pkg/encoresdk"
	"github.com/aussiebroadwan/encore/pkg/httpx"
)

// MFAHandler handles two-factor enrollment and removal.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleSetup handles POST /api/auth/2fa/setup
//
//	@Summary		Start two-factor enrollment
//	@Description	Generates a new TOTP secret and QR code. Calling it again restarts enrollment and
//	@Description	invalidates the previous secret; an active second factor is switched off until the
//	@Description	new one is confirmed.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	encoresdk.TwoFactorSetupResponse	"Secret, QR code and setup id"
//	@Failure		401	{object}	encoresdk.ErrorResponse				"No token provided"
//	@Failure		403	{object}	encoresdk.ErrorResponse				"Invalid or partial token"
//	@Failure		404	{object}	encoresdk.ErrorResponse				"User not found"
//	@Failure		500	{object}	encoresdk.ErrorResponse				"Internal server error"
//	@Router			/api/auth/2fa/setup [post].
func (h *MFAHandler) HandleSetup(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	setup, err := h.MFAService.BeginSetup(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "2FA setup failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, encoresdk.TwoFactorSetupResponse{
		Secret:  setup.Secret,
		QRCode:  setup.QRCode,
		SetupID: setup.SetupID,
	})
}

// HandleVerify handles POST /api/auth/2fa/verify
//
//	@Summary		Confirm two-factor enrollment
//	@Description	Enables two-factor authentication once a code from the pending secret checks out.
//	@Description	When setupId is given it must match the latest setup, otherwise the request fails
//	@Description	because enrollment was restarted.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		encoresdk.TwoFactorCodeRequest	true	"TOTP code and optional setup id"
//	@Success		200		{object}	encoresdk.SuccessResponse		"Enabled"
//	@Failure		400		{object}	encoresdk.ErrorResponse			"Missing code, no setup, restarted setup or wrong code"
//	@Failure		401		{object}	encoresdk.ErrorResponse			"No token provided"
//	@Failure		403		{object}	encoresdk.ErrorResponse			"Invalid or partial token"
//	@Failure		500		{object}	encoresdk.ErrorResponse			"Internal server error"
//	@Router			/api/auth/2fa/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	var req encoresdk.TwoFactorCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Token == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Verification code is required")
		return
	}

	if err := h.MFAService.ConfirmSetup(r.Context(), userID, req.Token, req.SetupID); err != nil {
		writeServiceError(w, r, err, "2FA verification failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, encoresdk.SuccessResponse{Success: true})
}

// HandleQRCode handles GET /api/auth/2fa/qrcode
//
//	@Summary		Fetch the enrollment QR code again
//	@Description	Re-renders the QR code of the pending enrollment.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	encoresdk.QRCodeResponse	"QR code data URL"
//	@Failure		401	{object}	encoresdk.ErrorResponse		"No token provided"
//	@Failure		403	{object}	encoresdk.ErrorResponse		"Invalid or partial token"
//	@Failure		404	{object}	encoresdk.ErrorResponse		"No 2FA secret found"
//	@Failure		500	{object}	encoresdk.ErrorResponse		"Internal server error"
//	@Router			/api/auth/2fa/qrcode [get].
func (h *MFAHandler) HandleQRCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	qr, err := h.MFAService.QRCode(r.Context(), userID)
	if err != nil {
		status := statusFor(domain.KindOf(err))
		if domain.KindOf(err) == domain.KindNoSetupInProgress {
			status = http.StatusNotFound
		}
		writeServiceErrorStatus(w, r, err, status, "Failed to generate QR code")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, encoresdk.QRCodeResponse{QRCode: qr})
}

// HandleDisable handles POST /api/auth/2fa/disable
//
//	@Summary		Disable two-factor authentication
//	@Description	Switches two-factor authentication off. Requires a current code.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		encoresdk.TwoFactorCodeRequest	true	"TOTP code"
//	@Success		200		{object}	encoresdk.SuccessResponse		"Disabled"
//	@Failure		400		{object}	encoresdk.ErrorResponse			"Missing code, not enabled or wrong code"
//	@Failure		401		{object}	encoresdk.ErrorResponse			"No token provided"
//	@Failure		403		{object}	encoresdk.ErrorResponse			"Invalid or partial token"
//	@Failure		500		{object}	encoresdk.ErrorResponse			"Internal server error"
//	@Router			/api/auth/2fa/disable [post].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	var req encoresdk.TwoFactorCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Token == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Verification code is required")
		return
	}

	if err := h.MFAService.Disable(r.Context(), userID, req.Token); err != nil {
		writeServiceError(w, r, err, "Failed to disable 2FA")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, encoresdk.SuccessResponse{Success: true})
}
