package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/pkg/encoresdk"
	"github.com/aussiebroadwan/encore/pkg/httpx"
	"github.com/aussiebroadwan/encore/pkg/slogx"
)

// statusFor maps an error kind to its default HTTP status. Handlers
// override it where an endpoint has its own contract.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindInvalidInput,
		domain.KindEmailTaken,
		domain.KindNoSetupInProgress,
		domain.KindSetupSuperseded,
		domain.KindInvalidCode,
		domain.KindNotEnabled:
		return http.StatusBadRequest
	case domain.KindInvalidCredentials, domain.KindTokenInvalid:
		return http.StatusUnauthorized
	case domain.KindUserNotFound, domain.KindConcertNotFound:
		return http.StatusNotFound
	case domain.KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// writeServiceError writes err using the status of its kind. Internal
// failures are logged and answered with internalMsg so no detail leaks.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	writeServiceErrorStatus(w, r, err, statusFor(domain.KindOf(err)), internalMsg)
}

// writeServiceErrorStatus is writeServiceError with an explicit status for
// non-internal errors.
func writeServiceErrorStatus(w http.ResponseWriter, r *http.Request, err error, status int, internalMsg string) {
	log := slogx.FromContext(r.Context())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		httpx.WriteJSON(w, http.StatusBadRequest, encoresdk.ValidationErrorResponse{Errors: verr.Fields})
		return
	}

	if domain.KindOf(err) == domain.KindInternal {
		log.Error(internalMsg, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, internalMsg)
		return
	}

	log.Warn("request rejected", "kind", domain.KindOf(err).String(), "err", err)
	httpx.WriteError(w, status, err.Error())
}

// userIDFrom returns the authenticated subject injected by AuthnMiddleware.
func userIDFrom(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(httpx.CtxKeyUserID).(string)
	return userID, ok && userID != ""
}

var errNoSigner = errors.New("no signer configured")
