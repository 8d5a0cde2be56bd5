package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/store"
	"github.com/aussiebroadwan/encore/pkg/encoresdk"
	"github.com/aussiebroadwan/encore/pkg/httpx"
	"github.com/aussiebroadwan/encore/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	encoresdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	encoresdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	tokens *jwtx.Issuer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &encoresdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Round-trip a throwaway token through the signer and verifier
		if err := probeSigner(tokens); err != nil {
			checks.Signer = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := encoresdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}

func probeSigner(tokens *jwtx.Issuer) error {
	if tokens == nil {
		return errNoSigner
	}
	tok, err := tokens.Issue(jwtx.NewPartialClaims("readyz"), time.Minute)
	if err != nil {
		return err
	}
	_, err = tokens.Verify(tok)
	return err
}
