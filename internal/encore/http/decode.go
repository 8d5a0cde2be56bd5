package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/encore/pkg/httpx"
	"github.com/aussiebroadwan/encore/pkg/slogx"
)

const maxBodyBytes = 1 << 20

// decodeBody decodes the JSON request body into v. On failure it writes a
// 400 and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slogx.FromContext(r.Context()).Warn("failed to parse request", "err", err)
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
