package encoresdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-success response from the service.
type APIError struct {
	StatusCode int

	// Message is the "error" field of the body, empty for validation
	// failures.
	Message string

	// Fields holds per-field messages when a concert payload was rejected.
	Fields map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" && len(e.Fields) > 0 {
		return fmt.Sprintf("encore: status %d: validation failed: %v", e.StatusCode, e.Fields)
	}
	return fmt.Sprintf("encore: status %d: %s", e.StatusCode, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 if err is not an
// *APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports a missing or rejected credential (401 or 403).
func IsUnauthorized(err error) bool {
	s := StatusOf(err)
	return s == http.StatusUnauthorized || s == http.StatusForbidden
}

// IsNotFound reports a 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	var payload struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || (payload.Error == "" && len(payload.Errors) == 0) {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected response: %s", string(body)),
		}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    payload.Error,
		Fields:     payload.Errors,
	}
}

// TwoFactorRequiredError is returned by AuthenticateWithPassword when the
// account needs a second factor. Challenge can be passed to
// CompleteTwoFactorLogin.
type TwoFactorRequiredError struct {
	Challenge *LoginResponse
}

func (e *TwoFactorRequiredError) Error() string {
	return "encore: two-factor authentication required"
}
