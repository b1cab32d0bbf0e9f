package consolesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnauthenticated matches any 401 response from the API.
	ErrUnauthenticated = errors.New("consolesdk: unauthenticated")

	// ErrSessionExpired is returned by Session after a 401 has reset the
	// session. It also matches ErrUnauthenticated.
	ErrSessionExpired = fmt.Errorf("consolesdk: session expired: %w", ErrUnauthenticated)

	// ErrNoCredential is returned by a CredentialStore that holds no token.
	ErrNoCredential = errors.New("consolesdk: no credential stored")
)

// ============================================================================
// APIError
// ============================================================================

// APIError is a non-2xx, non-401 response. Payload is the server body as
// received, for the caller to present.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Payload    json.RawMessage
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message()
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// Message extracts a human readable message from the payload. It understands
// {"detail": "..."}, {"detail": [{"msg": "..."}]}, {"message": "..."} and
// {"error": "...", "error_description": "..."}. Returns "" when none match.
func (e *APIError) Message() string {
	if len(e.Payload) == 0 {
		return ""
	}

	var body struct {
		Detail           json.RawMessage `json:"detail"`
		Message          string          `json:"message"`
		Error            string          `json:"error"`
		ErrorDescription string          `json:"error_description"`
	}
	if err := json.Unmarshal(e.Payload, &body); err != nil {
		return ""
	}

	if len(body.Detail) > 0 {
		var s string
		if err := json.Unmarshal(body.Detail, &s); err == nil {
			return s
		}

		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(body.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, item := range items {
				if item.Msg != "" {
					msgs = append(msgs, item.Msg)
				}
			}
			return strings.Join(msgs, "; ")
		}
	}

	switch {
	case body.Message != "":
		return body.Message
	case body.ErrorDescription != "":
		return body.ErrorDescription
	default:
		return body.Error
	}
}

// ============================================================================
// UnauthenticatedError
// ============================================================================

// UnauthenticatedError is a 401 response. The transport returns it as is;
// clearing the credential is the Session's job.
type UnauthenticatedError struct {
	Method  string
	Path    string
	Payload json.RawMessage
}

// Error implements the error interface.
func (e *UnauthenticatedError) Error() string {
	return fmt.Sprintf("%s %s: status 401: unauthenticated", e.Method, e.Path)
}

// Is reports ErrUnauthenticated as a match.
func (e *UnauthenticatedError) Is(target error) bool {
	return target == ErrUnauthenticated
}

// ============================================================================
// Helpers
// ============================================================================

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from an API response.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	if errors.Is(err, ErrUnauthenticated) {
		return http.StatusUnauthorized
	}
	return 0
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

// IsForbidden reports whether err is a 403 response.
func IsForbidden(err error) bool { return StatusCode(err) == http.StatusForbidden }

// IsValidation reports whether err is a 400 or 422 response.
func IsValidation(err error) bool {
	code := StatusCode(err)
	return code == http.StatusBadRequest || code == http.StatusUnprocessableEntity
}

// parseErrorResponse maps a response to a typed error. Returns nil for 2xx.
func parseErrorResponse(method, path string, resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &UnauthenticatedError{
			Method:  method,
			Path:    path,
			Payload: body,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       path,
		Payload:    body,
	}
}
