package consolesdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"detail string", `{"detail":"Client not found"}`, "Client not found"},
		{"validation list", `{"detail":[{"msg":"field required"},{"msg":"invalid email"}]}`, "field required; invalid email"},
		{"message", `{"message":"Duplicate GSTIN"}`, "Duplicate GSTIN"},
		{"oauth style", `{"error":"invalid_request","error_description":"missing field"}`, "missing field"},
		{"bare error", `{"error":"boom"}`, "boom"},
		{"not json", `Internal Server Error`, ""},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: http.StatusBadRequest, Payload: json.RawMessage(tt.payload)}
			require.Equal(t, tt.want, err.Message())
		})
	}
}

func TestAPIErrorString(t *testing.T) {
	t.Parallel()

	err := &APIError{StatusCode: http.StatusNotFound, Method: "GET", Path: "/clients/9", Payload: json.RawMessage(`{"detail":"Client not found"}`)}
	require.Equal(t, "GET /clients/9: status 404: Client not found", err.Error())

	err = &APIError{StatusCode: http.StatusBadGateway, Method: "GET", Path: "/clients"}
	require.Equal(t, "GET /clients: status 502: Bad Gateway", err.Error())
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("wrapped: %w", &APIError{StatusCode: http.StatusNotFound})
	require.True(t, IsNotFound(notFound))
	require.False(t, IsForbidden(notFound))
	require.Equal(t, http.StatusNotFound, StatusCode(notFound))

	require.True(t, IsForbidden(&APIError{StatusCode: http.StatusForbidden}))
	require.True(t, IsValidation(&APIError{StatusCode: http.StatusUnprocessableEntity}))
	require.True(t, IsValidation(&APIError{StatusCode: http.StatusBadRequest}))

	require.Equal(t, http.StatusUnauthorized, StatusCode(&UnauthenticatedError{}))
	require.Equal(t, http.StatusUnauthorized, StatusCode(ErrSessionExpired))
	require.Zero(t, StatusCode(fmt.Errorf("dial tcp: refused")))
}
