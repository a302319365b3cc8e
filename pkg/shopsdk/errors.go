package shopsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoCredential is returned when a session without a credential is used.
var ErrNoCredential = errors.New("shopsdk: session has no credential")

// APIError is a non-2xx response from the backend.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Message is the backend's human-readable message, or the status text when
	// the body carried none.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("shopsdk: HTTP %d: %s", e.StatusCode, e.Message)
}

// Unauthorized reports whether the backend rejected the credential.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// errorBody covers the shapes the backend uses for errors: the exception
// handler's {errorMessage, httpStatus}, plain {message} and {error}.
type errorBody struct {
	ErrorMessage string `json:"errorMessage"`
	Message      string `json:"message"`
	Error        string `json:"error"`
}

// parseErrorResponse turns a non-2xx response into an *APIError.
// It returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		for _, msg := range []string{eb.ErrorMessage, eb.Message, eb.Error} {
			if msg = strings.TrimSpace(msg); msg != "" {
				apiErr.Message = msg
				return apiErr
			}
		}
	}

	apiErr.Message = http.StatusText(resp.StatusCode)
	return apiErr
}
