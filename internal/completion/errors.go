package completion

import (
	"errors"
	"fmt"
)

// ErrNoResponse is returned when the API answers successfully but without any choices.
var ErrNoResponse = errors.New("no response generated")

// APIError describes a failed call to the completion endpoint.
type APIError struct {
	// StatusCode is the HTTP status returned, or 0 when no response arrived.
	StatusCode int
	// Message is the error message extracted from the response body, or the raw body.
	Message string
	// Transport is true when the request never produced an HTTP response.
	Transport bool
	Err       error
}

func (e *APIError) Error() string {
	if e.Transport {
		return fmt.Sprintf("API request failed: %s", e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
