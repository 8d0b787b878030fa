package jobs

import (
	"fmt"
	"net/http"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for the jobs API. Compare with errors.Is.
var (
	// ErrEmptyID indicates FetchDetails was called without a job identifier.
	ErrEmptyID = constError("job id cannot be empty")

	// ErrTransport indicates the request never produced an HTTP response
	// (DNS, connection refused, timeout, context cancellation).
	ErrTransport = constError("jobs API request failed")

	// ErrUnexpectedStatus indicates the API answered with a non-2xx status.
	ErrUnexpectedStatus = constError("jobs API returned unexpected status")

	// ErrDecode indicates the response body was not valid JSON for the payload.
	ErrDecode = constError("decoding jobs API response")

	// ErrMalformedPayload indicates a nested object required by the view is absent.
	ErrMalformedPayload = constError("malformed job details payload")
)

// StatusError carries the HTTP status of a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %d %s", ErrUnexpectedStatus, e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("%s: %d %s: %s", ErrUnexpectedStatus, e.Code, http.StatusText(e.Code), e.Body)
}

// Unwrap lets errors.Is match ErrUnexpectedStatus.
func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

// MissingFieldError names the payload field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing %q", ErrMalformedPayload, e.Field)
}

// Unwrap lets errors.Is match ErrMalformedPayload.
func (e *MissingFieldError) Unwrap() error { return ErrMalformedPayload }
