package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the service could not
	// be reached at all, so no structured detail exists.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnauthorized marks a missing, invalid or expired credential. The
	// service's 401 is the sole signal of session invalidity.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a structured rejection from the service. Detail, when present,
// is surfaced to the user verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("service error (status %d)", e.Status)
}

// ErrorDetail extracts the user-facing message for err: the service detail
// when present, otherwise the supplied fallback.
func ErrorDetail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
