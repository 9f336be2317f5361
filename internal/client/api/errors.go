package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures (connection refused,
// timeout) as opposed to backend-reported errors.
var ErrUnavailable = errors.New("backend unavailable")

// APIError is a non-2xx response from the backend, carrying whatever error
// detail the body held.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend error: status %d: %s", e.StatusCode, e.Detail)
}
