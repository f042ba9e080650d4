// Package apperr holds the error kinds shared by the rotation service and its
// collaborators. Callers wrap a kind with context and match it with errors.Is.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidRequest marks malformed or out-of-range input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound marks a rotation, division, year, crop or field that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a caller that does not own the referenced resource.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDependencyFailure marks an unreachable store. Callers may retry.
	ErrDependencyFailure = errors.New("dependency failure")

	// ErrTimeout marks a generation aborted by its deadline.
	ErrTimeout = errors.New("timeout")
)

// HTTPStatus maps an error to the status code the HTTP layer answers with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrDependencyFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether the caller may retry the same request unchanged.
func Retryable(err error) bool {
	return errors.Is(err, ErrDependencyFailure) || errors.Is(err, ErrTimeout)
}
