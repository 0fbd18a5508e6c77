package issues

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound        = errors.New("issue not found")
	ErrDuplicate       = errors.New("issue already exists")
	ErrInvalidID       = errors.New("invalid issue id")
	ErrAlreadyResolved = errors.New("issue already resolved")
)

// MapHTTPStatus maps issue domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrAlreadyResolved):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
