package emails

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("email not found")
	ErrDuplicate = errors.New("email already exists")
)

// MapHTTPStatus maps email domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
