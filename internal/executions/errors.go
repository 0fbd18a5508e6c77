package executions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/freightdesk/internal/category"
)

var (
	ErrNotFound  = errors.New("execution not found")
	ErrDuplicate = errors.New("email already has an execution record")
)

// MapHTTPStatus maps execution domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, category.ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
