package shipments

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("shipment not found")
	ErrDuplicate = errors.New("tracking number already exists")
	ErrInvalidID = errors.New("invalid shipment id")
)

// MapHTTPStatus maps shipment domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
