package intake

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/pkg/storage"
)

// ErrValidation wraps every submission validation failure.
var ErrValidation = errors.New("invalid submission")

// MapHTTPStatus maps intake errors to HTTP status codes. An archive that
// is missing or disabled is reported as not found.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, emails.ErrNotFound),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrDisabled):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
