package workflow

import "errors"

var (
	// ErrPersistence reports that the submitted email could not be stored.
	ErrPersistence = errors.New("email persistence failed")
	// ErrExtraction matches every handler failure to pull structured data
	// out of a model reply.
	ErrExtraction = errors.New("extraction failed")
)

// extractionError carries the user-facing message of a failed extraction
// while matching ErrExtraction.
type extractionError string

func (e extractionError) Error() string { return string(e) }

func (e extractionError) Is(target error) bool { return target == ErrExtraction }

const (
	errBookingExtraction    extractionError = "Failed to extract booking details from email"
	errCustomerExtraction   extractionError = "Failed to generate customer reply"
	errDocumentExtraction   extractionError = "Failed to validate document"
	errManagementExtraction extractionError = "Failed to analyze management issue"
)
