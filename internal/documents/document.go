// Package documents records the validation outcome of shipping
// instruction (SI) and bill of lading (BL) documents referenced by emails.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Validation outcomes stored in validation_status.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

// Notes captures the checks behind a validation outcome. Completeness and
// Accuracy are nil when the model did not report them.
type Notes struct {
	Completeness *bool    `json:"completeness"`
	Accuracy     *bool    `json:"accuracy"`
	Issues       []string `json:"issues"`
}

// Document is a validated document referenced by an email.
type Document struct {
	ID               uuid.UUID `json:"id"`
	EmailID          uuid.UUID `json:"email_id"`
	DocumentType     string    `json:"document_type"`
	DocumentNumber   string    `json:"document_number"`
	ValidationStatus string    `json:"validation_status"`
	ValidationNotes  Notes     `json:"validation_notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateCommand inserts a document validation record.
type CreateCommand struct {
	EmailID        uuid.UUID
	DocumentType   string
	DocumentNumber string
	Valid          bool
	Notes          Notes
}

// ValidationStatus converts a validity flag to its stored status.
func ValidationStatus(valid bool) string {
	if valid {
		return StatusValid
	}
	return StatusInvalid
}
