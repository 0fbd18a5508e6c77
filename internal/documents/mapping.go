package documents

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/pkg/query"
	"github.com/JaimeStill/freightdesk/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("email_id", "EmailID").
	Project("document_type", "DocumentType").
	Project("document_number", "DocumentNumber").
	Project("validation_status", "ValidationStatus").
	Project("validation_notes", "ValidationNotes").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const returning = `RETURNING id, email_id, document_type, document_number,
	validation_status, validation_notes, created_at, updated_at`

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored. DocumentType, ValidationStatus, and EmailID use
// exact matching. DocumentNumber uses case-insensitive contains matching.
type Filters struct {
	DocumentType     *string    `json:"document_type,omitempty"`
	DocumentNumber   *string    `json:"document_number,omitempty"`
	ValidationStatus *string    `json:"validation_status,omitempty"`
	EmailID          *uuid.UUID `json:"email_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("DocumentType", f.DocumentType).
		WhereContains("DocumentNumber", f.DocumentNumber).
		WhereEquals("ValidationStatus", f.ValidationStatus).
		WhereEquals("EmailID", f.EmailID)
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Document types are upper-cased to match the stored SI/BL codes.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if dt := values.Get("document_type"); dt != "" {
		dt = strings.ToUpper(dt)
		f.DocumentType = &dt
	}

	if dn := values.Get("document_number"); dn != "" {
		f.DocumentNumber = &dn
	}

	if vs := values.Get("validation_status"); vs != "" {
		f.ValidationStatus = &vs
	}

	if id, err := uuid.Parse(values.Get("email_id")); err == nil {
		f.EmailID = &id
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var (
		d     Document
		notes repository.JSON[Notes]
	)
	err := s.Scan(
		&d.ID,
		&d.EmailID,
		&d.DocumentType,
		&d.DocumentNumber,
		&d.ValidationStatus,
		&notes,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	d.ValidationNotes = notes.V
	if d.ValidationNotes.Issues == nil {
		d.ValidationNotes.Issues = []string{}
	}
	return d, err
}
