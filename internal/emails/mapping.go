package emails

import (
	"net/url"

	"github.com/JaimeStill/freightdesk/internal/category"
	"github.com/JaimeStill/freightdesk/pkg/query"
	"github.com/JaimeStill/freightdesk/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "emails", "e").
	Project("id", "ID").
	Project("subject", "Subject").
	Project("sender", "Sender").
	Project("recipient", "Recipient").
	Project("body", "Body").
	Project("classification", "Classification").
	Project("classification_fallback", "ClassificationFallback").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const returning = `RETURNING id, subject, sender, recipient, body, classification,
	classification_fallback, status, created_at, updated_at`

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters narrows email queries by exact status and classification.
type Filters struct {
	Status         *string            `json:"status,omitempty"`
	Classification *category.Category `json:"classification,omitempty"`
	Sender         *string            `json:"sender,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("Classification", f.Classification).
		WhereContains("Sender", f.Sender)
}

// FiltersFromQuery extracts filter values from URL query parameters. An
// unknown classification returns category.ErrInvalid.
func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if c := values.Get("classification"); c != "" {
		cat := category.Category(c)
		f.Classification = &cat
	}

	if s := values.Get("sender"); s != "" {
		f.Sender = &s
	}

	return f, f.normalize()
}

// normalize lower-cases the classification filter and rejects labels
// outside the five categories.
func (f *Filters) normalize() error {
	if f.Classification == nil {
		return nil
	}
	c, err := category.Parse(string(*f.Classification))
	if err != nil {
		return err
	}
	f.Classification = &c
	return nil
}

func scanEmail(s repository.Scanner) (Email, error) {
	var e Email
	err := s.Scan(
		&e.ID,
		&e.Subject,
		&e.Sender,
		&e.Recipient,
		&e.Body,
		&e.Classification,
		&e.ClassificationFallback,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}
