package issues

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/pkg/query"
	"github.com/JaimeStill/freightdesk/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "issues", "i").
	Project("id", "ID").
	Project("email_id", "EmailID").
	Project("severity", "Severity").
	Project("title", "Title").
	Project("description", "Description").
	Project("recommended_actions", "RecommendedActions").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("resolved_at", "ResolvedAt")

const returning = `RETURNING id, email_id, severity, title, description,
	recommended_actions, status, created_at, resolved_at`

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters narrows issue queries. All fields match exactly.
type Filters struct {
	Severity *string    `json:"severity,omitempty"`
	Status   *string    `json:"status,omitempty"`
	EmailID  *uuid.UUID `json:"email_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Severity", f.Severity).
		WhereEquals("Status", f.Status).
		WhereEquals("EmailID", f.EmailID)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("severity"); s != "" {
		f.Severity = &s
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if id, err := uuid.Parse(values.Get("email_id")); err == nil {
		f.EmailID = &id
	}

	return f
}

func scanIssue(s repository.Scanner) (Issue, error) {
	var (
		i       Issue
		actions repository.JSON[[]string]
	)
	err := s.Scan(
		&i.ID,
		&i.EmailID,
		&i.Severity,
		&i.Title,
		&i.Description,
		&actions,
		&i.Status,
		&i.CreatedAt,
		&i.ResolvedAt,
	)
	i.RecommendedActions = actions.V
	if i.RecommendedActions == nil {
		i.RecommendedActions = []string{}
	}
	return i, err
}
