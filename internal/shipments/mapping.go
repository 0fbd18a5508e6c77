package shipments

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/pkg/query"
	"github.com/JaimeStill/freightdesk/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "shipments", "s").
	Project("id", "ID").
	Project("email_id", "EmailID").
	Project("tracking_number", "TrackingNumber").
	Project("origin", "Origin").
	Project("destination", "Destination").
	Project("cargo_details", "CargoDetails").
	Project("status", "Status").
	Project("estimated_delivery", "EstimatedDelivery").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const returning = `RETURNING id, email_id, tracking_number, origin, destination,
	cargo_details, status, estimated_delivery, created_at, updated_at`

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for shipment queries.
// Status and EmailID match exactly; Origin and Destination use
// case-insensitive contains matching.
type Filters struct {
	Status      *string    `json:"status,omitempty"`
	EmailID     *uuid.UUID `json:"email_id,omitempty"`
	Origin      *string    `json:"origin,omitempty"`
	Destination *string    `json:"destination,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("EmailID", f.EmailID).
		WhereContains("Origin", f.Origin).
		WhereContains("Destination", f.Destination)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if id, err := uuid.Parse(values.Get("email_id")); err == nil {
		f.EmailID = &id
	}

	if o := values.Get("origin"); o != "" {
		f.Origin = &o
	}

	if d := values.Get("destination"); d != "" {
		f.Destination = &d
	}

	return f
}

func scanShipment(s repository.Scanner) (Shipment, error) {
	var (
		sh    Shipment
		cargo repository.JSON[Cargo]
	)
	err := s.Scan(
		&sh.ID,
		&sh.EmailID,
		&sh.TrackingNumber,
		&sh.Origin,
		&sh.Destination,
		&cargo,
		&sh.Status,
		&sh.EstimatedDelivery,
		&sh.CreatedAt,
		&sh.UpdatedAt,
	)
	sh.CargoDetails = cargo.V
	return sh, err
}
