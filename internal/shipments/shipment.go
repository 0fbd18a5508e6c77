// Package shipments stores bookings extracted from booking emails.
package shipments

import (
	"time"

	"github.com/google/uuid"
)

// StatusBooked is the initial status of every shipment created from an email.
const StatusBooked = "booked"

// Cargo describes what a shipment carries. Fields the sender did not
// mention are nil.
type Cargo struct {
	Type       string  `json:"type"`
	Weight     *string `json:"weight"`
	Dimensions *string `json:"dimensions"`
	Quantity   *int    `json:"quantity"`
}

// Shipment is a booked consignment identified by its tracking number.
type Shipment struct {
	ID                uuid.UUID  `json:"id"`
	EmailID           uuid.UUID  `json:"email_id"`
	TrackingNumber    string     `json:"tracking_number"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	CargoDetails      Cargo      `json:"cargo_details"`
	Status            string     `json:"status"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CreateCommand inserts a shipment. An empty Status stores StatusBooked.
type CreateCommand struct {
	EmailID           uuid.UUID
	TrackingNumber    string
	Origin            string
	Destination       string
	CargoDetails      Cargo
	Status            string
	EstimatedDelivery *time.Time
}
