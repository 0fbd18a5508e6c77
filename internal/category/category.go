// Package category defines the five email categories and the label
// normalization the classifier relies on.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a routing label assigned to an email.
type Category string

const (
	Booking    Category = "booking"
	Tracking   Category = "tracking"
	Customer   Category = "customer"
	Documents  Category = "documents"
	Management Category = "management"
)

// Default is the category used when classification is impossible.
const Default = Customer

// ErrInvalid indicates a label outside the five known categories.
var ErrInvalid = errors.New("invalid category")

var ordered = []Category{Booking, Tracking, Customer, Documents, Management}

var descriptions = map[Category]string{
	Booking:    "Emails requesting to create new shipments or bookings",
	Tracking:   "Emails asking about shipment status, ETAs, or tracking information",
	Customer:   "General customer service inquiries, complaints, or questions",
	Documents:  "Emails about Shipping Instructions (SI) or Bill of Lading (BL) validation",
	Management: "Critical issues, escalations, or problems requiring management attention",
}

// All returns the five categories in their canonical order.
func All() []Category {
	out := make([]Category, len(ordered))
	copy(out, ordered)
	return out
}

// Valid reports whether c is one of the five categories.
func (c Category) Valid() bool {
	_, ok := descriptions[c]
	return ok
}

// Description returns the one-line summary shown to the classifier.
func (c Category) Description() string {
	return descriptions[c]
}

func (c Category) String() string {
	return string(c)
}

// Normalize trims and lowercases raw and reports whether the result is a
// known category. On failure the returned category is Default.
func Normalize(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return Default, false
	}
	return c, true
}

// Parse is Normalize for request input, returning ErrInvalid on failure.
func Parse(raw string) (Category, error) {
	c, ok := Normalize(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	return c, nil
}
