// Package emails stores submitted emails and their workflow outcome.
package emails

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/category"
)

// Email lifecycle states.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Reasons a classification fell back to the default category.
const (
	FallbackInvalidLabel = "invalid_label"
	FallbackModelError   = "model_error"
)

// Email is a submitted message and the state of its processing.
type Email struct {
	ID                     uuid.UUID          `json:"id"`
	Subject                string             `json:"subject"`
	Sender                 string             `json:"sender"`
	Recipient              string             `json:"recipient"`
	Body                   string             `json:"body"`
	Classification         *category.Category `json:"classification"`
	ClassificationFallback *string            `json:"classification_fallback"`
	Status                 string             `json:"status"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

// CreateCommand inserts a new email in the given status.
type CreateCommand struct {
	Subject   string
	Sender    string
	Recipient string
	Body      string
	Status    string
}

// FinalizeCommand records the workflow outcome on an email.
type FinalizeCommand struct {
	Classification category.Category
	Fallback       *string
	Status         string
}
