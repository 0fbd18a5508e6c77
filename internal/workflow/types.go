package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/category"
	"github.com/JaimeStill/freightdesk/internal/documents"
	"github.com/JaimeStill/freightdesk/internal/shipments"
)

// Email is the message content that flows through the workflow.
type Email struct {
	Subject   string `json:"subject"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
}

// Result is the outcome of a category handler. Data holds the handler's
// typed payload on success; Error holds the failure message otherwise and
// Err the underlying error.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Err     error  `json:"-"`
}

func fail(err error) Result {
	return Result{Error: err.Error(), Err: err}
}

// Handler processes an email that has been classified into its category.
// Handlers report failure through Result and never return an error.
type Handler func(ctx context.Context, rt *Runtime, email Email, emailID uuid.UUID) Result

// Classification is a classifier decision. Fallback is empty when the model
// returned a valid label and otherwise names why Category is the default.
type Classification struct {
	Category category.Category `json:"category"`
	Fallback string            `json:"fallback,omitempty"`
}

// Outcome is the result of running one email through the workflow.
type Outcome struct {
	EmailID        uuid.UUID         `json:"email_id"`
	Classification category.Category `json:"classification"`
	Success        bool              `json:"success"`
	Result         Result            `json:"result"`
	Error          string            `json:"error,omitempty"`
}

// BookingResult is the payload of a successful booking.
type BookingResult struct {
	TrackingNumber    string          `json:"trackingNumber"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	CargoDetails      shipments.Cargo `json:"cargoDetails"`
	Status            string          `json:"status"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	Persisted         bool            `json:"persisted"`
}

// TrackingEvent is a single step in a shipment's history.
type TrackingEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
}

// TrackingResult is the payload of a tracking lookup. ETA is an RFC 3339
// timestamp, or "N/A" when the shipment is unknown.
type TrackingResult struct {
	TrackingNumber string          `json:"trackingNumber"`
	CurrentStatus  string          `json:"currentStatus"`
	Location       string          `json:"location"`
	ETA            string          `json:"eta"`
	Events         []TrackingEvent `json:"events"`
}

// CustomerReply is a drafted response to a customer inquiry.
type CustomerReply struct {
	ReplyText        string   `json:"replyText"`
	Tone             string   `json:"tone"`
	SuggestedActions []string `json:"suggestedActions"`
}

// DocumentValidation is the payload of a document check.
type DocumentValidation struct {
	DocumentType    string          `json:"documentType"`
	DocumentNumber  string          `json:"documentNumber"`
	IsValid         *bool           `json:"isValid"`
	ValidationNotes documents.Notes `json:"validationNotes"`
}

// IssueAssessment is the payload of a management review.
type IssueAssessment struct {
	Severity           string   `json:"severity"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	RecommendedActions []string `json:"recommendedActions"`
	Escalate           *bool    `json:"escalate"`
}
