// Package intake accepts email submissions, runs them through the workflow,
// and serves the per-email detail view and raw submission archive.
package intake

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/internal/executions"
	"github.com/JaimeStill/freightdesk/internal/workflow"
)

// Submission is the request body of POST /emails/process.
type Submission struct {
	Subject   string `json:"subject" validate:"required"`
	Sender    string `json:"sender" validate:"email"`
	Recipient string `json:"recipient" validate:"email"`
	Body      string `json:"body" validate:"required"`
}

// Email converts the submission to workflow input.
func (s Submission) Email() workflow.Email {
	return workflow.Email{
		Subject:   s.Subject,
		Sender:    s.Sender,
		Recipient: s.Recipient,
		Body:      s.Body,
	}
}

// Detail is an email with its execution history and the record its
// handler produced. Related is a shipment, document, or issue, or nil.
type Detail struct {
	Email      emails.Email           `json:"email"`
	Executions []executions.Execution `json:"executions"`
	Related    any                    `json:"related"`
}

// Archive is the raw submission as stored in blob storage.
type Archive struct {
	EmailID    uuid.UUID  `json:"email_id"`
	ReceivedAt time.Time  `json:"received_at"`
	Submission Submission `json:"submission"`
}

// ArchiveKey returns the blob key of an email's archived submission.
func ArchiveKey(emailID uuid.UUID) string {
	return "emails/" + emailID.String() + "/message.json"
}
