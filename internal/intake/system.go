package intake

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/documents"
	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/internal/executions"
	"github.com/JaimeStill/freightdesk/internal/issues"
	"github.com/JaimeStill/freightdesk/internal/shipments"
	"github.com/JaimeStill/freightdesk/internal/workflow"
	"github.com/JaimeStill/freightdesk/pkg/storage"
)

// System defines the public contract for email intake.
type System interface {
	Handler(maxBodySize int64) *Handler

	// Process validates sub and runs it through the workflow. Only
	// validation (ErrValidation) and storing the email
	// (workflow.ErrPersistence) fail the call.
	Process(ctx context.Context, sub Submission) (*workflow.Outcome, error)

	Detail(ctx context.Context, id uuid.UUID) (*Detail, error)
	Archived(ctx context.Context, id uuid.UUID) (*Archive, error)
}

type EmailFinder interface {
	Find(ctx context.Context, id uuid.UUID) (*emails.Email, error)
}

type ExecutionLister interface {
	ListByEmail(ctx context.Context, emailID uuid.UUID) ([]executions.Execution, error)
}

type ShipmentFinder interface {
	FindByEmail(ctx context.Context, emailID uuid.UUID) (*shipments.Shipment, error)
}

type DocumentFinder interface {
	FindByEmail(ctx context.Context, emailID uuid.UUID) (*documents.Document, error)
}

type IssueFinder interface {
	FindByEmail(ctx context.Context, emailID uuid.UUID) (*issues.Issue, error)
}

// Sources are the stores the detail and archive views read from.
type Sources struct {
	Emails     EmailFinder
	Executions ExecutionLister
	Shipments  ShipmentFinder
	Documents  DocumentFinder
	Issues     IssueFinder
	Storage    storage.System
}
