package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/documents"
	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/internal/executions"
	"github.com/JaimeStill/freightdesk/internal/issues"
	"github.com/JaimeStill/freightdesk/internal/prompts"
	"github.com/JaimeStill/freightdesk/internal/shipments"
	"github.com/JaimeStill/freightdesk/pkg/gateway"
)

// PromptSource resolves the instructions and response format for a stage.
type PromptSource interface {
	Instructions(ctx context.Context, stage prompts.Stage) (string, error)
	Spec(ctx context.Context, stage prompts.Stage) (string, error)
}

// EmailStore persists emails and their final outcome.
type EmailStore interface {
	Create(ctx context.Context, cmd emails.CreateCommand) (*emails.Email, error)
	Finalize(ctx context.Context, id uuid.UUID, cmd emails.FinalizeCommand) (*emails.Email, error)
}

// ExecutionStore records one handler execution per processed email.
type ExecutionStore interface {
	Create(ctx context.Context, cmd executions.CreateCommand) (*executions.Execution, error)
}

// ShipmentStore books shipments and looks them up by tracking number.
type ShipmentStore interface {
	Create(ctx context.Context, cmd shipments.CreateCommand) (*shipments.Shipment, error)
	FindByTracking(ctx context.Context, number string) (*shipments.Shipment, error)
}

// DocumentStore records document validation outcomes.
type DocumentStore interface {
	Create(ctx context.Context, cmd documents.CreateCommand) (*documents.Document, error)
}

// IssueStore records management issues.
type IssueStore interface {
	Create(ctx context.Context, cmd issues.CreateCommand) (*issues.Issue, error)
}

// Runtime bundles the dependencies that the classifier, the category
// handlers, and the orchestrator require. It is constructed by higher-level
// composition code from Infrastructure and Domain systems.
type Runtime struct {
	Gateway    gateway.System
	Prompts    PromptSource
	Emails     EmailStore
	Executions ExecutionStore
	Shipments  ShipmentStore
	Documents  DocumentStore
	Issues     IssueStore
	Logger     *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Time reads the runtime clock.
func (rt *Runtime) Time() time.Time {
	if rt.Now != nil {
		return rt.Now()
	}
	return time.Now()
}
