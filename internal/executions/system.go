package executions

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/category"
)

// System defines the public contract for execution records.
type System interface {
	Handler() *Handler

	Create(ctx context.Context, cmd CreateCommand) (*Execution, error)
	// ListByEmail returns an email's executions, most recent first.
	ListByEmail(ctx context.Context, emailID uuid.UUID) ([]Execution, error)
	ListByAgent(ctx context.Context, c category.Category) ([]Execution, error)

	// Status computes the statistics of one category.
	Status(ctx context.Context, c category.Category) (*Stats, error)
	// Statuses computes every category's statistics in category order.
	// A category whose records cannot be read is logged and omitted.
	Statuses(ctx context.Context) ([]Stats, error)
}
