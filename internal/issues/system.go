package issues

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/pkg/pagination"
)

// System defines the public contract for issue tracking.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Issue], error)

	Find(ctx context.Context, id uuid.UUID) (*Issue, error)
	FindByEmail(ctx context.Context, emailID uuid.UUID) (*Issue, error)
	Create(ctx context.Context, cmd CreateCommand) (*Issue, error)

	// Resolve closes an open or escalated issue and stamps resolved_at.
	Resolve(ctx context.Context, id uuid.UUID) (*Issue, error)
}
