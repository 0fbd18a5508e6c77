package emails

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/pkg/pagination"
)

// System defines the public contract for email storage.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Email], error)

	Find(ctx context.Context, id uuid.UUID) (*Email, error)
	Create(ctx context.Context, cmd CreateCommand) (*Email, error)
	Finalize(ctx context.Context, id uuid.UUID, cmd FinalizeCommand) (*Email, error)
}
