package shipments

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/pkg/pagination"
)

// System defines the public contract for shipment storage.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Shipment], error)

	Find(ctx context.Context, id uuid.UUID) (*Shipment, error)
	FindByTracking(ctx context.Context, number string) (*Shipment, error)
	FindByEmail(ctx context.Context, emailID uuid.UUID) (*Shipment, error)
	Create(ctx context.Context, cmd CreateCommand) (*Shipment, error)
}
