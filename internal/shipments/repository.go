package shipments

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/pkg/pagination"
	"github.com/JaimeStill/freightdesk/pkg/query"
	"github.com/JaimeStill/freightdesk/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a shipment repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "shipments"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Shipment], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "TrackingNumber", "Origin", "Destination")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	pageSQL, pageArgs := qb.BuildPage(page.Limit, page.Offset)

	items, total, err := repository.QueryPage(ctx, r.db, countSQL, countArgs, pageSQL, pageArgs, scanShipment)
	if err != nil {
		return nil, fmt.Errorf("query shipments: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Limit, page.Offset)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Shipment, error) {
	return r.findBy(ctx, "ID", id)
}

func (r *repo) FindByTracking(ctx context.Context, number string) (*Shipment, error) {
	return r.findBy(ctx, "TrackingNumber", number)
}

func (r *repo) FindByEmail(ctx context.Context, emailID uuid.UUID) (*Shipment, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("EmailID", &emailID).
		BuildFirst()

	s, err := repository.QueryOne(ctx, r.db, q, args, scanShipment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &s, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Shipment, error) {
	status := cmd.Status
	if status == "" {
		status = StatusBooked
	}

	q := `
		INSERT INTO shipments(email_id, tracking_number, origin, destination,
			cargo_details, status, estimated_delivery)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		` + returning

	args := []any{
		cmd.EmailID,
		cmd.TrackingNumber,
		cmd.Origin,
		cmd.Destination,
		repository.JSON[Cargo]{V: cmd.CargoDetails},
		status,
		cmd.EstimatedDelivery,
	}

	s, err := repository.QueryOne(ctx, r.db, q, args, scanShipment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("shipment booked", "id", s.ID, "tracking_number", s.TrackingNumber)
	return &s, nil
}

func (r *repo) findBy(ctx context.Context, field string, value any) (*Shipment, error) {
	q, args := query.NewBuilder(projection).BuildSingle(field, value)

	s, err := repository.QueryOne(ctx, r.db, q, args, scanShipment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &s, nil
}
