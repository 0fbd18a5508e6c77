package emails

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

// New creates an email repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "emails"),
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
) (*pagination.PageResult[Email], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Subject", "Body")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	pageSQL, pageArgs := qb.BuildPage(page.Limit, page.Offset)

	items, total, err := repository.QueryPage(ctx, r.db, countSQL, countArgs, pageSQL, pageArgs, scanEmail)
	if err != nil {
		return nil, fmt.Errorf("query emails: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Limit, page.Offset)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Email, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEmail)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Email, error) {
	status := cmd.Status
	if status == "" {
		status = StatusPending
	}

	q := `
		INSERT INTO emails(subject, sender, recipient, body, status)
		VALUES ($1, $2, $3, $4, $5)
		` + returning

	args := []any{cmd.Subject, cmd.Sender, cmd.Recipient, cmd.Body, status}

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEmail)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("email stored", "id", e.ID, "status", e.Status)
	return &e, nil
}

func (r *repo) Finalize(ctx context.Context, id uuid.UUID, cmd FinalizeCommand) (*Email, error) {
	q := `
		UPDATE emails
		SET classification = $1, classification_fallback = $2, status = $3, updated_at = NOW()
		WHERE id = $4
		` + returning

	args := []any{cmd.Classification, cmd.Fallback, cmd.Status, id}

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Email, error) {
		return repository.QueryOne(ctx, tx, q, args, scanEmail)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &e, nil
}
