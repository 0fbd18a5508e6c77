package documents

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

// New creates a document repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "documents"),
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
) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "DocumentNumber", "DocumentType")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	pageSQL, pageArgs := qb.BuildPage(page.Limit, page.Offset)

	docs, total, err := repository.QueryPage(ctx, r.db, countSQL, countArgs, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Limit, page.Offset)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	doc, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &doc, nil
}

func (r *repo) FindByEmail(ctx context.Context, emailID uuid.UUID) (*Document, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("EmailID", &emailID).
		BuildFirst()

	doc, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &doc, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	notes := cmd.Notes
	if notes.Issues == nil {
		notes.Issues = []string{}
	}

	q := `
		INSERT INTO documents(email_id, document_type, document_number,
			validation_status, validation_notes)
		VALUES ($1, $2, $3, $4, $5)
		` + returning

	args := []any{
		cmd.EmailID,
		cmd.DocumentType,
		cmd.DocumentNumber,
		ValidationStatus(cmd.Valid),
		repository.JSON[Notes]{V: notes},
	}

	doc, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"document validated",
		"id", doc.ID,
		"document_type", doc.DocumentType,
		"validation_status", doc.ValidationStatus,
	)
	return &doc, nil
}
