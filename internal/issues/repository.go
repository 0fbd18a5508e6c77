package issues

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

// New creates an issue repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "issues"),
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
) (*pagination.PageResult[Issue], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	pageSQL, pageArgs := qb.BuildPage(page.Limit, page.Offset)

	items, total, err := repository.QueryPage(ctx, r.db, countSQL, countArgs, pageSQL, pageArgs, scanIssue)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Limit, page.Offset)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Issue, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	i, err := repository.QueryOne(ctx, r.db, q, args, scanIssue)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &i, nil
}

func (r *repo) FindByEmail(ctx context.Context, emailID uuid.UUID) (*Issue, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("EmailID", &emailID).
		BuildFirst()

	i, err := repository.QueryOne(ctx, r.db, q, args, scanIssue)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &i, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Issue, error) {
	actions := cmd.RecommendedActions
	if actions == nil {
		actions = []string{}
	}

	q := `
		INSERT INTO issues(email_id, severity, title, description, recommended_actions, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		` + returning

	args := []any{
		cmd.EmailID,
		NormalizeSeverity(cmd.Severity),
		cmd.Title,
		cmd.Description,
		repository.JSON[[]string]{V: actions},
		InitialStatus(cmd.Escalate),
	}

	i, err := repository.QueryOne(ctx, r.db, q, args, scanIssue)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("issue raised", "id", i.ID, "severity", i.Severity, "status", i.Status)
	return &i, nil
}

func (r *repo) Resolve(ctx context.Context, id uuid.UUID) (*Issue, error) {
	i, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Issue, error) {
		q, args := query.NewBuilder(projection).BuildSingle("ID", id)
		current, err := repository.QueryOne(ctx, tx, q+" FOR UPDATE", args, scanIssue)
		if err != nil {
			return Issue{}, err
		}
		if current.Status == StatusResolved {
			return Issue{}, ErrAlreadyResolved
		}

		update := `
			UPDATE issues
			SET status = $1, resolved_at = NOW()
			WHERE id = $2
			` + returning

		return repository.QueryOne(ctx, tx, update, []any{StatusResolved, id}, scanIssue)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("issue resolved", "id", i.ID)
	return &i, nil
}
