package executions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/freightdesk/internal/category"
	"github.com/JaimeStill/freightdesk/pkg/query"
	"github.com/JaimeStill/freightdesk/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an execution repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "executions"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Execution, error) {
	q := `
		INSERT INTO agent_executions(email_id, agent_type, status, input, output, error, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, email_id, agent_type, status, input, output, error, started_at, completed_at`

	args := []any{
		cmd.EmailID,
		cmd.AgentType,
		cmd.Status,
		repository.JSON[any]{V: cmd.Input},
		jsonArg(cmd.Output),
		cmd.Error,
		cmd.StartedAt,
		cmd.CompletedAt,
	}

	e, err := repository.QueryOne(ctx, r.db, q, args, scanExecution)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) ListByEmail(ctx context.Context, emailID uuid.UUID) ([]Execution, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("EmailID", emailID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanExecution)
	if err != nil {
		return nil, fmt.Errorf("query executions for email %s: %w", emailID, err)
	}
	return items, nil
}

func (r *repo) ListByAgent(ctx context.Context, c category.Category) ([]Execution, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("AgentType", c).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanExecution)
	if err != nil {
		return nil, fmt.Errorf("query %s executions: %w", c, err)
	}
	return items, nil
}

func (r *repo) Status(ctx context.Context, c category.Category) (*Stats, error) {
	records, err := r.ListByAgent(ctx, c)
	if err != nil {
		return nil, err
	}
	stats := Compute(c, records)
	return &stats, nil
}

func (r *repo) Statuses(ctx context.Context) ([]Stats, error) {
	all := category.All()
	results := make([]*Stats, len(all))

	var g errgroup.Group
	for i, c := range all {
		g.Go(func() error {
			stats, err := r.Status(ctx, c)
			if err != nil {
				r.logger.ErrorContext(ctx, "category status unavailable", "category", c, "error", err)
				return nil
			}
			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Stats, 0, len(all))
	for _, s := range results {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}
