package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/category"
	"github.com/JaimeStill/freightdesk/internal/documents"
	"github.com/JaimeStill/freightdesk/internal/executions"
	"github.com/JaimeStill/freightdesk/internal/issues"
	"github.com/JaimeStill/freightdesk/internal/shipments"
	"github.com/JaimeStill/freightdesk/internal/workflow"
	"github.com/JaimeStill/freightdesk/pkg/storage"
	"github.com/JaimeStill/freightdesk/pkg/validation"
)

type relatedFunc func(ctx context.Context, emailID uuid.UUID) (any, error)

type repo struct {
	rt      *workflow.Runtime
	src     Sources
	related map[category.Category]relatedFunc
	logger  *slog.Logger
}

// New creates the intake system. rt drives processing; src backs the
// detail and archive views.
func New(rt *workflow.Runtime, src Sources, logger *slog.Logger) System {
	return &repo{
		rt:  rt,
		src: src,
		related: map[category.Category]relatedFunc{
			category.Booking:    related(src.Shipments.FindByEmail, shipments.ErrNotFound),
			category.Documents:  related(src.Documents.FindByEmail, documents.ErrNotFound),
			category.Management: related(src.Issues.FindByEmail, issues.ErrNotFound),
		},
		logger: logger.With("system", "intake"),
	}
}

// related adapts a typed by-email lookup. A missing record is nil, not an error.
func related[T any](find func(context.Context, uuid.UUID) (*T, error), notFound error) relatedFunc {
	return func(ctx context.Context, emailID uuid.UUID) (any, error) {
		v, err := find(ctx, emailID)
		if errors.Is(err, notFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (r *repo) Handler(maxBodySize int64) *Handler {
	return NewHandler(r, r.logger, maxBodySize)
}

// Validate checks a submission and returns an error wrapping both
// ErrValidation and the *validation.Error describing the first failure.
func Validate(sub Submission) error {
	if err := validation.Struct(sub); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func (r *repo) Process(ctx context.Context, sub Submission) (*workflow.Outcome, error) {
	if err := Validate(sub); err != nil {
		return nil, err
	}

	out, err := workflow.Execute(ctx, r.rt, sub.Email())
	if err != nil {
		return nil, err
	}

	r.archive(ctx, out.EmailID, sub)

	r.logger.InfoContext(
		ctx, "email processed",
		"email_id", out.EmailID,
		"classification", out.Classification,
		"success", out.Success,
	)
	return out, nil
}

func (r *repo) archive(ctx context.Context, emailID uuid.UUID, sub Submission) {
	if r.src.Storage == nil || !r.src.Storage.Enabled() {
		return
	}

	a := Archive{
		EmailID:    emailID,
		ReceivedAt: r.rt.Time().UTC(),
		Submission: sub,
	}

	if err := storage.PutJSON(ctx, r.src.Storage, ArchiveKey(emailID), a); err != nil {
		r.logger.WarnContext(ctx, "archive upload failed", "email_id", emailID, "error", err)
	}
}

func (r *repo) Detail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	email, err := r.src.Emails.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &Detail{Email: *email}

	d.Executions, err = r.src.Executions.ListByEmail(ctx, id)
	if err != nil {
		r.logger.WarnContext(ctx, "execution lookup failed", "email_id", id, "error", err)
	}
	if d.Executions == nil {
		d.Executions = []executions.Execution{}
	}

	if email.Classification != nil {
		if find, ok := r.related[*email.Classification]; ok {
			rel, err := find(ctx, id)
			if err != nil {
				r.logger.WarnContext(ctx, "related record lookup failed", "email_id", id, "error", err)
			}
			d.Related = rel
		}
	}

	return d, nil
}

func (r *repo) Archived(ctx context.Context, id uuid.UUID) (*Archive, error) {
	if r.src.Storage == nil {
		return nil, storage.ErrDisabled
	}

	var a Archive
	if err := storage.GetJSON(ctx, r.src.Storage, ArchiveKey(id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}
