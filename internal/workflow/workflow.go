// Package workflow classifies inbound logistics email and routes it to the
// handler for its category. Execute runs the full pipeline:
// persist → classify → route → handle → finalize.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/internal/executions"
	"github.com/JaimeStill/freightdesk/pkg/metrics"
)

// Execute runs email through the workflow. Only a failure to store the
// email is returned as an error (wrapping ErrPersistence). Handler failures
// are reported through Outcome.Success, and failures writing the final
// state are logged and joined into Outcome.Error.
func Execute(ctx context.Context, rt *Runtime, email Email) (*Outcome, error) {
	record, err := rt.Emails.Create(ctx, emails.CreateCommand{
		Subject:   email.Subject,
		Sender:    email.Sender,
		Recipient: email.Recipient,
		Body:      email.Body,
		Status:    emails.StatusProcessing,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	logger := rt.Logger.With("email_id", record.ID)

	classification := ClassifyDetailed(ctx, rt, email)
	logger.InfoContext(
		ctx, "email classified",
		"phase", "classifying",
		"classification", classification.Category,
		"fallback", classification.Fallback,
	)

	handle := Route(classification.Category)

	started := rt.Time()
	result := handle(ctx, rt, email, record.ID)
	metrics.RecordHandler(string(classification.Category), result.Success, rt.Time().Sub(started))

	logger.InfoContext(
		ctx, "handler complete",
		"phase", "handling",
		"classification", classification.Category,
		"success", result.Success,
	)

	outcome := &Outcome{
		EmailID:        record.ID,
		Classification: classification.Category,
		Success:        result.Success,
		Result:         result,
	}

	if err := finalize(context.WithoutCancel(ctx), rt, record.ID, email, classification, result, started); err != nil {
		logger.ErrorContext(ctx, "finalize incomplete", "phase", "finalized", "error", err)
		outcome.Error = err.Error()
	}

	return outcome, nil
}

// finalize records the outcome on the email and writes the execution
// record. Both writes are attempted; their failures are joined.
func finalize(
	ctx context.Context,
	rt *Runtime,
	emailID uuid.UUID,
	email Email,
	classification Classification,
	result Result,
	started time.Time,
) error {
	emailStatus := emails.StatusCompleted
	execStatus := executions.StatusCompleted
	if !result.Success {
		emailStatus = emails.StatusFailed
		execStatus = executions.StatusFailed
	}

	var errs []error

	_, err := rt.Emails.Finalize(ctx, emailID, emails.FinalizeCommand{
		Classification: classification.Category,
		Fallback:       fallback(classification),
		Status:         emailStatus,
	})
	if err != nil {
		metrics.RecordPersistenceFailure("emails")
		errs = append(errs, fmt.Errorf("update email: %w", err))
	}

	cmd := executions.CreateCommand{
		EmailID:     emailID,
		AgentType:   classification.Category,
		Status:      execStatus,
		Input:       email,
		StartedAt:   started,
		CompletedAt: rt.Time(),
	}
	if result.Success {
		cmd.Output = result.Data
	} else {
		msg := result.Error
		cmd.Error = &msg
	}

	if _, err := rt.Executions.Create(ctx, cmd); err != nil {
		metrics.RecordPersistenceFailure("agent_executions")
		errs = append(errs, fmt.Errorf("record execution: %w", err))
	}

	metrics.RecordEmailProcessed(string(classification.Category), emailStatus)

	return errors.Join(errs...)
}

func fallback(c Classification) *string {
	if c.Fallback == "" {
		return nil
	}
	reason := c.Fallback
	return &reason
}

