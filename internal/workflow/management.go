package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/issues"
	"github.com/JaimeStill/freightdesk/internal/prompts"
	"github.com/JaimeStill/freightdesk/pkg/formatting"
	"github.com/JaimeStill/freightdesk/pkg/metrics"
)

const managementTemperature = 0.3

type managementReply struct {
	Severity           looseString `json:"severity"`
	Title              looseString `json:"title"`
	Description        looseString `json:"description"`
	RecommendedActions looseList   `json:"recommendedActions"`
	Escalate           looseBool   `json:"escalate"`
}

// HandleManagement assesses an issue needing management attention and
// records it, escalated when the model asks for escalation.
func HandleManagement(ctx context.Context, rt *Runtime, email Email, emailID uuid.UUID) Result {
	prompt := ComposePrompt(ctx, rt, prompts.StageManagement, email)

	reply, err := rt.Gateway.Invoke(ctx, prompt, managementTemperature)
	if err != nil {
		return fail(err)
	}

	parsed, err := formatting.Parse[managementReply](reply)
	if err != nil {
		rt.Logger.WarnContext(ctx, "management extraction failed", "email_id", emailID, "error", err)
		return fail(errManagementExtraction)
	}

	assessment := IssueAssessment{
		Severity:           issues.NormalizeSeverity(string(parsed.Severity)),
		Title:              string(parsed.Title),
		Description:        string(parsed.Description),
		RecommendedActions: orEmpty(parsed.RecommendedActions),
		Escalate:           optBool(parsed.Escalate),
	}

	_, err = rt.Issues.Create(ctx, issues.CreateCommand{
		EmailID:            emailID,
		Severity:           assessment.Severity,
		Title:              assessment.Title,
		Description:        assessment.Description,
		RecommendedActions: assessment.RecommendedActions,
		Escalate:           parsed.Escalate.value,
	})
	if err != nil {
		rt.Logger.ErrorContext(ctx, "issue insert failed", "email_id", emailID, "error", err)
		metrics.RecordPersistenceFailure("issues")
	}

	return Result{Success: true, Data: assessment}
}
