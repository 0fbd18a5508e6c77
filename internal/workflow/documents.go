package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/documents"
	"github.com/JaimeStill/freightdesk/internal/prompts"
	"github.com/JaimeStill/freightdesk/pkg/formatting"
	"github.com/JaimeStill/freightdesk/pkg/metrics"
)

const documentsTemperature = 0.2

type documentReply struct {
	DocumentType   looseString `json:"documentType"`
	DocumentNumber looseString `json:"documentNumber"`
	IsValid        looseBool   `json:"isValid"`
	Completeness   looseBool   `json:"completeness"`
	Accuracy       looseBool   `json:"accuracy"`
	Issues         looseList   `json:"issues"`
}

// HandleDocuments validates an SI or BL document described in the email
// and records the outcome.
func HandleDocuments(ctx context.Context, rt *Runtime, email Email, emailID uuid.UUID) Result {
	prompt := ComposePrompt(ctx, rt, prompts.StageDocuments, email)

	reply, err := rt.Gateway.Invoke(ctx, prompt, documentsTemperature)
	if err != nil {
		return fail(err)
	}

	parsed, err := formatting.Parse[documentReply](reply)
	if err != nil {
		rt.Logger.WarnContext(ctx, "document extraction failed", "email_id", emailID, "error", err)
		return fail(errDocumentExtraction)
	}

	validation := DocumentValidation{
		DocumentType:   string(parsed.DocumentType),
		DocumentNumber: string(parsed.DocumentNumber),
		IsValid:        optBool(parsed.IsValid),
		ValidationNotes: documents.Notes{
			Completeness: optBool(parsed.Completeness),
			Accuracy:     optBool(parsed.Accuracy),
			Issues:       orEmpty(parsed.Issues),
		},
	}

	_, err = rt.Documents.Create(ctx, documents.CreateCommand{
		EmailID:        emailID,
		DocumentType:   validation.DocumentType,
		DocumentNumber: validation.DocumentNumber,
		Valid:          parsed.IsValid.value,
		Notes:          validation.ValidationNotes,
	})
	if err != nil {
		rt.Logger.ErrorContext(ctx, "document insert failed", "email_id", emailID, "error", err)
		metrics.RecordPersistenceFailure("documents")
	}

	return Result{Success: true, Data: validation}
}
