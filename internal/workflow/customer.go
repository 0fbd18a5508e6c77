package workflow

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/prompts"
	"github.com/JaimeStill/freightdesk/pkg/formatting"
)

const (
	customerTemperature = 0.7
	defaultTone         = "professional"
)

var tones = []string{"professional", "friendly", "apologetic"}

type customerReply struct {
	ReplyText        looseString `json:"replyText"`
	Tone             looseString `json:"tone"`
	SuggestedActions looseList   `json:"suggestedActions"`
}

// HandleCustomer drafts a reply to a general customer inquiry. Nothing is
// persisted beyond the execution record.
func HandleCustomer(ctx context.Context, rt *Runtime, email Email, emailID uuid.UUID) Result {
	prompt := ComposePrompt(ctx, rt, prompts.StageCustomer, email)

	reply, err := rt.Gateway.Invoke(ctx, prompt, customerTemperature)
	if err != nil {
		return fail(err)
	}

	parsed, err := formatting.Parse[customerReply](reply)
	if err != nil {
		rt.Logger.WarnContext(ctx, "customer reply extraction failed", "email_id", emailID, "error", err)
		return fail(errCustomerExtraction)
	}

	tone := strings.ToLower(strings.TrimSpace(string(parsed.Tone)))
	if !slices.Contains(tones, tone) {
		tone = defaultTone
	}

	return Result{
		Success: true,
		Data: CustomerReply{
			ReplyText:        string(parsed.ReplyText),
			Tone:             tone,
			SuggestedActions: orEmpty(parsed.SuggestedActions),
		},
	}
}
