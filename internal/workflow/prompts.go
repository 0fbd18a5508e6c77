package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/freightdesk/internal/prompts"
)

// ComposePrompt builds the model prompt for a stage from its instructions,
// the email, and the stage's response format. Lookup failures fall back to
// the built-in texts so that prompt storage never blocks the workflow.
// Only the classify stage shows the recipient.
func ComposePrompt(ctx context.Context, rt *Runtime, stage prompts.Stage, email Email) string {
	instructions := lookup(ctx, rt, stage, "instructions", prompts.Instructions, sourceInstructions(rt))
	spec := lookup(ctx, rt, stage, "spec", prompts.Spec, sourceSpec(rt))

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\nEmail Details:\n")
	fmt.Fprintf(&sb, "Subject: %s\n", email.Subject)
	fmt.Fprintf(&sb, "From: %s\n", email.Sender)
	if stage == prompts.StageClassify {
		fmt.Fprintf(&sb, "To: %s\n", email.Recipient)
	}
	fmt.Fprintf(&sb, "Body: %s\n\n", email.Body)
	sb.WriteString(spec)

	return sb.String()
}

type stageText func(ctx context.Context, stage prompts.Stage) (string, error)

func sourceInstructions(rt *Runtime) stageText {
	if rt.Prompts == nil {
		return nil
	}
	return rt.Prompts.Instructions
}

func sourceSpec(rt *Runtime) stageText {
	if rt.Prompts == nil {
		return nil
	}
	return rt.Prompts.Spec
}

func lookup(
	ctx context.Context,
	rt *Runtime,
	stage prompts.Stage,
	kind string,
	builtin func(prompts.Stage) (string, error),
	source stageText,
) string {
	if source != nil {
		text, err := source(ctx, stage)
		if err == nil {
			return text
		}
		rt.Logger.WarnContext(ctx, "prompt lookup failed, using default", "stage", stage, "kind", kind, "error", err)
	}

	text, _ := builtin(stage)
	return text
}
