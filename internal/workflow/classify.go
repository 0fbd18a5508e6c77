package workflow

import (
	"context"

	"github.com/JaimeStill/freightdesk/internal/category"
	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/internal/prompts"
)

const classifyTemperature = 0.3

// Classify assigns email to a category. It never fails: a gateway error or
// an unrecognized label yields category.Default.
func Classify(ctx context.Context, rt *Runtime, email Email) category.Category {
	return ClassifyDetailed(ctx, rt, email).Category
}

// ClassifyDetailed is Classify that also reports why a fallback was taken.
func ClassifyDetailed(ctx context.Context, rt *Runtime, email Email) Classification {
	prompt := ComposePrompt(ctx, rt, prompts.StageClassify, email)

	reply, err := rt.Gateway.Invoke(ctx, prompt, classifyTemperature)
	if err != nil {
		rt.Logger.WarnContext(ctx, "classification failed, using default", "error", err)
		return Classification{Category: category.Default, Fallback: emails.FallbackModelError}
	}

	c, ok := category.Normalize(reply)
	if !ok {
		rt.Logger.WarnContext(ctx, "unrecognized classification label", "label", reply)
		return Classification{Category: c, Fallback: emails.FallbackInvalidLabel}
	}

	return Classification{Category: c}
}
