package config

import "github.com/JaimeStill/freightdesk/pkg/gateway"

// Provider credentials keep their conventional names so existing
// deployments need no renaming.
var gatewayEnv = &gateway.Env{
	DefaultProvider: "DEFAULT_PROVIDER",
	Timeout:         "FREIGHTDESK_GATEWAY_TIMEOUT",
	Referer:         "FREIGHTDESK_GATEWAY_REFERER",
	OpenAIKey:       "OPENAI_API_KEY",
	OpenAIModel:     "OPENAI_MODEL",
	AnthropicKey:    "ANTHROPIC_API_KEY",
	AnthropicModel:  "ANTHROPIC_MODEL",
	OpenRouterKey:   "OPENROUTER_API_KEY",
	OpenRouterModel: "OPENROUTER_MODEL",
}
