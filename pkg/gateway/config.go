package gateway

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultAnthropicModel  = "claude-3-5-sonnet-20240620"
	defaultOpenRouterModel = "anthropic/claude-3.5-sonnet"
	defaultOpenRouterURL   = "https://openrouter.ai/api/v1"
	defaultReferer         = "https://github.com/JaimeStill/freightdesk"
	defaultTitle           = "Logistics AI Agents"
)

// ProviderConfig holds credentials and model selection for one provider.
type ProviderConfig struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
}

// Config selects and configures the model providers.
type Config struct {
	DefaultProvider string         `toml:"default_provider"`
	Timeout         string         `toml:"timeout"`
	Referer         string         `toml:"referer"`
	Title           string         `toml:"title"`
	OpenAI          ProviderConfig `toml:"openai"`
	Anthropic       ProviderConfig `toml:"anthropic"`
	OpenRouter      ProviderConfig `toml:"openrouter"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	DefaultProvider string
	Timeout         string
	Referer         string
	OpenAIKey       string
	OpenAIModel     string
	AnthropicKey    string
	AnthropicModel  string
	OpenRouterKey   string
	OpenRouterModel string
}

// Provider returns the settings for p.
func (c *Config) Provider(p Provider) ProviderConfig {
	switch p {
	case OpenAI:
		return c.OpenAI
	case Anthropic:
		return c.Anthropic
	case OpenRouter:
		return c.OpenRouter
	}
	return ProviderConfig{}
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultProvider != "" {
		c.DefaultProvider = overlay.DefaultProvider
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.Referer != "" {
		c.Referer = overlay.Referer
	}
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	c.OpenAI.merge(&overlay.OpenAI)
	c.Anthropic.merge(&overlay.Anthropic)
	c.OpenRouter.merge(&overlay.OpenRouter)
}

func (c *ProviderConfig) merge(overlay *ProviderConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
}

func (c *Config) loadDefaults() {
	if c.DefaultProvider == "" {
		c.DefaultProvider = string(OpenRouter)
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
	if c.Referer == "" {
		c.Referer = defaultReferer
	}
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = defaultOpenAIModel
	}
	if c.Anthropic.Model == "" {
		c.Anthropic.Model = defaultAnthropicModel
	}
	if c.OpenRouter.Model == "" {
		c.OpenRouter.Model = defaultOpenRouterModel
	}
	if c.OpenRouter.BaseURL == "" {
		c.OpenRouter.BaseURL = defaultOpenRouterURL
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, dst *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	set(env.DefaultProvider, &c.DefaultProvider)
	set(env.Timeout, &c.Timeout)
	set(env.Referer, &c.Referer)
	set(env.OpenAIKey, &c.OpenAI.APIKey)
	set(env.OpenAIModel, &c.OpenAI.Model)
	set(env.AnthropicKey, &c.Anthropic.APIKey)
	set(env.AnthropicModel, &c.Anthropic.Model)
	set(env.OpenRouterKey, &c.OpenRouter.APIKey)
	set(env.OpenRouterModel, &c.OpenRouter.Model)
}

func (c *Config) validate() error {
	if !Provider(c.DefaultProvider).Valid() {
		return fmt.Errorf("invalid default_provider: %s", c.DefaultProvider)
	}
	if d, err := time.ParseDuration(c.Timeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}
	return nil
}
