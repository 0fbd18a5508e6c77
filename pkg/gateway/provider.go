package gateway

import "fmt"

// Provider names a model vendor.
type Provider string

const (
	OpenAI     Provider = "openai"
	Anthropic  Provider = "anthropic"
	OpenRouter Provider = "openrouter"
)

var fallbacks = map[Provider][]Provider{
	OpenRouter: {Anthropic, OpenAI},
	Anthropic:  {OpenAI},
	OpenAI:     nil,
}

// Valid reports whether p is a known provider.
func (p Provider) Valid() bool {
	_, ok := fallbacks[p]
	return ok
}

// Candidates returns p followed by its fallback chain.
func (p Provider) Candidates() []Provider {
	return append([]Provider{p}, fallbacks[p]...)
}

// Select picks the first provider in the default provider's chain that has
// an API key. It performs no I/O.
func Select(cfg *Config) (Provider, error) {
	def := Provider(cfg.DefaultProvider)
	if !def.Valid() {
		return "", fmt.Errorf("%w: unknown provider %q", ErrProvider, cfg.DefaultProvider)
	}

	for _, p := range def.Candidates() {
		if cfg.Provider(p).APIKey != "" {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: no API key for %s or its fallbacks", ErrProvider, def)
}
