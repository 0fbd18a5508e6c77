package gateway

import (
	"context"
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/openai"
)

// Client performs a single text completion against one provider.
type Client interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// NewClient builds the client for provider p from cfg.
func NewClient(p Provider, cfg *Config) (Client, error) {
	pc := cfg.Provider(p)
	if pc.APIKey == "" {
		return nil, fmt.Errorf("%w: %s has no API key", ErrProvider, p)
	}

	switch p {
	case OpenAI:
		opts := []openai.Option{
			openai.WithModel(pc.Model),
			openai.WithToken(pc.APIKey),
		}
		if pc.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(pc.BaseURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("create openai client: %w", err)
		}
		return &langchain{llm: llm}, nil

	case Anthropic:
		llm, err := anthropic.New(
			anthropic.WithModel(pc.Model),
			anthropic.WithToken(pc.APIKey),
		)
		if err != nil {
			return nil, fmt.Errorf("create anthropic client: %w", err)
		}
		return &langchain{llm: llm}, nil

	case OpenRouter:
		return newOpenRouter(pc, cfg.Referer, cfg.Title), nil
	}

	return nil, fmt.Errorf("%w: unknown provider %q", ErrProvider, p)
}

type langchain struct {
	llm llms.Model
}

func (c *langchain) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithTemperature(temperature))
}

// openRouter speaks the OpenAI chat completions protocol against the
// OpenRouter endpoint, which additionally wants attribution headers.
type openRouter struct {
	client *goopenai.Client
	model  string
}

func newOpenRouter(pc ProviderConfig, referer, title string) *openRouter {
	config := goopenai.DefaultConfig(pc.APIKey)
	config.BaseURL = pc.BaseURL
	config.HTTPClient = &http.Client{
		Transport: &attribution{
			base:    http.DefaultTransport,
			referer: referer,
			title:   title,
		},
	}

	return &openRouter{
		client: goopenai.NewClientWithConfig(config),
		model:  pc.Model,
	}
}

func (c *openRouter) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

type attribution struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *attribution) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	return t.base.RoundTrip(req)
}
