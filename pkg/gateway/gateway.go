// Package gateway invokes a text-completion model through one of three
// providers, chosen once from configuration with a fixed fallback order.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/JaimeStill/freightdesk/pkg/metrics"
)

// System sends prompts to the selected provider.
type System interface {
	// Invoke sends prompt at the given temperature and returns the reply text.
	Invoke(ctx context.Context, prompt string, temperature float64) (string, error)
	// Provider reports the selected provider, or "" when disabled.
	Provider() Provider
}

type gateway struct {
	provider Provider
	client   Client
	breaker  *gobreaker.CircuitBreaker
	timeout  time.Duration
	logger   *slog.Logger
}

// New selects a provider from cfg and builds its client. It returns an
// ErrProvider-wrapped error when no provider has credentials.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	p, err := Select(cfg)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(p, cfg)
	if err != nil {
		return nil, err
	}

	if p != Provider(cfg.DefaultProvider) {
		logger.Warn("default provider unavailable, using fallback",
			"default", cfg.DefaultProvider, "provider", p)
	}

	return NewWithClient(p, client, cfg.TimeoutDuration(), logger), nil
}

// NewWithClient wraps an existing client with the gateway's timeout,
// circuit breaker, and metrics.
func NewWithClient(p Provider, client Client, timeout time.Duration, logger *slog.Logger) System {
	logger = logger.With("system", "gateway", "provider", string(p))

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        string(p),
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "from", from.String(), "to", to.String())
		},
	})

	return &gateway{
		provider: p,
		client:   client,
		breaker:  breaker,
		timeout:  timeout,
		logger:   logger,
	}
}

func (g *gateway) Provider() Provider {
	return g.provider
}

func (g *gateway) Invoke(ctx context.Context, prompt string, temperature float64) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.client.Complete(ctx, prompt, temperature)
	})
	metrics.RecordModelCall(string(g.provider), err == nil, time.Since(start))

	if err != nil {
		g.logger.WarnContext(ctx, "model call failed", "error", err, "duration", time.Since(start))
		return "", fmt.Errorf("%s completion: %w", g.provider, err)
	}

	return out.(string), nil
}

// Disabled returns a System whose Invoke always fails with cause. It lets
// the service start without provider credentials; classification then
// falls back to the default category.
func Disabled(cause error) System {
	return disabled{cause: cause}
}

type disabled struct {
	cause error
}

func (d disabled) Provider() Provider { return "" }

func (d disabled) Invoke(context.Context, string, float64) (string, error) {
	return "", d.cause
}
