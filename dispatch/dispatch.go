// Package dispatch routes envelopes to the correct provider gateway and
// uniforms their failures.
package dispatch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/model"
	"github.com/spetersoncode/relay/prompt"
)

// GatewayError is the single error kind the dispatch service raises: any
// provider failure, unknown model, or unconfigured provider is wrapped
// here so that no provider-specific detail leaks to callers.
type GatewayError struct {
	Model string
	Cause error
}

// Error returns a formatted message naming the model.
func (e *GatewayError) Error() string {
	return fmt.Sprintf("dispatch: gateway error for model %s: %v", e.Model, e.Cause)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// Service resolves a model to its provider and forwards the envelope to
// that provider's gateway. It is stateless aside from the read-only
// registry and the gateway instances held from construction.
type Service struct {
	registry *model.Registry
	gateways map[ai.Provider]ai.Gateway
	log      zerolog.Logger
}

// Option configures a Service at construction time.
type Option func(*Service)

// WithGateway registers the gateway for a provider.
func WithGateway(provider ai.Provider, gw ai.Gateway) Option {
	return func(s *Service) {
		s.gateways[provider] = gw
	}
}

// WithLogger sets the service's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// New creates a dispatch service over the given registry. Gateways are
// injected with WithGateway; the service is immutable afterwards.
func New(registry *model.Registry, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		gateways: make(map[ai.Provider]ai.Gateway),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask resolves the envelope's model, selects the matching gateway, and
// forwards the call. Every failure is re-raised as a *GatewayError.
func (s *Service) Ask(ctx context.Context, env *ai.Envelope) (*ai.RawCompletion, error) {
	desc, err := s.registry.Resolve(env.Model)
	if err != nil {
		return nil, &GatewayError{Model: env.Model, Cause: err}
	}

	gw, ok := s.gateways[desc.Provider]
	if !ok {
		return nil, &GatewayError{
			Model: env.Model,
			Cause: fmt.Errorf("no gateway configured for provider %s", desc.Provider),
		}
	}

	s.log.Debug().
		Str("model", env.Model).
		Str("provider", desc.Provider.String()).
		Int("turns", len(env.Turns)).
		Int("estimated_input_tokens", prompt.EstimateTokens(env)).
		Msg("dispatching envelope")

	resp, err := gw.Send(ctx, env)
	if err != nil {
		s.log.Warn().
			Str("model", env.Model).
			Str("provider", desc.Provider.String()).
			Err(err).
			Msg("gateway failure")
		return nil, &GatewayError{Model: env.Model, Cause: err}
	}

	s.log.Debug().
		Str("model", env.Model).
		Str("finish_reason", string(resp.FinishReason)).
		Int("input_tokens", resp.Usage.InputTokens).
		Int("output_tokens", resp.Usage.OutputTokens).
		Msg("completion received")

	return resp, nil
}

// Providers returns the providers with a configured gateway.
func (s *Service) Providers() []ai.Provider {
	providers := make([]ai.Provider, 0, len(s.gateways))
	for p := range s.gateways {
		providers = append(providers, p)
	}
	return providers
}
