package llmrouter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"multi-llm-router/internal/agent"
	"multi-llm-router/internal/config"
	"multi-llm-router/internal/cost"
	"multi-llm-router/internal/provider"
	"multi-llm-router/internal/routing"
	"multi-llm-router/internal/tokens"
)

const tracerName = "multi-llm-router"

// Router ties the intent classifier, smart router, cost calculator,
// and provider clients together. Construct it once and share it; all
// operations are safe for concurrent use.
type Router struct {
	strategy         Strategy
	cfg              *config.Config
	logger           *slog.Logger
	pricingOverrides map[string]Pricing

	coordinator *agent.Coordinator
	smart       *routing.SmartRouter
	calculator  *cost.Calculator
	counter     *tokens.Registry
	tracer      trace.Tracer
	newProvider func(name, model string, cfg *config.Config) (provider.Provider, error)
}

// New creates a Router. Without WithConfig the configuration is read
// from the environment. Fails with ErrInvalidStrategy for an
// unrecognized strategy.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		newProvider: provider.New,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		r.cfg = cfg
	}
	if r.strategy == "" {
		r.strategy = strategyFromConfig(r.cfg)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	smart, err := routing.New(r.strategy)
	if err != nil {
		return nil, err
	}
	r.smart = smart

	r.coordinator = agent.NewCoordinator(nil)
	r.calculator = cost.NewCalculator(applyPricingFromConfig(r.cfg, r.pricingOverrides))
	r.counter = tokens.NewRegistry()
	r.tracer = otel.Tracer(tracerName)

	return r, nil
}

// Strategy returns the routing strategy in effect.
func (r *Router) Strategy() Strategy {
	return r.strategy
}

// ClassifyIntent returns the agent category for the context's last
// user message, optionally constrained by an allow-set.
func (r *Router) ClassifyIntent(ctx Context, allowed []string) Category {
	return r.coordinator.Classify(ctx, allowed)
}

// SelectModel picks the (provider, model) pair for a conversation.
func (r *Router) SelectModel(messages []Message, cfg Routing) Decision {
	return r.smart.SelectModel(messages, cfg)
}

// GetComplexity returns the complexity tier for a conversation.
func (r *Router) GetComplexity(messages []Message) Tier {
	return r.smart.Complexity(messages)
}

// EstimateCost estimates the USD cost for a model from a total token
// count.
func (r *Router) EstimateCost(model string, totalTokens int) float64 {
	return r.calculator.CostFromTotal(model, totalTokens)
}

// EstimateCostSplit computes the USD cost from separate input and
// output token counts.
func (r *Router) EstimateCostSplit(model string, inputTokens, outputTokens int) float64 {
	return r.calculator.Cost(model, inputTokens, outputTokens)
}

// CompareModels maps each model to its cost for the given workload.
func (r *Router) CompareModels(models []string, inputTokens, outputTokens int) map[string]float64 {
	return r.calculator.CompareModels(models, inputTokens, outputTokens)
}

// ChatOptions carries per-request options for Chat.
type ChatOptions struct {
	// Routing overrides model selection (force/preferred provider).
	Routing Routing

	// Temperature is the sampling temperature; 0 applies the 0.7
	// default.
	Temperature float64

	// MaxTokens caps the response length; 0 means provider default.
	MaxTokens int
}

// Result is the outcome of a routed chat completion.
type Result struct {
	RequestID  string
	Provider   string
	Model      string
	Complexity Tier
	Text       string
	TokensUsed int
	Cost       float64
}

// Chat routes the conversation to a backend, executes the completion,
// and prices the result.
func (r *Router) Chat(ctx context.Context, messages []Message, opts ChatOptions) (*Result, error) {
	requestID := uuid.NewString()
	complexity := r.smart.Complexity(messages)
	decision := r.smart.SelectModel(messages, opts.Routing)

	ctx, span := r.tracer.Start(ctx, "llmrouter.Chat", trace.WithAttributes(
		attribute.String("llm.request_id", requestID),
		attribute.String("llm.provider", decision.Provider),
		attribute.String("llm.model", decision.Model),
		attribute.String("llm.complexity", string(complexity)),
	))
	defer span.End()

	estimatedTokens := r.counter.CountMessages(decision.Model, messages)
	r.logger.Info("model selected",
		slog.String("request_id", requestID),
		slog.String("provider", decision.Provider),
		slog.String("model", decision.Model),
		slog.String("complexity", string(complexity)),
		slog.Int("estimated_prompt_tokens", estimatedTokens),
	)

	p, err := r.newProvider(decision.Provider, decision.Model, r.cfg)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	text, tokensUsed, err := p.ChatCompletion(ctx, messages, temperature, opts.MaxTokens)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("chat completion failed",
			slog.String("request_id", requestID),
			slog.String("provider", decision.Provider),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	requestCost := r.calculator.CostFromTotal(decision.Model, tokensUsed)
	span.SetAttributes(
		attribute.Int("llm.tokens_used", tokensUsed),
		attribute.Float64("llm.cost_usd", requestCost),
	)
	r.logger.Info("chat completion finished",
		slog.String("request_id", requestID),
		slog.String("provider", decision.Provider),
		slog.String("model", decision.Model),
		slog.Int("tokens_used", tokensUsed),
		slog.String("cost", cost.FormatCost(requestCost)),
	)

	return &Result{
		RequestID:  requestID,
		Provider:   decision.Provider,
		Model:      decision.Model,
		Complexity: complexity,
		Text:       text,
		TokensUsed: tokensUsed,
		Cost:       requestCost,
	}, nil
}
