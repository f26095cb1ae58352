package inference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/learnio/learnio/internal/apperr"
)

// Target is one (provider, model) pair the gateway may call.
type Target struct {
	Provider string
	Model    string
}

func (t Target) String() string {
	return t.Provider + "/" + t.Model
}

// Attempt records why a target did not produce a usable result.
type Attempt struct {
	Target Target
	Err    error
}

// GenerationError is returned when every target failed.
type GenerationError struct {
	Operation string
	Attempts  []Attempt
}

func (e *GenerationError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Target, a.Err))
	}
	return fmt.Sprintf("%s failed on all %d targets [%s]", e.Operation, len(e.Attempts), strings.Join(parts, "; "))
}

func (e *GenerationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// Gateway implements Client by trying its targets in order until one
// returns output that survives sanitization.
type Gateway struct {
	providers map[string]Provider
	targets   []Target
	timeout   time.Duration
}

var _ Client = (*Gateway)(nil)

// NewGateway validates that every target names a registered provider.
// timeout bounds each attempt.
func NewGateway(targets []Target, timeout time.Duration, providers ...Provider) (*Gateway, error) {
	if len(targets) == 0 {
		return nil, errors.New("at least one inference target is required")
	}
	registry := make(map[string]Provider, len(providers))
	for _, p := range providers {
		registry[p.Name()] = p
	}
	for _, t := range targets {
		if _, ok := registry[t.Provider]; !ok {
			return nil, fmt.Errorf("no provider registered for target %s", t)
		}
	}
	return &Gateway{providers: registry, targets: targets, timeout: timeout}, nil
}

func (g *Gateway) Targets() []Target {
	return g.targets
}

func generate[T any](ctx context.Context, g *Gateway, operation string, request CompletionRequest, parse func(string) (T, error)) (T, error) {
	var zero T
	genErr := &GenerationError{Operation: operation}
	for _, target := range g.targets {
		result, err := attempt(ctx, g, target, request, parse)
		if err == nil {
			return result, nil
		}
		genErr.Attempts = append(genErr.Attempts, Attempt{Target: target, Err: err})
		slog.WarnContext(ctx, "generation attempt failed",
			"operation", operation,
			"target", target.String(),
			"error", err)
		if ctx.Err() != nil {
			break
		}
	}
	return zero, apperr.Upstream("failed to "+operation, genErr)
}

func attempt[T any](ctx context.Context, g *Gateway, target Target, request CompletionRequest, parse func(string) (T, error)) (T, error) {
	var zero T
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	request.Model = target.Model
	content, err := g.providers[target.Provider].Complete(ctx, request)
	if err != nil {
		return zero, err
	}
	result, err := parse(content)
	if err != nil {
		return zero, err
	}
	return result, nil
}

func (g *Gateway) GeneratePlan(ctx context.Context, params PlanRequest) (PlanResponse, error) {
	return generate(ctx, g, "generate plan", planPrompt(params), func(content string) (PlanResponse, error) {
		return ParsePlan(content, params.Date)
	})
}

func (g *Gateway) GenerateQuiz(ctx context.Context, params QuizRequest) (QuizResponse, error) {
	count := ClampQuestionCount(params.Count)
	return generate(ctx, g, "generate quiz", quizPrompt(params, count), func(content string) (QuizResponse, error) {
		return ParseQuiz(content, params.Topic, count)
	})
}

func (g *Gateway) GenerateRecommendations(ctx context.Context, params RecommendationRequest) (RecommendationResponse, error) {
	request, err := recommendationPrompt(params)
	if err != nil {
		return RecommendationResponse{}, apperr.Validation("invalid metrics: %v", err)
	}
	return generate(ctx, g, "generate recommendations", request, ParseRecommendations)
}

func (g *Gateway) Chat(ctx context.Context, params ChatRequest) (ChatResponse, error) {
	request, err := chatPrompt(params)
	if err != nil {
		return ChatResponse{}, apperr.Validation("invalid metrics: %v", err)
	}
	return generate(ctx, g, "generate chat answer", request, func(content string) (ChatResponse, error) {
		return ParseChat(content), nil
	})
}

func (g *Gateway) GenerateQuickPlans(ctx context.Context, params QuickPlanRequest) (QuickPlanResponse, error) {
	return generate(ctx, g, "generate quick plans", quickPlanPrompt(params), ParseQuickPlans)
}
