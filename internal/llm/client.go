package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// GenerateRequest is one prompt for a model.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	JSON         bool     // ask the provider for a JSON document
	Temperature  *float64 // nil keeps the task default
	MaxTokens    *int     // nil keeps the task default
}

// GenerateResponse is the raw model reply.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient is a text generation backend.
type LLMClient interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the backend answers at all.
	Available(ctx context.Context) bool
}

// NewClient picks the backend named by cfg.Provider.
func NewClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case "", ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		return NewGeminiClient(cfg, observer), nil
	}
	return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
}

type callParams struct {
	temperature float64
	maxTokens   int
}

func resolveParams(cfg LLMConfig, req GenerateRequest) callParams {
	task := cfg.Tasks[req.Task]
	p := callParams{temperature: task.Temperature, maxTokens: task.MaxTokens}
	if req.Temperature != nil {
		p.temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		p.maxTokens = *req.MaxTokens
	}
	return p
}

// attemptFunc performs one provider round trip and returns the text and
// the model name the provider reported.
type attemptFunc func(ctx context.Context) (text, model string, err error)

// generateWithRetry gives attempt 1+cfg.MaxRetries tries under the task
// timeout. Exactly one CallEvent reaches observer per call.
func generateWithRetry(ctx context.Context, cfg LLMConfig, observer Observer, task TaskType, attempt attemptFunc) (*GenerateResponse, error) {
	start := time.Now()
	report := func(err error) int64 {
		elapsed := time.Since(start).Milliseconds()
		observer.OnCallComplete(CallEvent{
			Task:      task,
			Model:     cfg.Model,
			LatencyMs: elapsed,
			Success:   err == nil,
			ErrorCode: errorCode(err),
		})
		return elapsed
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.TaskTimeout(task))*time.Millisecond)
	defer cancel()

	var lastErr error
	for try := 0; try <= cfg.MaxRetries; try++ {
		text, model, err := attempt(ctx)
		if err == nil {
			if model == "" {
				model = cfg.Model
			}
			return &GenerateResponse{Text: text, Model: model, LatencyMs: report(nil)}, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	err := classify(ctx, lastErr)
	report(err)
	return nil, err
}

// classify maps the last attempt's failure onto the package sentinels.
// Exhausted retries keep the cause in the chain, so a reply that never
// parsed still matches ErrInvalidOutput.
func classify(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return ErrTimeout
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %w", ErrRetryExhausted, err)
	}
}

func errorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range []struct {
		target error
		code   string
	}{
		{ErrTimeout, "TIMEOUT"},
		{ErrUnavailable, "UNAVAILABLE"},
		{ErrInvalidOutput, "INVALID_OUTPUT"},
		{ErrRetryExhausted, "RETRY_EXHAUSTED"},
	} {
		if errors.Is(err, c.target) {
			return c.code
		}
	}
	return "UNKNOWN"
}
