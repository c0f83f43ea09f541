package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/llm"
)

// PracticeService produces shadowing content for a vocabulary word.
type PracticeService interface {
	// PracticeContent always returns usable content. Any failure to
	// generate yields the fallback pair for word.
	PracticeContent(ctx context.Context, word string) domain.ShadowingContent
}

type practiceService struct {
	client  llm.LLMClient
	limiter *rate.Limiter
}

// NewPracticeService creates a PracticeService backed by an LLM client.
// A nil limiter leaves calls unthrottled.
func NewPracticeService(client llm.LLMClient, limiter *rate.Limiter) PracticeService {
	return &practiceService{client: client, limiter: limiter}
}

// NewLimiter allows perMinute generation calls per minute with a small
// burst. Zero or less disables throttling.
func NewLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), min(perMinute, 3))
}

type practicePayload struct {
	Sentence string `json:"sentence"`
	Tip      string `json:"tip"`
}

func (s *practiceService) PracticeContent(ctx context.Context, word string) domain.ShadowingContent {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return domain.FallbackContent(word)
		}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskShadowing,
		SystemPrompt: shadowingSystemPrompt,
		UserPrompt:   shadowingUserPrompt(word),
		JSON:         true,
	})
	if err != nil {
		return domain.FallbackContent(word)
	}

	payload, err := llm.ExtractJSON[practicePayload](resp.Text, nil)
	if err != nil {
		return domain.FallbackContent(word)
	}
	return withDefaults(word, payload)
}

// withDefaults fills fields the model left empty.
func withDefaults(word string, p practicePayload) domain.ShadowingContent {
	c := domain.ShadowingContent{
		Sentence: strings.TrimSpace(p.Sentence),
		Tip:      strings.TrimSpace(p.Tip),
		Source:   domain.ContentFromLLM,
	}
	if c.Sentence == "" {
		c.Sentence = fmt.Sprintf("I use the word %s every day.", word)
	}
	if c.Tip == "" {
		c.Tip = "Speak clearly."
	}
	return c
}

type offlineService struct{}

// Offline returns a PracticeService that never calls a model.
func Offline() PracticeService { return offlineService{} }

func (offlineService) PracticeContent(_ context.Context, word string) domain.ShadowingContent {
	return domain.FallbackContent(word)
}
