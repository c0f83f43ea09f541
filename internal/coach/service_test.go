package coach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/llm"
)

type mockClient struct {
	text  string
	err   error
	calls int
	last  llm.GenerateRequest
}

func (m *mockClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.text, Model: "mock"}, nil
}

func (m *mockClient) Available(context.Context) bool { return m.err == nil }

func TestPracticeContent_ParsesModelOutput(t *testing.T) {
	client := &mockClient{text: "```json\n{\"sentence\": \"I drink water every morning.\", \"tip\": \"Soft 't' sound\"}\n```"}
	svc := NewPracticeService(client, nil)

	c := svc.PracticeContent(context.Background(), "Water")

	assert.Equal(t, domain.ShadowingContent{
		Sentence: "I drink water every morning.",
		Tip:      "Soft 't' sound",
		Source:   domain.ContentFromLLM,
	}, c)
	assert.Equal(t, llm.TaskShadowing, client.last.Task)
	assert.True(t, client.last.JSON)
	assert.Contains(t, client.last.UserPrompt, `"Water"`)
	assert.Contains(t, client.last.SystemPrompt, "A1/A2")
}

func TestPracticeContent_FieldDefaults(t *testing.T) {
	svc := NewPracticeService(&mockClient{text: `{"sentence": "  ", "tip": ""}`}, nil)
	c := svc.PracticeContent(context.Background(), "Train")
	assert.Equal(t, "I use the word Train every day.", c.Sentence)
	assert.Equal(t, "Speak clearly.", c.Tip)
	assert.Equal(t, domain.ContentFromLLM, c.Source)
}

func TestPracticeContent_FallbackOnError(t *testing.T) {
	cases := map[string]*mockClient{
		"transport": {err: llm.ErrUnavailable},
		"timeout":   {err: llm.ErrTimeout},
		"malformed": {text: "Sorry, I cannot do that."},
		"broken":    {text: `{"sentence": }`},
	}
	for name, client := range cases {
		t.Run(name, func(t *testing.T) {
			c := NewPracticeService(client, nil).PracticeContent(context.Background(), "Money")
			assert.Equal(t, domain.FallbackContent("Money"), c)
		})
	}
}

func TestPracticeContent_LimiterRespectsContext(t *testing.T) {
	client := &mockClient{text: `{"sentence":"ok","tip":"ok"}`}
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	svc := NewPracticeService(client, limiter)

	first := svc.PracticeContent(context.Background(), "Yes")
	assert.Equal(t, domain.ContentFromLLM, first.Source)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	second := svc.PracticeContent(ctx, "No")
	assert.Equal(t, domain.FallbackContent("No"), second)
	assert.Equal(t, 1, client.calls, "throttled call must not reach the model")
}

func TestNewLimiter(t *testing.T) {
	assert.Nil(t, NewLimiter(0))
	l := NewLimiter(30)
	require.NotNil(t, l)
	assert.Equal(t, 3, l.Burst())
	assert.Equal(t, 1, NewLimiter(1).Burst())
}

func TestOffline_AlwaysFallback(t *testing.T) {
	assert.Equal(t, domain.FallbackContent("Airport"), Offline().PracticeContent(context.Background(), "Airport"))
}

func TestPracticeContent_SlowServerFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(10 * time.Second):
		case <-r.Context().Done():
			return
		}
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	task := cfg.Tasks[llm.TaskShadowing]
	task.TimeoutMs = 100
	cfg.Tasks[llm.TaskShadowing] = task

	svc := NewPracticeService(llm.NewOllamaClient(cfg, nil), nil)

	start := time.Now()
	c := svc.PracticeContent(context.Background(), "Coffee")
	assert.Less(t, time.Since(start), 3*time.Second)
	assert.Equal(t, domain.FallbackContent("Coffee"), c)
}

func TestPracticeContent_OllamaRoundTrip(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, strings.Contains(body["prompt"].(string), "Friend"))
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "llama3.2",
			"response": `{"sentence":"My friend is kind.","tip":"Short i"}`,
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	svc := NewPracticeService(llm.NewOllamaClient(cfg, nil), NewLimiter(60))

	c := svc.PracticeContent(context.Background(), "Friend")
	assert.Equal(t, "My friend is kind.", c.Sentence)
	assert.Equal(t, "Short i", c.Tip)
	assert.Equal(t, int32(1), hits.Load())
}

func TestPracticeContent_NeverErrors(t *testing.T) {
	svc := NewPracticeService(&mockClient{err: errors.New("boom")}, nil)
	for _, w := range []string{"", "Why?", "S'il vous plaît"} {
		c := svc.PracticeContent(context.Background(), w)
		assert.NotEmpty(t, c.Sentence)
		assert.NotEmpty(t, c.Tip)
	}
}
