package llm

import (
	"context"
	"net/http"
)

type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewOllamaClient returns a client for an Ollama server at cfg.Endpoint.
// A nil observer discards call events.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{cfg: cfg, http: newHTTPClient(), observer: observer}
}

// ollamaGenerate is the non-streaming body of POST /api/generate.
type ollamaGenerate struct {
	Model   string         `json:"model"`
	System  string         `json:"system,omitempty"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Format  string         `json:"format,omitempty"`
	Options ollamaSampling `json:"options,omitempty"`
}

type ollamaSampling struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaReply struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	p := resolveParams(c.cfg, req)
	body := ollamaGenerate{
		Model:   c.cfg.Model,
		System:  req.SystemPrompt,
		Prompt:  req.UserPrompt,
		Options: ollamaSampling{Temperature: p.temperature, NumPredict: p.maxTokens},
	}
	if req.JSON {
		body.Format = "json"
	}

	url := c.cfg.Endpoint + "/api/generate"
	return generateWithRetry(ctx, c.cfg, c.observer, req.Task, func(ctx context.Context) (string, string, error) {
		var reply ollamaReply
		if err := postJSON(ctx, c.http, url, nil, body, &reply); err != nil {
			return "", "", err
		}
		return reply.Response, reply.Model, nil
	})
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	return probe(ctx, c.http, c.cfg.Endpoint+"/api/tags", nil)
}
