package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// geminiClient implements LLMClient using the Gemini generateContent API.
type geminiClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient for Google's hosted Gemini models.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{cfg: cfg, http: newHTTPClient(), observer: observer}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

// geminiRequest is the JSON body sent to POST .../models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	ModelVersion string `json:"modelVersion"`
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	p := resolveParams(c.cfg, req)
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     p.temperature,
			MaxOutputTokens: p.maxTokens,
		},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}
	if req.JSON {
		body.GenerationConfig.ResponseMimeType = "application/json"
	}

	endpoint := c.modelURL(":generateContent")
	return generateWithRetry(ctx, c.cfg, c.observer, req.Task, func(ctx context.Context) (string, string, error) {
		var resp geminiResponse
		if err := postJSON(ctx, c.http, endpoint, c.authHeader(), body, &resp); err != nil {
			return "", "", err
		}
		text, err := resp.text()
		if err != nil {
			return "", "", err
		}
		return text, resp.ModelVersion, nil
	})
}

func (r *geminiResponse) text() (string, error) {
	if len(r.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrInvalidOutput)
	}
	var b strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: empty candidate (finish reason %s)", ErrInvalidOutput, r.Candidates[0].FinishReason)
	}
	return b.String(), nil
}

func (c *geminiClient) modelURL(suffix string) string {
	return c.cfg.Endpoint + "/v1beta/models/" + url.PathEscape(c.cfg.Model) + suffix
}

func (c *geminiClient) authHeader() http.Header {
	h := http.Header{}
	h.Set("x-goog-api-key", c.cfg.APIKey)
	return h
}

func (c *geminiClient) Available(ctx context.Context) bool {
	return probe(ctx, c.http, c.modelURL(""), c.authHeader())
}
