package llm

import (
	"cmp"
	"os"
	"strconv"
	"strings"
)

// TaskType selects per-task sampling and timeout settings.
type TaskType string

const (
	TaskShadowing TaskType = "shadowing"
)

// Provider names the generation backend.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
)

// TaskConfig tunes one TaskType.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig configures sentence generation.
type LLMConfig struct {
	Enabled       bool
	LogCalls      bool
	Provider      Provider
	Endpoint      string
	Model         string
	APIKey        string
	TimeoutMs     int
	MaxRetries    int
	RatePerMinute int
	Tasks         map[TaskType]TaskConfig
}

const (
	defaultOllamaEndpoint = "http://localhost:11434"
	defaultOllamaModel    = "llama3.2"
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com"
	defaultGeminiModel    = "gemini-2.5-flash"
)

// DefaultConfig targets a local Ollama and leaves generation switched off.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:      ProviderOllama,
		Endpoint:      defaultOllamaEndpoint,
		Model:         defaultOllamaModel,
		TimeoutMs:     10000,
		MaxRetries:    1,
		RatePerMinute: 30,
		Tasks: map[TaskType]TaskConfig{
			TaskShadowing: {Temperature: 0.7, MaxTokens: 256, TimeoutMs: 6000},
		},
	}
}

// LoadConfig overlays PARLEY_LLM_* environment variables on DefaultConfig.
// Selecting the gemini provider also moves the endpoint and model defaults
// to Gemini's. Malformed numbers are ignored.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	envBool("PARLEY_LLM_ENABLED", &cfg.Enabled)
	envBool("PARLEY_LLM_LOG_CALLS", &cfg.LogCalls)
	if strings.EqualFold(os.Getenv("PARLEY_LLM_PROVIDER"), string(ProviderGemini)) {
		cfg.Provider = ProviderGemini
		cfg.Endpoint = defaultGeminiEndpoint
		cfg.Model = defaultGeminiModel
	}
	if v := os.Getenv("PARLEY_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("PARLEY_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.APIKey = cmp.Or(os.Getenv("PARLEY_LLM_API_KEY"), os.Getenv("GEMINI_API_KEY"))

	envInt("PARLEY_LLM_TIMEOUT_MS", 1, &cfg.TimeoutMs)
	envInt("PARLEY_LLM_MAX_RETRIES", 0, &cfg.MaxRetries)
	envInt("PARLEY_LLM_RATE_PER_MIN", 0, &cfg.RatePerMinute)

	shadowing := cfg.Tasks[TaskShadowing]
	envInt("PARLEY_LLM_SHADOWING_TIMEOUT_MS", 1, &shadowing.TimeoutMs)
	cfg.Tasks[TaskShadowing] = shadowing

	return cfg
}

// TaskTimeout is the task's own timeout when set, else the global one.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func envBool(name string, dst *bool) {
	if v, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		*dst = v
	}
}

// envInt stores the named variable in dst when it parses and is >= floor.
func envInt(name string, floor int, dst *int) {
	if n, err := strconv.Atoi(os.Getenv(name)); err == nil && n >= floor {
		*dst = n
	}
}
