package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DisabledOllama(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, 6000, cfg.TaskTimeout(TaskShadowing))
}

func TestLoadConfig_GeminiDefaults(t *testing.T) {
	t.Setenv("PARLEY_LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "k-123")

	cfg := LoadConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Endpoint)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "k-123", cfg.APIKey)
}

func TestLoadConfig_ExplicitValuesWin(t *testing.T) {
	t.Setenv("PARLEY_LLM_PROVIDER", "gemini")
	t.Setenv("PARLEY_LLM_ENDPOINT", "http://proxy.local/")
	t.Setenv("PARLEY_LLM_MODEL", "custom")
	t.Setenv("PARLEY_LLM_API_KEY", "primary")
	t.Setenv("GEMINI_API_KEY", "secondary")
	t.Setenv("PARLEY_LLM_RATE_PER_MIN", "5")

	cfg := LoadConfig()

	assert.Equal(t, "http://proxy.local", cfg.Endpoint)
	assert.Equal(t, "custom", cfg.Model)
	assert.Equal(t, "primary", cfg.APIKey)
	assert.Equal(t, 5, cfg.RatePerMinute)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("PARLEY_LLM_TIMEOUT_MS", "9000")
	t.Setenv("PARLEY_LLM_SHADOWING_TIMEOUT_MS", "15000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskShadowing))
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("PARLEY_LLM_SHADOWING_TIMEOUT_MS", "not-a-number")
	t.Setenv("PARLEY_LLM_MAX_RETRIES", "-2")

	cfg := LoadConfig()

	assert.Equal(t, 6000, cfg.TaskTimeout(TaskShadowing))
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks = nil
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskShadowing))
}
