package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Sentence string `json:"sentence"`
	Tip      string `json:"tip"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"sentence":"I drink water.","tip":"Soft t"}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "I drink water.", result.Sentence)
	assert.Equal(t, "Soft t", result.Tip)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"sentence\":\"Good morning!\",\"tip\":\"Smile\"}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Good morning!", result.Sentence)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Sure! Here you go:\n{\"sentence\":\"Thank you.\",\"tip\":\"Th sound\"}\nGood luck!"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Thank you.", result.Sentence)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"sentence":"Say \"{hello}\" now.","tip":"} stays"}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `Say "{hello}" now.`, result.Sentence)
	assert.Equal(t, "} stays", result.Tip)
}

func TestExtractJSON_Comments(t *testing.T) {
	raw := "{\n  // the sentence\n  \"sentence\": \"Why? http://x.y\", /* tip next */\n  \"tip\": \"Rise\"\n}"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Why? http://x.y", result.Sentence)
	assert.Equal(t, "Rise", result.Tip)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload]("I can't help with that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"sentence": broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Unterminated(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"sentence":"open`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	validator := func(p testPayload) error {
		if p.Sentence == "" {
			return errors.New("sentence is empty")
		}
		return nil
	}
	_, err := ExtractJSON(`{"tip":"x"}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}
