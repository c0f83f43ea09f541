package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(string(c)), "should accept %q", c)
	}
	assert.False(t, IsValidCategory("basics"))
	assert.False(t, IsValidCategory("Sports"))
	assert.False(t, IsValidCategory(""))
}

func TestParseCategory_IgnoresCase(t *testing.T) {
	c, ok := ParseCategory("  travel ")
	require.True(t, ok)
	assert.Equal(t, CategoryTravel, c)

	_, ok = ParseCategory("weather")
	assert.False(t, ok)
}

func TestPhaseTerminal(t *testing.T) {
	assert.False(t, PhasePlaying.Terminal())
	assert.True(t, PhaseCompleted.Terminal())
	assert.True(t, PhaseFailed.Terminal())
}

func TestVocabularyEntryValidate_Valid(t *testing.T) {
	e := VocabularyEntry{ID: 1, Target: "Water", Native: "L'eau", Category: CategoryFood}
	assert.NoError(t, e.Validate())
}

func TestVocabularyEntryValidate_CollectsAllErrors(t *testing.T) {
	e := VocabularyEntry{ID: 0, Target: " ", Native: "", Category: "Sports"}
	err := e.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id must be positive")
	assert.Contains(t, err.Error(), "target is required")
	assert.Contains(t, err.Error(), "native is required")
	assert.Contains(t, err.Error(), "invalid category")
}

func TestFallbackContent_EmbedsWord(t *testing.T) {
	c := FallbackContent("Coffee")
	assert.Equal(t, "Can you say Coffee?", c.Sentence)
	assert.Equal(t, "Listen closely.", c.Tip)
	assert.Equal(t, ContentFromFallback, c.Source)
}
