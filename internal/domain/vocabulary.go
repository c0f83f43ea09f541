package domain

import (
	"errors"
	"fmt"
	"strings"
)

// VocabularyEntry is one flashcard of the deck. Target is the term being
// learned, Native its translation shown as the answer text.
type VocabularyEntry struct {
	ID       int
	Target   string
	Native   string
	Category Category
	Image    string
}

// Validate checks the fields the lesson relies on.
func (e VocabularyEntry) Validate() error {
	var errs []error
	if e.ID <= 0 {
		errs = append(errs, fmt.Errorf("id must be positive, got %d", e.ID))
	}
	if strings.TrimSpace(e.Target) == "" {
		errs = append(errs, errors.New("target is required"))
	}
	if strings.TrimSpace(e.Native) == "" {
		errs = append(errs, errors.New("native is required"))
	}
	if !IsValidCategory(string(e.Category)) {
		errs = append(errs, fmt.Errorf("invalid category %q", e.Category))
	}
	return errors.Join(errs...)
}

// Option is one multiple-choice answer. ID is the id of the entry whose
// native text is shown.
type Option struct {
	ID   int
	Text string
}

// ShadowingContent is the practice sentence and pronunciation tip shown for
// a speaking exercise.
type ShadowingContent struct {
	Sentence string
	Tip      string
	Source   ContentSource
}

// FallbackContent is the practice pair used whenever generated content is
// unavailable for word.
func FallbackContent(word string) ShadowingContent {
	return ShadowingContent{
		Sentence: fmt.Sprintf("Can you say %s?", word),
		Tip:      "Listen closely.",
		Source:   ContentFromFallback,
	}
}
