package domain

import "strings"

type Category string

const (
	CategoryBasics   Category = "Basics"
	CategoryFood     Category = "Food"
	CategoryTravel   Category = "Travel"
	CategoryBusiness Category = "Business"
	CategorySocial   Category = "Social"
)

// Categories is the closed set of deck categories in display order.
var Categories = []Category{
	CategoryBasics, CategoryFood, CategoryTravel, CategoryBusiness, CategorySocial,
}

// IsValidCategory reports whether s names a category exactly.
func IsValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ParseCategory matches s against the category set ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

type Phase string

const (
	PhasePlaying   Phase = "playing"
	PhaseCompleted Phase = "completed"
	PhaseFailed    Phase = "failed"
)

// Terminal reports whether no further play is possible without a reset.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

type Modality string

const (
	ModalityQuiz      Modality = "quiz"
	ModalityShadowing Modality = "shadowing"
)

type ContentSource string

const (
	ContentFromLLM      ContentSource = "llm"
	ContentFromFallback ContentSource = "fallback"
)
