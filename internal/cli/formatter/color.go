package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/parley/internal/domain"
)

// Palette, named by role rather than hue.
var (
	ColorOK     = lipgloss.Color("#8ec07c")
	ColorWarn   = lipgloss.Color("#fabd2f")
	ColorBad    = lipgloss.Color("#fb4934")
	ColorInfo   = lipgloss.Color("#83a598")
	ColorAccent = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorText   = lipgloss.Color("#ebdbb2")
	ColorTitle  = lipgloss.Color("#fe8019")
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

var (
	StyleOK     = fg(ColorOK)
	StyleWarn   = fg(ColorWarn)
	StyleBad    = fg(ColorBad)
	StyleInfo   = fg(ColorInfo)
	StyleAccent = fg(ColorAccent)
	StyleDim    = fg(ColorDim)
	StyleText   = fg(ColorText)
	StyleTitle  = fg(ColorTitle).Bold(true)
	StyleBold   = fg(ColorText).Bold(true)
)

var categoryStyles = map[domain.Category]lipgloss.Style{
	domain.CategoryBasics:   StyleInfo,
	domain.CategoryFood:     StyleWarn,
	domain.CategoryTravel:   StyleOK,
	domain.CategoryBusiness: StyleAccent,
	domain.CategorySocial:   StyleTitle,
}

// CategoryColor returns the style for c, dim for anything unknown.
func CategoryColor(c domain.Category) lipgloss.Style {
	if st, ok := categoryStyles[c]; ok {
		return st
	}
	return StyleDim
}

// Header renders text upper-cased over a rule of the same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	return StyleTitle.Render(title) + "\n" + StyleDim.Render(strings.Repeat("─", lipgloss.Width(title)))
}

func Dim(text string) string  { return StyleDim.Render(text) }
func Bold(text string) string { return StyleBold.Render(text) }
