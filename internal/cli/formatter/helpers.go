package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/parley/internal/domain"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames content, with title upper-cased above it when given.
func RenderBox(title, content string) string {
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleTitle.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// CategoryBadge returns a colored category label.
func CategoryBadge(c domain.Category) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	return CategoryColor(c).Render(string(c))
}

// SourcePill shows where a practice sentence came from.
func SourcePill(source domain.ContentSource) string {
	switch source {
	case domain.ContentFromLLM:
		return StyleOK.Render("● generated")
	case domain.ContentFromFallback:
		return StyleWarn.Render("○ offline")
	default:
		return StyleDim.Render("○ unknown")
	}
}

// Hearts renders remaining and lost hearts, e.g. ♥♥♥♡♡.
func Hearts(remaining, total int) string {
	total = max(total, 0)
	remaining = min(max(remaining, 0), total)
	lost := total - remaining
	return StyleBad.Render(strings.Repeat("♥", remaining)) + StyleDim.Render(strings.Repeat("♡", lost))
}

// HumanDate says Today or Yesterday relative to now and falls back to a
// calendar date. The zero time renders as "--".
func HumanDate(t, now time.Time) string {
	if t.IsZero() {
		return "--"
	}
	day := func(x time.Time) time.Time {
		y, m, d := x.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	switch day(now).Sub(day(t)) {
	case 0:
		return "Today"
	case 24 * time.Hour:
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// Plural formats n with a noun, adding an s when n is not one.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
