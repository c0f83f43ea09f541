package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/alexanderramin/parley/internal/domain"
)

// FormatDeckList renders deck entries in a table inside a titled box.
func FormatDeckList(name string, entries []domain.VocabularyEntry) string {
	if len(entries) == 0 {
		return RenderBox(name, Dim("The deck is empty."))
	}
	headers := []string{"ID", "TARGET", "NATIVE", "CATEGORY", "IMAGE"}
	rows := lo.Map(entries, func(e domain.VocabularyEntry, _ int) []string {
		img := Dim("--")
		if e.Image != "" {
			img = StyleInfo.Render("yes")
		}
		return []string{strconv.Itoa(e.ID), StyleBold.Render(e.Target), e.Native, CategoryBadge(e.Category), img}
	})
	table := strings.TrimRight(RenderTable(headers, rows), "\n")
	return RenderBox(name, table+"\n\n"+Dim(Plural(len(entries), "word")))
}

// FormatDeckInfo renders a one-line summary of the stored deck.
func FormatDeckInfo(name string, count int, updated, now time.Time) string {
	return fmt.Sprintf("%s %s %s",
		StyleBold.Render(name),
		Dim("·"),
		Dim(fmt.Sprintf("%s, updated %s", Plural(count, "word"), HumanDate(updated, now))),
	)
}

// FormatPractice renders shadowing content for a single word.
func FormatPractice(word string, c domain.ShadowingContent) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(word))
	b.WriteString("\n\n")
	b.WriteString(StyleInfo.Render(fmt.Sprintf("%q", c.Sentence)))
	b.WriteString("\n")
	b.WriteString(StyleWarn.Render("Tip: ") + c.Tip)
	b.WriteString("\n")
	b.WriteString(SourcePill(c.Source))
	return RenderBox("Shadowing", b.String())
}
