package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/lesson"
)

// FormatStats renders the streak, XP and hearts line shown above a card.
func FormatStats(snap lesson.Snapshot) string {
	return fmt.Sprintf("%s  %s  %s",
		StyleTitle.Render(fmt.Sprintf("🔥 %d", snap.Streak)),
		StyleWarn.Render(fmt.Sprintf("%d XP", snap.XP)),
		Hearts(snap.Hearts, snap.MaxHearts),
	)
}

// FormatQuizCard renders the prompt word and the numbered answer choices.
// After a check the correct choice is green and a wrong pick red.
func FormatQuizCard(snap lesson.Snapshot) string {
	var b strings.Builder
	b.WriteString(Dim("Select the correct meaning"))
	b.WriteString("\n\n")
	b.WriteString(StyleBold.Render(snap.Entry.Target))
	b.WriteString("  ")
	b.WriteString(CategoryBadge(snap.Entry.Category))
	if snap.Entry.Image != "" {
		b.WriteString("\n")
		b.WriteString(Dim(snap.Entry.Image))
	}
	b.WriteString("\n\n")

	for i, opt := range snap.Options {
		selected := snap.Selected != nil && *snap.Selected == opt.ID
		marker := "  "
		if selected {
			marker = StyleTitle.Render("▸ ")
		}
		label := fmt.Sprintf("%d. %s", i+1, opt.Text)
		switch {
		case snap.Checked && opt.ID == snap.Entry.ID:
			label = StyleOK.Render(label)
		case snap.Checked && selected:
			label = StyleBad.Render(label)
		case selected:
			label = StyleBold.Render(label)
		default:
			label = StyleText.Render(label)
		}
		b.WriteString(marker + label + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatShadowingCard renders the practice sentence and tip. While content is
// pending, waiting is shown in its place.
func FormatShadowingCard(snap lesson.Snapshot, waiting string) string {
	var b strings.Builder
	b.WriteString(Dim("Listen and mimic the speaker exactly."))
	b.WriteString("\n\n")
	b.WriteString(StyleBold.Render(snap.Entry.Target))
	b.WriteString("  ")
	b.WriteString(CategoryBadge(snap.Entry.Category))
	b.WriteString("\n\n")

	if snap.Content == nil {
		b.WriteString(waiting)
		return b.String()
	}

	b.WriteString(StyleInfo.Render(fmt.Sprintf("%q", snap.Content.Sentence)))
	b.WriteString("\n")
	b.WriteString(StyleWarn.Render("Tip: ") + snap.Content.Tip)
	b.WriteString("  ")
	b.WriteString(SourcePill(snap.Content.Source))
	b.WriteString("\n\n")
	if snap.Spoken {
		b.WriteString(StyleOK.Render("✔ Great Job!"))
	} else {
		b.WriteString(Dim("○ I repeated it aloud"))
	}
	return b.String()
}

// FormatCue renders the short flash for a hit, a miss or a finished lesson.
func FormatCue(kind lesson.FeedbackKind) string {
	switch kind {
	case lesson.FeedbackHit:
		return StyleOK.Render("★")
	case lesson.FeedbackMiss:
		return StyleBad.Bold(true).Render("-1 ♥")
	case lesson.FeedbackComplete:
		return StyleWarn.Render("★★★")
	default:
		return ""
	}
}

// FormatFeedback renders the verdict for a checked item, or "" before a check.
func FormatFeedback(snap lesson.Snapshot) string {
	if !snap.Checked || snap.Correct == nil {
		return ""
	}
	if snap.Modality == domain.ModalityShadowing {
		return StyleOK.Render("✔ Excellent!") + " " + Dim("Keep practicing that intonation.")
	}
	if *snap.Correct {
		return StyleOK.Render("✔ Correct!")
	}
	return StyleBad.Render("✖ Correct answer: ") + StyleBold.Render(snap.Entry.Native)
}

// FormatEndScreen renders the summary shown once a lesson is over.
func FormatEndScreen(snap lesson.Snapshot) string {
	var title, message string
	if snap.Phase == domain.PhaseFailed {
		title = "Out of Hearts!"
		message = "Don't give up! Practice makes perfect."
	} else {
		title = "Lesson Complete!"
		message = fmt.Sprintf("You earned %d XP and kept your streak alive!", snap.XP)
	}

	stats := RenderTable(
		[]string{"STREAK", "TOTAL XP"},
		[][]string{{fmt.Sprintf("%d", snap.Streak), fmt.Sprintf("%d", snap.XP)}},
	)
	return RenderBox(title, message+"\n\n"+strings.TrimRight(stats, "\n"))
}

// EndAction names the key prompt on the end screen.
func EndAction(phase domain.Phase) string {
	if phase == domain.PhaseFailed {
		return "Try Again"
	}
	return "Continue"
}
