package cli

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/lesson"
)

type lessonKeys struct {
	Choose  key.Binding
	Speak   key.Binding
	Confirm key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultLessonKeys() lessonKeys {
	return lessonKeys{
		Choose:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "choose")),
		Speak:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "I said it")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// choiceIndex maps a digit key to a zero-based option index.
func choiceIndex(msg tea.KeyMsg) (int, bool) {
	n, err := strconv.Atoi(msg.String())
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

// ShortHelp lists the bindings that do something in the current state.
func (k lessonKeys) ShortHelp(snap lesson.Snapshot) []key.Binding {
	if snap.Phase.Terminal() {
		restart := k.Restart
		restart.SetHelp("r", "try again")
		if snap.Phase == domain.PhaseCompleted {
			restart.SetHelp("r", "continue")
		}
		return []key.Binding{restart, k.Quit}
	}

	var out []key.Binding
	if !snap.Checked {
		switch snap.Modality {
		case domain.ModalityQuiz:
			out = append(out, k.Choose)
		case domain.ModalityShadowing:
			if snap.Content != nil && !snap.Spoken {
				out = append(out, k.Speak)
			}
		}
	}

	confirm := k.Confirm
	switch {
	case snap.CanAdvance():
		confirm.SetHelp("enter", "continue")
		out = append(out, confirm)
	case snap.CanCheck():
		out = append(out, confirm)
	}
	return append(out, k.Restart, k.Quit)
}
