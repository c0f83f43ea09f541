package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/parley/internal/cli/formatter"
	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/lesson"
)

// sessionChangedMsg is sent when content arrives or the failure timer fires.
type sessionChangedMsg struct{}

// sessionClosedMsg is sent once the session stops publishing changes.
type sessionClosedMsg struct{}

func waitForChange(s *lesson.Session) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-s.Changes(); !ok {
			return sessionClosedMsg{}
		}
		return sessionChangedMsg{}
	}
}

// lessonModel is the full-screen lesson. All state lives in the session;
// the model keeps the latest snapshot for rendering.
type lessonModel struct {
	session  *lesson.Session
	keys     lessonKeys
	spinner  spinner.Model
	progress progress.Model

	snap     lesson.Snapshot
	notice   string
	cue      lesson.FeedbackKind
	bell     io.Writer // receives \a on a miss
	width    int
	height   int
	quitting bool
}

func newLessonModel(s *lesson.Session) *lessonModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleAccent

	pb := progress.New(
		progress.WithSolidFill(string(formatter.ColorOK)),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)
	pb.EmptyColor = string(formatter.ColorDim)

	return &lessonModel{
		session:  s,
		keys:     defaultLessonKeys(),
		spinner:  sp,
		progress: pb,
		snap:     s.Snapshot(),
		bell:     os.Stderr,
	}
}

func (m *lessonModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForChange(m.session))
}

func (m *lessonModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progress.Width = min(max(msg.Width-12, 10), 60)
		return m, nil

	case sessionChangedMsg:
		m.snap = m.session.Snapshot()
		return m, waitForChange(m.session)

	case sessionClosedMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *lessonModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.session.Close()
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Restart) {
		m.apply(m.session.Reset())
		return m, nil
	}

	// Refresh before acting so an action never races a change we have not
	// drawn yet.
	m.snap = m.session.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Choose):
		idx, ok := choiceIndex(msg)
		if !ok || idx >= len(m.snap.Options) {
			m.notice = string(lesson.RejectUnknownOption)
			return m, nil
		}
		m.apply(m.session.SelectOption(m.snap.Options[idx].ID))

	case key.Matches(msg, m.keys.Speak):
		m.apply(m.session.MarkSpoken())

	case key.Matches(msg, m.keys.Confirm):
		switch {
		case m.snap.Phase.Terminal():
			m.apply(m.session.Reset())
		case m.snap.Checked:
			m.apply(m.session.Advance())
		default:
			m.apply(m.session.Check())
		}
	}
	return m, nil
}

func (m *lessonModel) apply(out lesson.Outcome) {
	m.snap = out.Snapshot
	m.notice = string(out.Rejected)
	if out.Accepted() {
		m.cue = out.Feedback
	}
	if out.Feedback == lesson.FeedbackMiss {
		ringBell(m.bell)
	}
}

func ringBell(w io.Writer) {
	if w != nil {
		_, _ = io.WriteString(w, "\a")
	}
}

func (m *lessonModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.snap.Phase.Terminal() {
		sections = append(sections, "", formatter.FormatEndScreen(m.snap))
	} else {
		sections = append(sections, m.renderProgress(), "", m.renderCard())
		if fb := formatter.FormatFeedback(m.snap); fb != "" {
			sections = append(sections, "", fb)
		}
	}

	if m.notice != "" {
		sections = append(sections, "", formatter.Dim(m.notice))
	}
	sections = append(sections, "", m.renderStatusBar())

	result := strings.Join(sections, "\n")
	if m.height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}
	return result
}

func (m *lessonModel) renderHeader() string {
	title := formatter.StyleAccent.Render("parley")
	header := title + "  " + formatter.FormatStats(m.snap)
	if flash := formatter.FormatCue(m.cue); flash != "" {
		header += "  " + flash
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return header + "\n" + sep
}

func (m *lessonModel) renderProgress() string {
	done := m.snap.Position
	if m.snap.Checked {
		done++
	}
	pct := 0.0
	if m.snap.QueueLength > 0 {
		pct = float64(done) / float64(m.snap.QueueLength)
	}
	return m.progress.ViewAs(pct) + " " + formatter.Dim(formatter.Plural(m.snap.QueueLength-done, "word")+" left")
}

func (m *lessonModel) renderCard() string {
	if m.snap.Modality == domain.ModalityShadowing {
		waiting := m.spinner.View() + " " + formatter.Dim("Preparing your sentence...")
		return formatter.FormatShadowingCard(m.snap, waiting)
	}
	return formatter.FormatQuizCard(m.snap)
}

func (m *lessonModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.keys.ShortHelp(m.snap) {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
