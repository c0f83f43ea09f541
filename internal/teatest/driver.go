// Package teatest runs a tea.Model without a tea.Program.
//
// Update is called on the test goroutine and returned Cmds are executed
// in place. A Cmd that has not produced a message within a few
// milliseconds is dropped, which covers spinner ticks and waits on
// background work. Tests deliver those messages themselves with SendWhen.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxSteps caps how many messages one Send may cascade into.
const maxSteps = 100

const cmdTimeout = 10 * time.Millisecond

type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting reports that some Cmd returned tea.Quit.
	Quitting bool
}

type Option func(*Driver)

func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg of w by h before Init.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init())
}

// Send updates the model with msg and runs whatever follows from it.
// Messages sent after a quit are ignored.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd)
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressSpace matches what a terminal reports for the space bar.
func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// SendWhen waits for cond, polling every millisecond, then sends msg.
// The test fails if cond does not hold within timeout.
func (d *Driver) SendWhen(cond func() bool, msg tea.Msg, timeout time.Duration) {
	d.T.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			d.T.Fatalf("teatest: condition still false after %s", timeout)
		}
		time.Sleep(time.Millisecond)
	}
	d.Send(msg)
}

func (d *Driver) View() string {
	return d.Model.View()
}

// run executes cmd and the Cmds its messages produce, breadth first.
func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps == maxSteps {
			d.T.Logf("teatest: stopped after %d steps with %d cmds pending", maxSteps, len(queue))
			return
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := await(next).(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			d.Quitting = true
			d.Model, _ = d.Model.Update(msg)
		default:
			var follow tea.Cmd
			d.Model, follow = d.Model.Update(msg)
			queue = append(queue, follow)
		}
	}
}

// await returns cmd's message, or nil if it takes longer than cmdTimeout.
func await(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
