package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner draws a waiting line on out for commands that run outside the
// full-screen program. It reuses the bubbles frames so both look alike.
type Spinner struct {
	out   io.Writer
	label string
	kind  spinner.Spinner

	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewSpinner(out io.Writer, label string) *Spinner {
	return &Spinner{out: out, label: label, kind: spinner.MiniDot, quit: make(chan struct{})}
}

func (s *Spinner) Start() {
	s.wg.Add(1)
	go s.loop()
}

func (s *Spinner) loop() {
	defer s.wg.Done()
	tick := time.NewTicker(s.kind.FPS)
	defer tick.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.quit:
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-tick.C:
			glyph := s.kind.Frames[frame%len(s.kind.Frames)]
			fmt.Fprintf(s.out, "\r  %s %s", StyleAccent.Render(glyph), Dim(s.label))
		}
	}
}

// Stop clears the line once the loop has exited. Repeat calls are no-ops.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}

// StartSpinner starts a spinner and hands back its Stop.
func StartSpinner(out io.Writer, label string) func() {
	s := NewSpinner(out, label)
	s.Start()
	return s.Stop
}
