package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/parley/internal/cli/formatter"
	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/lesson"
)

const plainHelp = "commands: 1-4 choose, say, check, next, restart, quit"

// runPlain plays a lesson line by line, for pipes and dumb terminals.
// An empty line checks or continues, like enter in the full-screen UI.
func runPlain(ctx context.Context, in io.Reader, out io.Writer, s *lesson.Session) error {
	defer s.Close()

	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, renderPlain(settle(ctx, s)))

	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.ToLower(strings.TrimSpace(sc.Text()))

		snap := s.Snapshot()
		var o lesson.Outcome
		switch line {
		case "quit", "q", "exit":
			return nil
		case "help", "?":
			fmt.Fprintln(out, formatter.Dim(plainHelp))
			continue
		case "say", "s":
			o = s.MarkSpoken()
		case "check", "c":
			o = s.Check()
		case "next", "n":
			o = s.Advance()
		case "restart", "r":
			o = s.Reset()
		case "":
			switch {
			case snap.Phase.Terminal():
				o = s.Reset()
			case snap.Checked:
				o = s.Advance()
			default:
				o = s.Check()
			}
		default:
			n, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("unknown command %q; %s", line, plainHelp)))
				continue
			}
			if n < 1 || n > len(snap.Options) {
				fmt.Fprintln(out, formatter.Dim(string(lesson.RejectUnknownOption)))
				continue
			}
			o = s.SelectOption(snap.Options[n-1].ID)
		}

		if !o.Accepted() {
			fmt.Fprintln(out, formatter.Dim(string(o.Rejected)))
			continue
		}
		if o.Feedback == lesson.FeedbackMiss {
			ringBell(out)
		}
		if flash := formatter.FormatCue(o.Feedback); flash != "" {
			fmt.Fprintln(out, flash)
		}
		fmt.Fprintln(out, renderPlain(settle(ctx, s)))
	}
}

// settle waits for pending content or a pending failure to resolve so the
// printed state is the one the learner acts on next.
func settle(ctx context.Context, s *lesson.Session) lesson.Snapshot {
	for {
		snap := s.Snapshot()
		if !snap.ContentPending() && !snap.FailurePending {
			return snap
		}
		select {
		case <-ctx.Done():
			return snap
		case _, ok := <-s.Changes():
			if !ok {
				return s.Snapshot()
			}
		}
	}
}

func renderPlain(snap lesson.Snapshot) string {
	var b strings.Builder
	b.WriteString(formatter.FormatStats(snap))
	b.WriteString("\n")

	if snap.Phase.Terminal() {
		b.WriteString(formatter.FormatEndScreen(snap))
		b.WriteString("\n")
		b.WriteString(formatter.Dim(fmt.Sprintf("restart: %s  quit: exit", formatter.EndAction(snap.Phase))))
		return b.String()
	}

	done := snap.Position
	if snap.Checked {
		done++
	}
	b.WriteString(formatter.RenderProgress(done, snap.QueueLength, 20))
	b.WriteString("\n\n")
	if snap.Modality == domain.ModalityShadowing {
		b.WriteString(formatter.FormatShadowingCard(snap, formatter.Dim("Preparing your sentence...")))
	} else {
		b.WriteString(formatter.FormatQuizCard(snap))
	}
	if fb := formatter.FormatFeedback(snap); fb != "" {
		b.WriteString("\n\n")
		b.WriteString(fb)
	}
	return b.String()
}
