package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/lesson"
)

func playPlain(t *testing.T, s *lesson.Session, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, runPlain(context.Background(), strings.NewReader(input), &out, s))
	return stripANSI(out.String())
}

func TestRunPlain_QuizRound(t *testing.T) {
	s := newTestSession(t, quizRules(), nil)

	out := playPlain(t, s, "check\n1\ncheck\nnext\nquit\n")

	assert.Contains(t, out, "Select the correct meaning")
	assert.Contains(t, out, "0/10")
	assert.Contains(t, out, string(lesson.RejectNoSelection))
	assert.True(t,
		strings.Contains(out, "Correct!") || strings.Contains(out, "Correct answer:"),
		"a verdict is printed after check")
	assert.Contains(t, out, "1/10")
	assert.Equal(t, 1, s.Snapshot().Position)
}

func TestRunPlain_EnterChecksThenContinues(t *testing.T) {
	s := newTestSession(t, quizRules(), nil)
	key := optionKey(t, s.Snapshot(), true)

	out := playPlain(t, s, string(key)+"\n\n\nquit\n")

	assert.Contains(t, out, "Correct!")
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Position)
	assert.Equal(t, 10, snap.XP)
}

func TestRunPlain_MissRingsBell(t *testing.T) {
	s := newTestSession(t, quizRules(), nil)
	key := optionKey(t, s.Snapshot(), false)

	out := playPlain(t, s, string(key)+"\ncheck\nquit\n")

	assert.Equal(t, 1, strings.Count(out, "\a"))
	assert.Contains(t, out, "-1 ♥")
	assert.Contains(t, out, "Correct answer:")
}

func TestRunPlain_HitDoesNotRingBell(t *testing.T) {
	s := newTestSession(t, quizRules(), nil)
	key := optionKey(t, s.Snapshot(), true)

	out := playPlain(t, s, string(key)+"\ncheck\nquit\n")

	assert.NotContains(t, out, "\a")
	assert.Contains(t, out, "★")
}

func TestRunPlain_ShadowingWaitsForContent(t *testing.T) {
	content := domain.ShadowingContent{Sentence: "Say it twice.", Tip: "Breathe.", Source: domain.ContentFromLLM}
	s := newTestSession(t, shadowRules(), staticCoach{content: content})

	out := playPlain(t, s, "say\ncheck\nquit\n")

	assert.Contains(t, out, `"Say it twice."`)
	assert.Contains(t, out, "Tip: Breathe.")
	assert.Contains(t, out, "Great Job!")
	assert.Contains(t, out, "Excellent!")
	assert.NotContains(t, out, "Preparing your sentence...")
}

func TestRunPlain_OutOfRangeChoice(t *testing.T) {
	s := newTestSession(t, quizRules(), nil)

	out := playPlain(t, s, "9\nquit\n")

	assert.Contains(t, out, string(lesson.RejectUnknownOption))
	assert.Nil(t, s.Snapshot().Selected)
}

func TestRunPlain_UnknownCommand(t *testing.T) {
	s := newTestSession(t, quizRules(), nil)

	out := playPlain(t, s, "dance\n")

	assert.Contains(t, out, `unknown command "dance"`)
}

func TestRunPlain_EOFEndsQuietly(t *testing.T) {
	s := newTestSession(t, quizRules(), nil)

	playPlain(t, s, "")

	assert.Equal(t, lesson.RejectNotPlaying, s.Check().Rejected, "session is closed on exit")
}

func TestRunPlain_EmptyDeckCompletesImmediately(t *testing.T) {
	s := lesson.NewSession(nil, nil, lesson.WithRules(quizRules()))
	t.Cleanup(s.Close)

	out := playPlain(t, s, "quit\n")

	assert.Contains(t, out, "LESSON COMPLETE!")
	assert.Contains(t, out, "You earned 0 XP")
}
