package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/parley/internal/catalog"
	"github.com/alexanderramin/parley/internal/coach"
	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/lesson"
	"github.com/alexanderramin/parley/internal/testutil"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func quizRules() lesson.Rules {
	r := lesson.DefaultRules()
	r.ShadowingProbability = 0
	return r
}

func shadowRules() lesson.Rules {
	r := lesson.DefaultRules()
	r.ShadowingProbability = 1
	return r
}

// testApp wires an App over an in-memory deck seeded with the built-in words.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := catalog.NewStore(database, lesson.DefaultRules().MinCatalogSize())
	seeded, err := store.Seed(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)

	return &App{
		Store: store,
		Coach: coach.Offline(),
		Rules: quizRules(),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

type staticCoach struct {
	content domain.ShadowingContent
}

func (c staticCoach) PracticeContent(context.Context, string) domain.ShadowingContent {
	return c.content
}

// blockingCoach answers only once its context ends.
type blockingCoach struct{}

func (blockingCoach) PracticeContent(ctx context.Context, word string) domain.ShadowingContent {
	<-ctx.Done()
	return domain.FallbackContent(word)
}

func newTestSession(t *testing.T, rules lesson.Rules, content lesson.ContentSource) *lesson.Session {
	t.Helper()
	s := lesson.NewSession(testutil.NewTestCatalog(20), content,
		lesson.WithRules(rules),
		lesson.WithRand(lesson.NewRand(7)),
	)
	t.Cleanup(s.Close)
	return s
}

// optionKey returns the digit key that picks the correct (or a wrong) answer.
func optionKey(t *testing.T, snap lesson.Snapshot, correct bool) rune {
	t.Helper()
	for i, o := range snap.Options {
		if (o.ID == snap.Entry.ID) == correct {
			return rune('1' + i)
		}
	}
	t.Fatal("no matching option")
	return 0
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, time.Millisecond)
}

func lines(s string) []string {
	return strings.Split(stripANSI(s), "\n")
}
