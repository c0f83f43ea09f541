package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/parley/internal/lesson"
)

type playOptions struct {
	seed  uint64
	plain bool
}

// flags binds the play options. The root command shares the same set so
// "parley --seed 3" behaves like "parley play --seed 3".
func (o *playOptions) flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("play", pflag.ContinueOnError)
	fs.Uint64Var(&o.seed, "seed", 0, "Seed the lesson order (0 for random)")
	fs.BoolVar(&o.plain, "plain", false, "Line mode instead of the full-screen UI")
	return fs
}

func newPlayCmd(app *App) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a lesson",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var rng lesson.Rand
			if opts.seed != 0 {
				rng = lesson.NewRand(opts.seed)
			}
			session, err := app.newSession(ctx, rng)
			if err != nil {
				return err
			}

			if opts.plain || !app.interactive() {
				return runPlain(ctx, app.input(), cmd.OutOrStdout(), session)
			}

			p := tea.NewProgram(newLessonModel(session), tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = p.Run()
			session.Close()
			return err
		},
	}

	cmd.Flags().AddFlagSet(opts.flags())

	return cmd
}

// newSession loads the deck and starts a lesson over it. A nil rng draws
// from a randomly seeded source.
func (a *App) newSession(ctx context.Context, rng lesson.Rand) (*lesson.Session, error) {
	entries, err := a.Store.Load(ctx)
	if err != nil {
		return nil, err
	}

	rules := a.Rules
	if rules == (lesson.Rules{}) {
		rules = lesson.DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("lesson rules: %w", err)
	}

	opts := []lesson.SessionOption{lesson.WithRules(rules)}
	if rng != nil {
		opts = append(opts, lesson.WithRand(rng))
	}
	if a.Observer != nil {
		opts = append(opts, lesson.WithObserver(a.Observer))
	}
	if a.ContentTimeout > 0 {
		opts = append(opts, lesson.WithContentTimeout(a.ContentTimeout))
	}

	var content lesson.ContentSource
	if a.Coach != nil {
		content = a.Coach
	}
	return lesson.NewSession(entries, content, opts...), nil
}
