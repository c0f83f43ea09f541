package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/parley/internal/catalog"
	"github.com/alexanderramin/parley/internal/coach"
	"github.com/alexanderramin/parley/internal/lesson"
)

// App holds the collaborators shared by CLI commands.
type App struct {
	Store *catalog.Store
	Coach coach.PracticeService

	Rules          lesson.Rules
	Observer       lesson.Observer
	ContentTimeout time.Duration

	// In feeds plain mode and interactive prompts. Nil means os.Stdin.
	In io.Reader

	// IsInteractive reports whether stdin is a terminal. Nil means it is not.
	IsInteractive func() bool
}

func (a *App) input() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "parley" command. Run without a
// subcommand it starts a lesson.
func NewRootCmd(app *App) *cobra.Command {
	play := newPlayCmd(app)

	root := &cobra.Command{
		Use:           "parley",
		Short:         "Vocabulary quiz and shadowing trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          play.RunE,
	}
	root.Flags().AddFlagSet(play.Flags())

	root.AddCommand(
		play,
		newPracticeCmd(app),
		newDeckCmd(app),
	)

	return root
}
