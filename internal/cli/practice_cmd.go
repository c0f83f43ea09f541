package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/parley/internal/cli/formatter"
	"github.com/alexanderramin/parley/internal/coach"
	"github.com/alexanderramin/parley/internal/lesson"
)

func newPracticeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "practice WORD",
		Short: "Generate a shadowing sentence for one word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.TrimSpace(strings.Join(args, " "))
			if word == "" {
				return fmt.Errorf("word is required")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			timeout := app.ContentTimeout
			if timeout <= 0 {
				timeout = lesson.DefaultContentTimeout
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			svc := app.Coach
			if svc == nil {
				svc = coach.Offline()
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Asking the coach...")
			}
			content := svc.PracticeContent(ctx, word)
			stop()

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPractice(word, content))
			return nil
		},
	}
}
