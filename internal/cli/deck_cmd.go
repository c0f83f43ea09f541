package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/parley/internal/catalog"
	"github.com/alexanderramin/parley/internal/cli/formatter"
	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/importer"
	"github.com/alexanderramin/parley/internal/repository"
)

func newDeckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage the vocabulary deck",
	}

	cmd.AddCommand(
		newDeckListCmd(app),
		newDeckImportCmd(app),
		newDeckAddCmd(app),
		newDeckRemoveCmd(app),
		newDeckResetCmd(app),
	)

	return cmd
}

func newDeckListCmd(app *App) *cobra.Command {
	var categoryStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deck entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var category *domain.Category
			if categoryStr != "" {
				c, ok := domain.ParseCategory(categoryStr)
				if !ok {
					return fmt.Errorf("unknown category %q", categoryStr)
				}
				category = &c
			}

			entries, err := app.Store.List(ctx, category)
			if err != nil {
				return err
			}
			info, n, err := app.Store.Info(ctx)
			if err != nil {
				return err
			}

			name := info.Name
			if name == "" {
				name = "Deck"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatDeckList(name, entries))
			fmt.Fprintln(out, formatter.FormatDeckInfo(name, n, info.UpdatedAt, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryStr, "category", "", "Only show one category")

	return cmd
}

func newDeckImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the deck with a JSON deck file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadDeckSchema(args[0])
			if err != nil {
				return err
			}
			if err := app.Store.Replace(cmd.Context(), schema); err != nil {
				return describeDeckError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s)\n",
				schema.Name, formatter.Plural(len(schema.Entries), "word"))
			return nil
		},
	}
}

func newDeckAddCmd(app *App) *cobra.Command {
	var target, native, categoryStr, image string
	var id int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a word to the deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (target == "" || native == "" || categoryStr == "") && app.interactive() {
				if err := deckEntryForm(&target, &native, &categoryStr, &image).Run(); err != nil {
					return err
				}
			}
			if target == "" || native == "" || categoryStr == "" {
				return fmt.Errorf("--target, --native and --category are required")
			}

			category, ok := domain.ParseCategory(categoryStr)
			if !ok {
				return fmt.Errorf("unknown category %q (one of %s)", categoryStr, categoryNames())
			}

			e, err := app.Store.Add(cmd.Context(), domain.VocabularyEntry{
				ID:       id,
				Target:   strings.TrimSpace(target),
				Native:   strings.TrimSpace(native),
				Category: category,
				Image:    strings.TrimSpace(image),
			})
			if err != nil {
				return describeDeckError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d %s → %s\n", e.ID, e.Target, e.Native)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Entry id (next free id when omitted)")
	cmd.Flags().StringVar(&target, "target", "", "Word being learned")
	cmd.Flags().StringVar(&native, "native", "", "Translation shown as the answer")
	cmd.Flags().StringVar(&categoryStr, "category", "", "Category: "+categoryNames())
	cmd.Flags().StringVar(&image, "image", "", "Optional image URL")

	return cmd
}

func newDeckRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a word from the deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if err := app.Store.Remove(cmd.Context(), id); err != nil {
				return describeDeckError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed #%d\n", id)
			return nil
		},
	}
}

func newDeckResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.interactive() {
				confirmed := false
				if err := confirmForm("Replace the current deck with the built-in one?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := app.Store.ResetToDefault(cmd.Context()); err != nil {
				return describeDeckError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deck restored.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

// describeDeckError lists every validation problem on its own line.
func describeDeckError(err error) error {
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		lines := make([]string, 0, len(verr.Errs))
		for _, e := range verr.Errs {
			lines = append(lines, "  - "+e.Error())
		}
		return fmt.Errorf("deck rejected:\n%s", strings.Join(lines, "\n"))
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%w; pick another id or word", err)
	}
	return err
}

func categoryNames() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
