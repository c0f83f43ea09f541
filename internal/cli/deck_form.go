package cli

import (
	"errors"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/parley/internal/cli/formatter"
	"github.com/alexanderramin/parley/internal/domain"
)

// parleyHuhTheme dresses huh forms in the formatter palette. Blurred
// fields fade to the dim color.
func parleyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := formatter.StyleTitle.UnsetBold()

	f := &t.Focused
	f.Title = formatter.StyleTitle
	f.Description = formatter.StyleDim
	f.SelectSelector = accent
	f.SelectedOption = formatter.StyleOK
	f.UnselectedOption = formatter.StyleText
	f.FocusedButton = formatter.StyleText.Background(formatter.ColorTitle).Padding(0, 1)
	f.BlurredButton = formatter.StyleDim.Padding(0, 1)
	f.TextInput.Cursor = accent
	f.TextInput.Prompt = accent
	f.TextInput.Text = formatter.StyleText
	f.TextInput.Placeholder = formatter.StyleDim

	bl := &t.Blurred
	for _, st := range []*lipgloss.Style{
		&bl.Title, &bl.SelectSelector, &bl.SelectedOption, &bl.UnselectedOption,
		&bl.TextInput.Prompt, &bl.TextInput.Text,
	} {
		*st = formatter.StyleDim
	}
	return t
}

// deckEntryForm collects the fields of a new deck entry. Values already set
// by flags are kept as the initial input.
func deckEntryForm(target, native, category, image *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		options = append(options, huh.NewOption(string(c), string(c)))
	}
	if c, ok := domain.ParseCategory(*category); ok {
		*category = string(c)
	} else {
		*category = string(domain.CategoryBasics)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Word").
				Description("The term being learned").
				Placeholder("Coffee").
				Value(target).
				Validate(requiredText("word")),
			huh.NewInput().
				Title("Translation").
				Description("Shown as the correct answer").
				Placeholder("Café").
				Value(native).
				Validate(requiredText("translation")),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(category),
			huh.NewInput().
				Title("Image URL (optional)").
				Value(image).
				Validate(validateOptionalURL),
		),
	).WithTheme(parleyHuhTheme()).WithShowHelp(false)
}

// confirmForm returns a themed yes/no prompt.
func confirmForm(title string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	).WithTheme(parleyHuhTheme()).WithShowHelp(false)
}

func requiredText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func validateOptionalURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an http(s) URL")
	}
	return nil
}
