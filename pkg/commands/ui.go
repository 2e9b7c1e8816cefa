package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"tableflip.dev/onthisday/pkg/commands/options"
	"tableflip.dev/onthisday/pkg/logging"
	"tableflip.dev/onthisday/pkg/store"
	"tableflip.dev/onthisday/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	so := &options.SuggestionOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
onthisday ui
onthisday ui --tz America/New_York
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui needs an interactive terminal, try `onthisday today`")
			}
			if err := co.Validate(); err != nil {
				return err
			}
			return so.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the UI; logs only go to log_file.
			s, err := newSession(co, so, logging.Options{})
			if err != nil {
				return err
			}
			defer s.Close()

			return tui.Run(tui.Options{
				Context:    context.Background(),
				Widget:     s.widget,
				Translator: s.tr,
				Prefs:      s.prefs,
				Preset:     s.preset,
				Theme:      themeName(s.settings.Theme),
				Logger:     s.log,
			})
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddSuggestionArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

// themeName follows the terminal background until a theme is saved.
func themeName(saved string) string {
	if saved != "" {
		return saved
	}
	if termenv.HasDarkBackground() {
		return store.ThemeDark
	}
	return store.ThemeLight
}
