package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/onthisday/pkg/commands/options"
	"tableflip.dev/onthisday/pkg/logging"
	"tableflip.dev/onthisday/pkg/server"
)

func addServe(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	so := &options.SuggestionOptions{}
	ho := &options.HTTPOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the suggestion over a local JSON API",
		Example: `
onthisday serve
onthisday serve --http-port 9090
curl -X POST localhost:8080/api/advance
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := co.Validate(); err != nil {
				return err
			}
			return so.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(co, so, logging.Stderr())
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(s.widget, s.prefs, s.log).ListenAndServe(ctx, ho.Host, ho.Port)
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddSuggestionArgs(cmd, so)
	options.AddHTTPArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}
