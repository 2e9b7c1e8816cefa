package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/onthisday/pkg/commands/options"
	"tableflip.dev/onthisday/pkg/logging"
	"tableflip.dev/onthisday/pkg/printers"
	"tableflip.dev/onthisday/pkg/widget"
)

func addToday(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	so := &options.SuggestionOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "print today's suggestion",
		Example: `
onthisday today
onthisday today --date 2024-12-25 --filter only_movies
onthisday today --tz Asia/Tokyo --link letterboxd --count 3
onthisday today --json
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
				return oo.HandleError(err)
			}
			defer s.Close()

			views := []widget.View{s.widget.View()}
			for i := 1; i < so.Count; i++ {
				v, err := s.widget.Advance()
				if err != nil {
					return oo.HandleError(err)
				}
				views = append(views, v)
			}

			pp := &printers.PrettyPrint{Width: 72, ShowKey: so.Count > 1}
			if oo.JSON {
				if len(views) == 1 {
					return oo.HandleError(pp.JSON(views[0]))
				}
				return oo.HandleError(pp.JSON(views))
			}

			pp.Tagline(s.tr.String("tagline"))
			pp.NewLine()
			for i, v := range views {
				if i > 0 {
					pp.NewLine()
				}
				pp.Suggestion(v)
			}
			return nil
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddSuggestionArgs(cmd, so)
	options.AddCountArg(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
