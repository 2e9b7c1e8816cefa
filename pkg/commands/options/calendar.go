package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/onthisday/pkg/clock"
)

// CalendarOptions pick the timezone and date a suggestion is drawn for.
type CalendarOptions struct {
	Timezone string
	Date     string
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.Timezone, "tz", "",
		`IANA timezone to evaluate the calendar in, example: --tz="Europe/Lisbon". Defaults to the stored preference, then the local zone.`)
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Pretend today is this date, example: --date="2024-12-25".`)

	_ = cmd.RegisterFlagCompletionFunc("tz", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return clock.Zones(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// Validate rejects a malformed --date. Unknown timezones are not an error;
// they fall back to the local zone.
func (o *CalendarOptions) Validate() error {
	_, err := clock.ParseOverride(o.Date)
	return err
}
