package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/onthisday/pkg/clock"
	"tableflip.dev/onthisday/pkg/printers"
)

func addZones(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "zones [prefix]",
		Short: "list known timezones",
		Example: `
onthisday zones
onthisday zones america/
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			zones := clock.Zones(prefix)
			pp := &printers.PrettyPrint{}
			if oo.JSON {
				return oo.HandleError(pp.JSON(zones))
			}
			now := time.Now()
			pp.Zones(zones, func(id string) string {
				loc, err := time.LoadLocation(id)
				if err != nil {
					return ""
				}
				return now.In(loc).Format("-07:00")
			})
			return nil
		},
	}
	addOutputFlag(cmd)

	topLevel.AddCommand(cmd)
}
