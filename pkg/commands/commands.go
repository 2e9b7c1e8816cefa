package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/onthisday/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "onthisday",
		Short: base.Wrap80("What should I watch today? A daily movie, TV show or person tied to today's date."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addUI(topLevel)
	addServe(topLevel)
	addPrefs(topLevel)
	addZones(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
