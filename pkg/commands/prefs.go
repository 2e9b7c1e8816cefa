package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/onthisday/pkg/printers"
	"tableflip.dev/onthisday/pkg/store"
)

func loadPreferences() (store.Preferences, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return store.Load(cfg)
}

func addPrefs(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "show stored preferences",
		Example: `
onthisday prefs
onthisday prefs --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPreferences()
			if err != nil {
				return oo.HandleError(err)
			}
			values := store.SettingsMap(context.Background(), p)
			pp := &printers.PrettyPrint{}
			if oo.JSON {
				return oo.HandleError(pp.JSON(values))
			}
			pp.Settings(store.Keys(values), values)
			return nil
		},
	}
	addOutputFlag(cmd)

	addPrefsSet(cmd)
	addPrefsUnset(cmd)

	topLevel.AddCommand(cmd)
}

func addPrefsSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <preference> <value>",
		Short: "store a preference",
		Long: fmt.Sprintf("Store a preference. Known preferences: %s.\n\n"+
			"A running `onthisday ui` picks up the change immediately.", strings.Join(store.SettingKeys(), ", ")),
		Example: `
onthisday prefs set timezone Europe/Lisbon
onthisday prefs set filter only_movies
onthisday prefs set link letterboxd
onthisday prefs set theme light
`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: store.SettingKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPreferences()
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(store.WriteSetting(p, args[0], args[1]))
		},
	}
	addOutputFlag(cmd)

	topLevel.AddCommand(cmd)
}

func addPrefsUnset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "unset <preference>",
		Short:     "remove a stored preference",
		Example:   "\nonthisday prefs unset timezone\n",
		Args:      cobra.ExactArgs(1),
		ValidArgs: store.SettingKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPreferences()
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(store.WriteSetting(p, args[0], ""))
		},
	}
	addOutputFlag(cmd)

	topLevel.AddCommand(cmd)
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&oo.JSON, "json", false, "Output as JSON.")
}
