package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/onthisday/pkg/choice"
	"tableflip.dev/onthisday/pkg/link"
)

// SuggestionOptions override stored preferences for one run.
type SuggestionOptions struct {
	Filter   string
	LinkSite string
	Language string
	Count    int

	hasCount bool
}

func AddSuggestionArgs(cmd *cobra.Command, o *SuggestionOptions) {
	cmd.Flags().StringVar(&o.Filter, "filter", "",
		fmt.Sprintf("Content to include, one of %v. Defaults to the stored preference.", choice.Presets()))
	cmd.Flags().StringVar(&o.LinkSite, "link", "",
		fmt.Sprintf("Site links point to, one of %v. Defaults to the stored preference.", link.Sites()))
	cmd.Flags().StringVar(&o.Language, "lang", "",
		"Language of the copy, example: --lang=pt. Defaults to the configured language.")

	_ = cmd.RegisterFlagCompletionFunc("filter", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, len(choice.Presets()))
		for _, p := range choice.Presets() {
			out = append(out, string(p))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("link", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, len(link.Sites()))
		for _, s := range link.Sites() {
			out = append(out, string(s))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

func AddCountArg(cmd *cobra.Command, o *SuggestionOptions) {
	o.hasCount = true
	cmd.Flags().IntVarP(&o.Count, "count", "n", 1,
		"Number of suggestions to walk through, in cycle order.")
}

// Validate parses the overrides that were set.
func (o *SuggestionOptions) Validate() error {
	if o.Filter != "" {
		if _, err := choice.ParsePreset(o.Filter); err != nil {
			return err
		}
	}
	if o.LinkSite != "" {
		if _, err := link.ParseSite(o.LinkSite); err != nil {
			return err
		}
	}
	if o.hasCount && o.Count < 1 {
		return fmt.Errorf("--count must be positive, got %d", o.Count)
	}
	return nil
}
