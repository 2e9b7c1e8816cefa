package options

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestSuggestionOptionsValidate(t *testing.T) {
	tests := map[string]struct {
		args     []string
		addCount bool
		wantErr  bool
	}{
		"no flags":           {},
		"count default":      {addCount: true},
		"count set":          {args: []string{"--count", "3"}, addCount: true},
		"count zero":         {args: []string{"--count", "0"}, addCount: true, wantErr: true},
		"count negative":     {args: []string{"--count=-1"}, addCount: true, wantErr: true},
		"unknown filter":     {args: []string{"--filter", "only_cats"}, wantErr: true},
		"unknown link":       {args: []string{"--link", "mubi"}, wantErr: true},
		"valid overrides":    {args: []string{"--filter", "only_tv", "--link", "tmdb"}},
		"without count flag": {args: []string{"--lang", "pt"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := &SuggestionOptions{}
			cmd := &cobra.Command{Use: "test"}
			AddSuggestionArgs(cmd, o)
			if tc.addCount {
				AddCountArg(cmd, o)
			}
			if err := cmd.ParseFlags(tc.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}
			err := o.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
