package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/onthisday/pkg/widget"
)

// PrettyPrint renders suggestions and settings for a terminal.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Width wraps reason text; zero disables wrapping.
	Width int
	// ShowKey prints the calendar key and cycle position under the title.
	ShowKey bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

// Tagline prints the heading shown above a suggestion.
func (pp *PrettyPrint) Tagline(text string) {
	t := color.New(color.Faint, color.Italic)
	_, _ = t.Fprintln(pp.out(), text)
}

// Suggestion prints one view: title, reason and link.
func (pp *PrettyPrint) Suggestion(v widget.View) {
	out := pp.out()
	title := color.New(color.Bold, color.Underline)
	if v.Empty {
		title = color.New(color.Bold, color.Faint)
	}
	_, _ = title.Fprintln(out, v.Title)

	if pp.ShowKey {
		c := color.New(color.Faint)
		_, _ = c.Fprintf(out, "%s #%d\n", v.Key, v.Position+1)
	}

	reason := v.Reason
	if pp.Width > 0 {
		reason = wordwrap.String(reason, pp.Width)
	}
	_, _ = fmt.Fprintln(out, reason)

	if v.LinkURL != "" {
		l := color.New(color.FgCyan, color.Underline)
		_, _ = l.Fprintln(out, v.LinkURL)
	}
	if v.BackgroundImageURL != "" {
		i := color.New(color.Faint)
		_, _ = i.Fprintln(out, v.BackgroundImageURL)
	}
}

// Settings prints key/value rows in the order of keys.
func (pp *PrettyPrint) Settings(keys []string, values map[string]string) {
	bold := color.New(color.Bold)
	none := color.New(color.Faint, color.Italic)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Preference"), bold.Sprint("Value"))
	for _, k := range keys {
		v := values[k]
		if v == "" {
			v = none.Sprint("(default)")
		}
		tbl.AddRow(k, v)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Zones prints timezone ids with their current offset label.
func (pp *PrettyPrint) Zones(zones []string, offset func(string) string) {
	if len(zones) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), " none")
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Zone"), bold.Sprint("Offset"))
	for _, z := range zones {
		tbl.AddRow(z, offset(z))
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// JSON prints v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(pp.out(), string(b))
	return nil
}
