package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/onthisday/pkg/widget"
)

func init() {
	color.NoColor = true
}

func TestSuggestion(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Width: 20, ShowKey: true}
	pp.Suggestion(widget.View{
		Title:    "The Matrix (1999)",
		Reason:   "Why? It was released 25 years ago, on the 31 of March.",
		LinkURL:  "https://www.imdb.com/title/tt0133093",
		Key:      "03-31",
		Position: 0,
	})

	got := buf.String()
	for _, want := range []string{"The Matrix (1999)\n", "03-31 #1\n", "https://www.imdb.com/title/tt0133093\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "Why?") && len(line) > 20 {
			t.Errorf("reason not wrapped: %q", line)
		}
	}
}

func TestSuggestionEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Suggestion(widget.View{Title: "Nothing to watch", Reason: "Try more types.", Empty: true})
	if got := buf.String(); got != "Nothing to watch\nTry more types.\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSettings(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Settings([]string{"link", "timezone"}, map[string]string{"link": "tmdb"})
	got := buf.String()
	if !strings.Contains(got, "link") || !strings.Contains(got, "tmdb") || !strings.Contains(got, "(default)") {
		t.Fatalf("unexpected settings table:\n%s", got)
	}
}

func TestZones(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Zones([]string{"Asia/Tokyo"}, func(string) string { return "+09:00" })
	if got := buf.String(); !strings.Contains(got, "Asia/Tokyo") || !strings.Contains(got, "+09:00") {
		t.Fatalf("unexpected zones table:\n%s", got)
	}

	buf.Reset()
	pp.Zones(nil, nil)
	if got := buf.String(); got != " none\n" {
		t.Fatalf("empty zones = %q", got)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	if err := pp.JSON(widget.View{Title: "Firefly (2002-2002)", Key: "12-20"}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	got := buf.String()
	for _, want := range []string{`"title": "Firefly (2002-2002)"`, `"key": "12-20"`, `"empty": false`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON output missing %s:\n%s", want, got)
		}
	}
	if strings.Contains(got, "link_url") {
		t.Errorf("empty link should be omitted:\n%s", got)
	}
}
