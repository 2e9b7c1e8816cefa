package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/onthisday/pkg/store"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Name       string
	Suggestion SuggestionTheme
	Footer     FooterTheme
}

// SuggestionTheme styles the centered suggestion card.
type SuggestionTheme struct {
	Frame   lipgloss.Style
	Tagline lipgloss.Style
	Title   lipgloss.Style
	Empty   lipgloss.Style
	Reason  lipgloss.Style
	Link    lipgloss.Style
	Hint    lipgloss.Style
	HintKey lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Label  lipgloss.Style
	Value  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Dark()
}

// ByName returns the light or dark theme. Unknown names get the default.
func ByName(name string) Theme {
	if name == store.ThemeLight {
		return Light()
	}
	return Dark()
}

// Toggle returns the name of the other theme.
func Toggle(name string) string {
	if name == store.ThemeLight {
		return store.ThemeDark
	}
	return store.ThemeLight
}

func Dark() Theme {
	return build(store.ThemeDark, palette{
		background: "#1a1b26",
		text:       "#d0d0d0",
		accent:     "#ff87d7",
		link:       "#5fd7ff",
		border:     "#5f5fff",
		err:        "#ff5f5f",
	})
}

func Light() Theme {
	return build(store.ThemeLight, palette{
		background: "#fafafa",
		text:       "#262626",
		accent:     "#af005f",
		link:       "#005faf",
		border:     "#875fff",
		err:        "#d70000",
	})
}

type palette struct {
	background, text, accent, link, border, err string
}

// muted fades the text color toward the background.
func (p palette) muted() string {
	text, err := colorful.Hex(p.text)
	if err != nil {
		return p.text
	}
	bg, err := colorful.Hex(p.background)
	if err != nil {
		return p.text
	}
	return text.BlendLab(bg, 0.45).Clamped().Hex()
}

func build(name string, p palette) Theme {
	muted := p.muted()
	return Theme{
		Name: name,
		Suggestion: SuggestionTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(p.border)).
				Padding(1, 3),
			Tagline: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Italic(true),
			Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
			Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Bold(true),
			Reason:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
			Link:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.link)).Underline(true),
			Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
			HintKey: lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		},
		Footer: FooterTheme{
			Label:  lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
			Value:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Italic(true),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.err)).Bold(true),
		},
	}
}
