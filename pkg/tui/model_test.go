package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/onthisday/pkg/choice"
	"tableflip.dev/onthisday/pkg/clock"
	"tableflip.dev/onthisday/pkg/i18n"
	"tableflip.dev/onthisday/pkg/store"
	"tableflip.dev/onthisday/pkg/widget"
)

// newTestModel mounts a widget on December 20th, which has two bundled
// candidates: a TV show and a movie.
func newTestModel(t *testing.T) (*Model, store.Preferences) {
	t.Helper()
	catalog, err := i18n.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	tr := catalog.Translator("en")
	now := time.Date(2024, time.December, 20, 12, 0, 0, 0, time.UTC)
	c := clock.New("UTC", "", clock.WithNow(func() time.Time { return now }))
	w, err := widget.New(c, tr, widget.WithPicker(func(int) int { return 0 }))
	if err != nil {
		t.Fatalf("mount widget: %v", err)
	}
	prefs := store.NewMemory()
	return New(Options{Widget: w, Translator: tr, Prefs: prefs}), prefs
}

func press(m *Model, code rune, text string) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Code: code, Text: text})
	return cmd
}

func TestSpaceAndClickAdvance(t *testing.T) {
	m, _ := newTestModel(t)
	if got := m.view.Title; got != "Firefly (2002-2002)" {
		t.Fatalf("mounted title = %q", got)
	}

	press(m, tea.KeySpace, " ")
	if got := m.view.Title; got != "It's a Wonderful Life (1946)" {
		t.Fatalf("after space title = %q", got)
	}

	m.Update(tea.MouseClickMsg{Button: tea.MouseLeft})
	if got := m.view.Title; got != "Firefly (2002-2002)" {
		t.Fatalf("after click title = %q, want the cycle to wrap", got)
	}
}

func TestFilterKeyCyclesPresetAndPersists(t *testing.T) {
	m, prefs := newTestModel(t)

	press(m, 'f', "f")
	if m.preset != choice.PresetOnlyMovies {
		t.Fatalf("preset = %q", m.preset)
	}
	if got := m.view.Title; got != "It's a Wonderful Life (1946)" {
		t.Fatalf("only movies title = %q", got)
	}
	if v, _ := prefs.Get(store.KeyFilter); v != "only_movies" {
		t.Fatalf("persisted filter = %q", v)
	}

	press(m, 'f', "f")
	press(m, 'f', "f")
	if m.preset != choice.PresetOnlyPeople || !m.view.Empty {
		t.Fatalf("only people on a day without people should be empty, got %+v", m.view)
	}
	if !strings.Contains(m.View(), "Nothing to watch") {
		t.Fatalf("empty state not rendered")
	}
}

func TestLinkAndThemeKeys(t *testing.T) {
	m, prefs := newTestModel(t)

	press(m, 'l', "l")
	if got := m.view.LinkURL; got != "https://www.themoviedb.org/tv/1437" {
		t.Fatalf("link after l = %q", got)
	}
	if v, _ := prefs.Get(store.KeyLink); v != "tmdb" {
		t.Fatalf("persisted link = %q", v)
	}

	press(m, 't', "t")
	if m.themeName != store.ThemeLight {
		t.Fatalf("theme = %q", m.themeName)
	}
	if v, _ := prefs.Get(store.KeyTheme); v != store.ThemeLight {
		t.Fatalf("persisted theme = %q", v)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, 'q', "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestWatchEventSyncsPreferences(t *testing.T) {
	m, prefs := newTestModel(t)
	_ = prefs.Set(store.KeyLink, "letterboxd")
	_ = prefs.Set(store.KeyFilter, "only_tv")
	_ = prefs.Set(store.KeyTimezone, "Pacific/Kiritimati")

	m.Update(watchEventMsg{event: store.Event{Type: store.EventInvalidated}})

	if m.preset != choice.PresetOnlyTV {
		t.Fatalf("preset = %q", m.preset)
	}
	if got := m.widget.Clock().Timezone(); got != "Pacific/Kiritimati" {
		t.Fatalf("timezone = %q", got)
	}
	// Kiritimati is UTC+14, so it is already the 21st there.
	if got := m.view.Key; got != "12-21" {
		t.Fatalf("key = %q", got)
	}
}

func TestTickRefreshesAndReschedules(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("tick should schedule the next tick")
	}
	if m.err != nil {
		t.Fatalf("unexpected error %v", m.err)
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	out := m.View()
	for _, want := range []string{"What should I watch today?", "Firefly (2002-2002)", "https://www.imdb.com/title/tt0303461", "Timezone:"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
