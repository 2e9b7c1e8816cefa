// Package tui is the interactive terminal surface: one suggestion card that
// advances on space or a mouse click.
package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/onthisday/pkg/choice"
	"tableflip.dev/onthisday/pkg/i18n"
	"tableflip.dev/onthisday/pkg/store"
	"tableflip.dev/onthisday/pkg/tui/theme"
	"tableflip.dev/onthisday/pkg/widget"
)

const (
	defaultTick = time.Minute
	cardWidth   = 64
)

// Options wires a Model to a mounted widget and the preference store.
type Options struct {
	Context    context.Context
	Widget     *widget.Widget
	Translator *i18n.Translator
	// Prefs persists filter, link and theme changes. Nil disables
	// persistence and watching.
	Prefs  store.Preferences
	Preset choice.Preset
	Theme  string
	Logger *log.Logger
	// Tick is how often the calendar key is re-derived. Defaults to a
	// minute.
	Tick time.Duration
}

// Model renders the suggestion card.
type Model struct {
	ctx    context.Context
	widget *widget.Widget
	tr     *i18n.Translator
	prefs  store.Preferences
	log    *log.Logger

	view      widget.View
	preset    choice.Preset
	themeName string
	theme     theme.Theme
	keys      keyMap
	help      help.Model
	tick      time.Duration

	width  int
	height int
	status string
	err    error

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New constructs a model around an already mounted widget.
func New(o Options) *Model {
	ctx := o.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	preset := o.Preset
	if preset == "" {
		preset = choice.PresetAll
	}
	tick := o.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	themeName := theme.ByName(o.Theme).Name
	return &Model{
		ctx:       ctx,
		widget:    o.Widget,
		tr:        o.Translator,
		prefs:     o.Prefs,
		log:       logger,
		view:      o.Widget.View(),
		preset:    preset,
		themeName: themeName,
		theme:     theme.ByName(themeName),
		keys:      defaultKeys(),
		help:      help.New(),
		tick:      tick,
	}
}

// Run launches the interactive TUI program.
func Run(o Options) error {
	m := New(o)
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

type tickMsg time.Time

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), startWatchCmd(m.ctx, m.prefs))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseClickMsg:
		m.advance()
	case tickMsg:
		v, changed, err := m.widget.Refresh()
		m.apply(v, err)
		if changed {
			m.log.Debug("calendar key rolled over", "key", v.Key)
		}
		cmds = append(cmds, m.tickCmd())
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("watch: " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.log.Debug("preferences changed", "key", msg.event.Key)
		m.syncPreferences()
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopWatch()
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.advance()
	case key.Matches(msg, m.keys.Filter):
		m.setPreset(m.preset.Next())
		m.persist(store.KeyFilter, string(m.preset))
	case key.Matches(msg, m.keys.Link):
		site := m.widget.LinkSite().Next()
		m.apply(m.widget.SetLinkSite(site))
		m.persist(store.KeyLink, string(site))
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(theme.Toggle(m.themeName))
		m.persist(store.KeyTheme, m.themeName)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) advance() {
	m.apply(m.widget.Advance())
}

func (m *Model) setPreset(p choice.Preset) {
	m.preset = p
	m.apply(m.widget.FiltersChanged(p.Filter()))
}

func (m *Model) setTheme(name string) {
	m.theme = theme.ByName(name)
	m.themeName = m.theme.Name
}

func (m *Model) apply(v widget.View, err error) {
	if err != nil {
		m.err = err
		m.log.Error("suggestion", "err", err)
		return
	}
	m.err = nil
	m.view = v
}

func (m *Model) persist(name, value string) {
	if m.prefs == nil {
		return
	}
	if err := store.WriteSetting(m.prefs, name, value); err != nil {
		m.setStatus("save " + name + ": " + err.Error())
		return
	}
	m.setStatus("")
}

func (m *Model) setStatus(s string) {
	m.status = s
	if s != "" {
		m.log.Warn(s)
	}
}

// syncPreferences applies preferences changed outside this session, for
// example with `onthisday prefs set`.
func (m *Model) syncPreferences() {
	s := store.ReadSettings(m.prefs)
	c := m.widget.Clock()
	if s.Timezone != "" && s.Timezone != c.Timezone() {
		m.apply(m.widget.CalendarChanged(s.Timezone, c.Override()))
	}
	if s.Filter != m.preset {
		m.setPreset(s.Filter)
	}
	if s.Link != m.widget.LinkSite() {
		m.apply(m.widget.SetLinkSite(s.Link))
	}
	if s.Theme != "" && s.Theme != m.themeName {
		m.setTheme(s.Theme)
	}
}

func (m *Model) View() string {
	s := m.theme.Suggestion
	width := cardWidth
	if m.width > 0 && m.width-8 < width {
		width = max(m.width-8, 20)
	}

	title := s.Title.Render(m.view.Title)
	if m.view.Empty {
		title = s.Empty.Render(m.view.Title)
	}
	lines := []string{
		title,
		"",
		s.Reason.Render(wordwrap.String(m.view.Reason, width)),
	}
	if m.view.LinkURL != "" {
		lines = append(lines, "", s.Link.Render(m.view.LinkURL))
	}
	card := s.Frame.Width(width + 6).Render(strings.Join(lines, "\n"))

	hint := s.Hint.Render(m.tr.String("reload.hit")) + " " +
		s.HintKey.Render(m.tr.String("reload.space")) + " " +
		s.Hint.Render(m.tr.String("reload.or_click"))

	body := lipgloss.JoinVertical(lipgloss.Center,
		s.Tagline.Render(m.tr.String("tagline")),
		"",
		card,
		"",
		hint,
		"",
		m.footer(),
		m.statusLine(),
		m.help.View(m.keys),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) footer() string {
	f := m.theme.Footer
	item := func(labelKey, value string) string {
		return f.Label.Render(m.tr.String(labelKey)+":") + " " + f.Value.Render(value)
	}
	return strings.Join([]string{
		item("footer.timezone", m.widget.Clock().Timezone()),
		item("footer.filter", m.tr.String("footer.filter_"+string(m.preset))),
		item("footer.link", string(m.widget.LinkSite())),
		item("footer.theme", m.themeName),
	}, f.Label.Render("  ·  "))
}

func (m *Model) statusLine() string {
	if m.err != nil {
		return m.theme.Footer.Error.Render(m.err.Error())
	}
	return m.theme.Footer.Status.Render(m.status)
}
