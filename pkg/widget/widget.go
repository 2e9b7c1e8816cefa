// Package widget drives the daily suggestion: it derives the calendar key,
// walks the filtered candidates for that key and renders the view model the
// terminal UI, the printers and the HTTP API display.
//
// A Widget is not safe for concurrent use.
package widget

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/onthisday/pkg/choice"
	"tableflip.dev/onthisday/pkg/clock"
	"tableflip.dev/onthisday/pkg/i18n"
	"tableflip.dev/onthisday/pkg/link"
	"tableflip.dev/onthisday/pkg/reason"
)

// View is the rendered state of the widget.
type View struct {
	Title              string     `json:"title"`
	Reason             string     `json:"reason"`
	LinkURL            string     `json:"link_url,omitempty"`
	BackgroundImageURL string     `json:"background_image_url,omitempty"`
	Key                choice.Key `json:"key"`
	Position           int        `json:"position"`
	Empty              bool       `json:"empty"`
}

// Widget owns one selection cycle.
type Widget struct {
	clock  *clock.Clock
	tr     *i18n.Translator
	filter choice.Filter
	site   link.Site
	pick   choice.Picker
	log    *log.Logger

	cycle   choice.Cycle
	key     choice.Key
	current *choice.Candidate
	view    View
}

// Option configures a Widget.
type Option func(*Widget)

// WithFilter sets the initial content-type filter. The default includes
// every type.
func WithFilter(f choice.Filter) Option {
	return func(w *Widget) { w.filter = f }
}

// WithLinkSite sets the reference site links point to.
func WithLinkSite(s link.Site) Option {
	return func(w *Widget) { w.site = s }
}

// WithPicker replaces the random source used to choose reason variants.
func WithPicker(p choice.Picker) Option {
	return func(w *Widget) { w.pick = p }
}

// WithLogger routes transition logs to l.
func WithLogger(l *log.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.log = l
		}
	}
}

// New mounts a widget: the first candidate for today's key is selected
// straight away.
func New(c *clock.Clock, tr *i18n.Translator, opts ...Option) (*Widget, error) {
	w := &Widget{
		clock:  c,
		tr:     tr,
		filter: choice.All,
		site:   link.Default,
		pick:   choice.RandomIndex,
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	if _, err := w.transition(choice.Reset); err != nil {
		return nil, err
	}
	return w, nil
}

// View returns the current view model.
func (w *Widget) View() View { return w.view }

// Key returns the calendar key the current view was drawn from.
func (w *Widget) Key() choice.Key { return w.key }

// Clock returns the clock the widget evaluates the calendar with.
func (w *Widget) Clock() *clock.Clock { return w.clock }

// Filter returns the active content-type filter.
func (w *Widget) Filter() choice.Filter { return w.filter }

// LinkSite returns the active reference site.
func (w *Widget) LinkSite() link.Site { return w.site }

// Language returns the language the widget renders copy in.
func (w *Widget) Language() string { return w.tr.Language() }

// Advance shows the next candidate.
func (w *Widget) Advance() (View, error) {
	return w.transition(choice.Advance)
}

// FiltersChanged applies f and starts the cycle over. Re-applying the
// active filter changes nothing.
func (w *Widget) FiltersChanged(f choice.Filter) (View, error) {
	if f == w.filter {
		return w.view, nil
	}
	w.filter = f
	return w.transition(choice.Reset)
}

// CalendarChanged re-evaluates the list for a new timezone or override
// date. When the calendar key changes the cycle starts over, otherwise it
// advances. On error the previous calendar is kept.
func (w *Widget) CalendarChanged(timezone, override string) (View, error) {
	next := w.clock.WithCalendar(timezone, override)
	if next.Timezone() == w.clock.Timezone() && next.Override() == w.clock.Override() {
		return w.view, nil
	}
	prev := w.clock
	w.clock = next
	v, err := w.transition(choice.Advance)
	if err != nil {
		w.clock = prev
	}
	return v, err
}

// Preview renders what the widget would show under another timezone or
// override date without touching its own state. An unchanged calendar
// returns the current view.
func (w *Widget) Preview(timezone, override string) (View, error) {
	next := w.clock.WithCalendar(timezone, override)
	if next.Timezone() == w.clock.Timezone() && next.Override() == w.clock.Override() {
		return w.view, nil
	}
	cp := *w
	cp.clock = next
	cp.cycle = choice.Cycle{}
	return cp.transition(choice.Reset)
}

// Refresh re-derives the calendar key from the clock and starts over when it
// moved, for example at midnight or at 16:00 on December 24th.
func (w *Widget) Refresh() (View, bool, error) {
	if choice.KeyFor(w.clock) == w.key {
		return w.view, false, nil
	}
	v, err := w.transition(choice.Advance)
	return v, err == nil, err
}

// SetLinkSite switches the reference site of the current suggestion.
func (w *Widget) SetLinkSite(s link.Site) (View, error) {
	w.site = s
	w.view.LinkURL = link.Resolve(w.current, s)
	return w.view, nil
}

// transition selects the next candidate. A calendar key that differs from
// the one the current view was drawn from always starts the cycle over.
func (w *Widget) transition(t choice.Transition) (View, error) {
	key := choice.KeyFor(w.clock)
	if key != w.key {
		t = choice.Reset
	}
	all, err := w.tr.Candidates(key.Path())
	if err != nil {
		return w.view, fmt.Errorf("widget: %s: %w", t, err)
	}

	list := w.filter.Apply(all)
	prev := w.cycle
	idx, ok := w.cycle.Next(len(list), t)
	if !ok {
		w.key = key
		w.current = nil
		w.view = View{
			Title:  w.tr.String("no_results.title"),
			Reason: w.tr.String("no_results.reason"),
			Key:    key,
			Empty:  true,
		}
		w.log.Debug("no candidates", "key", key, "filter", w.filter, "available", len(all))
		return w.view, nil
	}

	c := list[idx]
	title, err := c.Title()
	if err != nil {
		w.cycle = prev
		return w.view, fmt.Errorf("widget: %s: %w", t, err)
	}
	w.key = key
	w.current = &c
	w.view = View{
		Title:              title,
		Reason:             w.reasonText(c),
		LinkURL:            link.Resolve(w.current, w.site),
		BackgroundImageURL: c.ImageURL(),
		Key:                key,
		Position:           idx,
	}
	w.log.Debug("selected", "transition", t, "key", key, "position", idx, "of", len(list), "filter", w.filter)
	return w.view, nil
}

func (w *Widget) reasonText(c choice.Candidate) string {
	now := w.clock.Now()
	var text string
	if choice.IsDateReason(c.Reason) {
		text = reason.Render(w.variant("reasons."+c.Reason), c.Date, now)
	} else {
		text = reason.Render(w.variant("reasons."+choice.ReasonFeaturing), w.clock.Today(), now) + " " + c.Reason
	}
	return w.tr.String("why") + " " + text
}

// variant picks one of the templates at keyPath. A plain string is its own
// only variant.
func (w *Widget) variant(keyPath string) string {
	if v, ok := choice.Pick(w.tr.Strings(keyPath), w.pick); ok {
		return v
	}
	return w.tr.String(keyPath)
}
