package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/onthisday/pkg/choice"
	"tableflip.dev/onthisday/pkg/clock"
	"tableflip.dev/onthisday/pkg/commands/options"
	"tableflip.dev/onthisday/pkg/i18n"
	"tableflip.dev/onthisday/pkg/link"
	"tableflip.dev/onthisday/pkg/logging"
	"tableflip.dev/onthisday/pkg/store"
	"tableflip.dev/onthisday/pkg/widget"
)

// session is everything a command needs to show suggestions: config,
// logger, preferences and a mounted widget.
type session struct {
	cfg      store.Config
	log      *log.Logger
	logClose io.Closer
	prefs    store.Preferences
	settings store.Settings
	tr       *i18n.Translator
	preset   choice.Preset
	widget   *widget.Widget
}

// newSession resolves flags over stored preferences over config.
func newSession(co *options.CalendarOptions, so *options.SuggestionOptions, lo logging.Options) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.New(cfg, lo)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: logger, logClose: closer}

	s.prefs, err = store.Load(cfg)
	if err != nil {
		logger.Warn("preferences unavailable, using defaults", "err", err)
		s.prefs = store.NewMemory()
	}
	s.settings = store.ReadSettings(s.prefs)

	catalog, err := i18n.Load()
	if err != nil {
		s.Close()
		return nil, err
	}
	lang := cfg.Language()
	if so != nil && so.Language != "" {
		lang = so.Language
	}
	s.tr = catalog.Translator(lang)

	tz := firstNonEmpty(co.Timezone, s.settings.Timezone, cfg.Timezone())
	if tz != "" && !clock.ZoneExists(tz) {
		logger.Warn("unknown timezone, using local time", "tz", tz)
	}
	c := clock.New(tz, co.Date)

	s.preset = s.settings.Filter
	site := s.settings.Link
	if so != nil {
		if so.Filter != "" {
			if s.preset, err = choice.ParsePreset(so.Filter); err != nil {
				s.Close()
				return nil, err
			}
		}
		if so.LinkSite != "" {
			if site, err = link.ParseSite(so.LinkSite); err != nil {
				s.Close()
				return nil, err
			}
		}
	}

	logger.Debug("session", "tz", c.Timezone(), "date", c.Today(), "lang", s.tr.Language(), "filter", s.preset, "link", site)
	s.widget, err = widget.New(c, s.tr,
		widget.WithFilter(s.preset.Filter()),
		widget.WithLinkSite(site),
		widget.WithLogger(logger),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("mount suggestion: %w", err)
	}
	return s, nil
}

func (s *session) Close() {
	if s.logClose != nil {
		_ = s.logClose.Close()
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
