package store

import (
	"context"
	"fmt"
	"strings"

	"tableflip.dev/onthisday/pkg/choice"
	"tableflip.dev/onthisday/pkg/clock"
	"tableflip.dev/onthisday/pkg/link"
)

// Preference keys.
const (
	KeyTimezone = "timezone"
	KeyTheme    = "theme"
	KeyFilter   = "filter"
	KeyLink     = "link"
)

// Theme names accepted for KeyTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SettingKeys lists the known preference keys.
func SettingKeys() []string {
	return []string{KeyTimezone, KeyTheme, KeyFilter, KeyLink}
}

// Settings is the typed view of the stored preferences. Unset or invalid
// values come back as defaults.
type Settings struct {
	// Timezone is empty when the viewer's local zone should be used.
	Timezone string
	// Theme is empty when it should follow the terminal background.
	Theme    string
	Filter   choice.Preset
	Link     link.Site
}

// ReadSettings decodes the stored preferences, ignoring invalid values.
func ReadSettings(p Preferences) Settings {
	s := Settings{
		Filter: choice.PresetAll,
		Link:   link.Default,
	}
	if p == nil {
		return s
	}
	if v, ok := p.Get(KeyTimezone); ok && clock.ZoneExists(v) {
		s.Timezone = v
	}
	if v, ok := p.Get(KeyTheme); ok && (v == ThemeLight || v == ThemeDark) {
		s.Theme = v
	}
	if v, ok := p.Get(KeyFilter); ok {
		if preset, err := choice.ParsePreset(v); err == nil {
			s.Filter = preset
		}
	}
	if v, ok := p.Get(KeyLink); ok {
		if site, err := link.ParseSite(v); err == nil {
			s.Link = site
		}
	}
	return s
}

// WriteSetting validates value for key and stores its normalized form. An
// empty value removes the preference.
func WriteSetting(p Preferences, key, value string) error {
	value = strings.TrimSpace(value)
	if !isSettingKey(key) {
		return fmt.Errorf("store: unknown preference %q (want one of %s)", key, strings.Join(SettingKeys(), ", "))
	}
	if value == "" {
		return p.Delete(key)
	}
	switch key {
	case KeyTimezone:
		if !clock.ZoneExists(value) {
			return fmt.Errorf("store: unknown timezone %q", value)
		}
	case KeyTheme:
		value = strings.ToLower(value)
		if value != ThemeLight && value != ThemeDark {
			return fmt.Errorf("store: unknown theme %q (want %s or %s)", value, ThemeLight, ThemeDark)
		}
	case KeyFilter:
		preset, err := choice.ParsePreset(value)
		if err != nil {
			return err
		}
		value = string(preset)
	case KeyLink:
		site, err := link.ParseSite(value)
		if err != nil {
			return err
		}
		value = string(site)
	}
	return p.Set(key, value)
}

// SettingsMap renders every known preference with its effective value.
func SettingsMap(ctx context.Context, p Preferences) map[string]string {
	s := ReadSettings(p)
	m := map[string]string{
		KeyTimezone: s.Timezone,
		KeyTheme:    s.Theme,
		KeyFilter:   string(s.Filter),
		KeyLink:     string(s.Link),
	}
	if p == nil {
		return m
	}
	// Unknown keys written by hand are still shown.
	for k, v := range p.All(ctx) {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return m
}

func isSettingKey(key string) bool {
	for _, k := range SettingKeys() {
		if k == key {
			return true
		}
	}
	return false
}
