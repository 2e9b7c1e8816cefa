// Package clock resolves "now" in a viewer's timezone and classifies it into
// the calendar predicates used to pick the day's suggestion.
package clock

import (
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is used when no timezone is requested at all.
	DefaultTimezone = "UTC"

	layoutISO = "2006-01-02"
)

// Clock wraps a timezone and an optional fixed override date. When an
// override is set every predicate operates on local midnight of that date
// instead of the live clock.
type Clock struct {
	loc      *time.Location
	override *time.Time
	now      func() time.Time
}

// Option customises a Clock.
type Option func(*Clock)

// WithNow replaces the live time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a Clock for timezone. Unknown or empty timezones fall back to
// the local zone. An override that does not parse as YYYY-MM-DD is ignored;
// use ParseOverride to validate untrusted input first.
func New(timezone, override string, opts ...Option) *Clock {
	c := &Clock{
		loc: resolve(timezone),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if d, err := ParseOverride(override); err == nil && d != nil {
		c.override = d
	}
	return c
}

// ParseOverride parses an override date. An empty string yields nil.
func ParseOverride(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return nil, err
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d, nil
}

// ZoneExists reports whether id names a timezone known to the platform
// database.
func ZoneExists(id string) bool {
	if id == "" {
		return false
	}
	_, err := time.LoadLocation(id)
	return err == nil
}

// ValidOrNil returns a live Clock for timezone, or nil when the timezone is
// unknown. An empty timezone means DefaultTimezone.
func ValidOrNil(timezone string) *Clock {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	if !ZoneExists(timezone) {
		return nil
	}
	return New(timezone, "")
}

func resolve(timezone string) *time.Location {
	if timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// WithCalendar returns a copy of c sharing its time source, with the
// timezone replaced when valid and the override replaced by override. An
// empty override switches back to the live clock; a malformed one is ignored.
func (c *Clock) WithCalendar(timezone, override string) *Clock {
	next := &Clock{loc: c.loc, override: c.override, now: c.now}
	next.SetTimezone(timezone)
	if d, err := ParseOverride(override); err == nil {
		next.override = d
	}
	return next
}

// SetTimezone switches to id when it is a known timezone. Invalid ids are
// ignored and the current timezone is kept.
func (c *Clock) SetTimezone(id string) bool {
	if !ZoneExists(id) {
		return false
	}
	loc, _ := time.LoadLocation(id)
	c.loc = loc
	return true
}

// Timezone returns the name of the active timezone.
func (c *Clock) Timezone() string {
	return c.loc.String()
}

// Override returns the override date as YYYY-MM-DD, or "" when live.
func (c *Clock) Override() string {
	if c.override == nil {
		return ""
	}
	return c.override.Format(layoutISO)
}

// Now returns the effective date: the override, or the live instant in the
// active timezone.
func (c *Clock) Now() time.Time {
	if c.override != nil {
		return *c.override
	}
	return c.now().In(c.loc)
}

// FormatMonthDay renders the effective date as MM-DD.
func (c *Clock) FormatMonthDay() string {
	return c.Now().Format("01-02")
}

// Today renders the effective date as YYYY-MM-DD.
func (c *Clock) Today() string {
	return c.Now().Format(layoutISO)
}

func (c *Clock) IsFriday13th() bool {
	now := c.Now()
	return now.Weekday() == time.Friday && now.Day() == 13
}

// IsDayBeforeChristmas is true from 16:00 on December 24th.
func (c *Clock) IsDayBeforeChristmas() bool {
	now := c.Now()
	return now.Month() == time.December && now.Day() == 24 && now.Hour() >= 16
}

func (c *Clock) IsChristmas() bool {
	now := c.Now()
	return now.Month() == time.December && now.Day() == 25
}

// IsNewYear is true from 16:00 on December 31st through January 1st.
func (c *Clock) IsNewYear() bool {
	now := c.Now()
	if now.Month() == time.December && now.Day() == 31 && now.Hour() >= 16 {
		return true
	}
	return now.Month() == time.January && now.Day() == 1
}

func (c *Clock) IsHolidays() bool {
	return c.IsDayBeforeChristmas() || c.IsChristmas() || c.IsNewYear()
}
