package clock

import (
	"testing"
	"time"
)

func fixed(t *testing.T, tz string, year int, month time.Month, day, hour, min int) *Clock {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	if err != nil {
		t.Fatalf("load %s: %v", tz, err)
	}
	at := time.Date(year, month, day, hour, min, 0, 0, loc)
	return New(tz, "", WithNow(func() time.Time { return at }))
}

func TestDayBeforeChristmasBoundaries(t *testing.T) {
	tests := []struct {
		name string
		day  int
		hour int
		min  int
		want bool
	}{
		{name: "afternoon of the 24th", day: 24, hour: 16, want: true},
		{name: "late on the 24th", day: 24, hour: 23, min: 59, want: true},
		{name: "just before four", day: 24, hour: 15, min: 59, want: false},
		{name: "christmas day", day: 25, hour: 17, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fixed(t, "Europe/Lisbon", 2024, time.December, tt.day, tt.hour, tt.min)
			if got := c.IsDayBeforeChristmas(); got != tt.want {
				t.Fatalf("IsDayBeforeChristmas() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewYearBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		day   int
		hour  int
		min   int
		want  bool
	}{
		{name: "eve at four", month: time.December, day: 31, hour: 16, want: true},
		{name: "eve before four", month: time.December, day: 31, hour: 15, min: 59, want: false},
		{name: "first minute", month: time.January, day: 1, hour: 0, want: true},
		{name: "last minute", month: time.January, day: 1, hour: 23, min: 59, want: true},
		{name: "second of january", month: time.January, day: 2, hour: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fixed(t, "America/New_York", 2025, tt.month, tt.day, tt.hour, tt.min)
			if got := c.IsNewYear(); got != tt.want {
				t.Fatalf("IsNewYear() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredicatesUseResolvedTimezone(t *testing.T) {
	// 2024-12-24 20:00 UTC is still early afternoon in Los Angeles.
	at := time.Date(2024, time.December, 24, 20, 0, 0, 0, time.UTC)
	la := New("America/Los_Angeles", "", WithNow(func() time.Time { return at }))
	if la.IsDayBeforeChristmas() {
		t.Fatalf("expected 12:00 in Los Angeles to be before the cutoff")
	}
	tokyo := New("Asia/Tokyo", "", WithNow(func() time.Time { return at }))
	if !tokyo.IsChristmas() {
		t.Fatalf("expected Tokyo to already be on Christmas day")
	}
	if got := tokyo.FormatMonthDay(); got != "12-25" {
		t.Fatalf("FormatMonthDay() = %q, want 12-25", got)
	}
}

func TestFriday13th(t *testing.T) {
	c := fixed(t, "UTC", 2024, time.December, 13, 9, 0)
	if !c.IsFriday13th() {
		t.Fatalf("2024-12-13 is a Friday")
	}
	c = fixed(t, "UTC", 2024, time.November, 13, 9, 0)
	if c.IsFriday13th() {
		t.Fatalf("2024-11-13 is a Wednesday")
	}
}

func TestOverridePinsMidnight(t *testing.T) {
	c := New("Asia/Tokyo", "2024-12-24", WithNow(func() time.Time {
		return time.Date(2030, time.June, 1, 18, 0, 0, 0, time.UTC)
	}))
	if got := c.FormatMonthDay(); got != "12-24" {
		t.Fatalf("FormatMonthDay() = %q, want 12-24", got)
	}
	if c.IsDayBeforeChristmas() {
		t.Fatalf("override is midnight, so the 16:00 cutoff must not be reached")
	}
	if got := c.Override(); got != "2024-12-24" {
		t.Fatalf("Override() = %q", got)
	}
	if got := c.Today(); got != "2024-12-24" {
		t.Fatalf("Today() = %q", got)
	}
}

func TestInvalidTimezoneFallsBackToLocal(t *testing.T) {
	c := New("Mars/Olympus_Mons", "")
	if got, want := c.Timezone(), time.Local.String(); got != want {
		t.Fatalf("Timezone() = %q, want %q", got, want)
	}
}

func TestSetTimezoneIgnoresInvalid(t *testing.T) {
	c := New("Europe/Paris", "")
	if c.SetTimezone("Not/AZone") {
		t.Fatalf("expected invalid timezone to be rejected")
	}
	if got := c.Timezone(); got != "Europe/Paris" {
		t.Fatalf("Timezone() = %q, want Europe/Paris", got)
	}
	if !c.SetTimezone("Asia/Kolkata") {
		t.Fatalf("expected valid timezone to be accepted")
	}
	if got := c.Timezone(); got != "Asia/Kolkata" {
		t.Fatalf("Timezone() = %q, want Asia/Kolkata", got)
	}
}

func TestZoneExists(t *testing.T) {
	for id, want := range map[string]bool{
		"UTC":               true,
		"America/Sao_Paulo": true,
		"":                  false,
		"Nowhere/Special":   false,
	} {
		if got := ZoneExists(id); got != want {
			t.Errorf("ZoneExists(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestValidOrNil(t *testing.T) {
	if c := ValidOrNil(""); c == nil || c.Timezone() != "UTC" {
		t.Fatalf("expected empty timezone to resolve to UTC, got %#v", c)
	}
	if c := ValidOrNil("Bogus/Zone"); c != nil {
		t.Fatalf("expected nil clock for invalid timezone")
	}
}

func TestWithCalendar(t *testing.T) {
	at := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	c := New("UTC", "", WithNow(func() time.Time { return at }))

	next := c.WithCalendar("Bogus/Zone", "2024-02-29")
	if next.Timezone() != "UTC" {
		t.Fatalf("invalid timezone should keep UTC, got %s", next.Timezone())
	}
	if next.FormatMonthDay() != "02-29" {
		t.Fatalf("expected override to apply, got %s", next.FormatMonthDay())
	}

	kept := next.WithCalendar("", "not-a-date")
	if kept.Override() != "2024-02-29" {
		t.Fatalf("malformed override should keep the previous one, got %q", kept.Override())
	}

	live := next.WithCalendar("", "")
	if live.Override() != "" || live.FormatMonthDay() != "03-03" {
		t.Fatalf("empty override should switch back to the live clock, got %q", live.FormatMonthDay())
	}
}

func TestZones(t *testing.T) {
	all := Zones("")
	if len(all) == 0 {
		t.Fatalf("expected zones")
	}
	for _, z := range Zones("europe/") {
		if len(z) < 7 || z[:7] != "Europe/" {
			t.Fatalf("unexpected zone %q for prefix", z)
		}
	}
}
