package choice

// Key is the lookup key for a day's candidate list: either MM-DD or one of
// the special occasions.
type Key string

const (
	KeyDayBeforeChristmas Key = "day_before_christmas"
	KeyChristmas          Key = "christmas"
	KeyNewYear            Key = "new_year"
	KeyFriday13th         Key = "friday_13th"
)

// Calendar is the subset of the clock a key is derived from.
type Calendar interface {
	IsDayBeforeChristmas() bool
	IsChristmas() bool
	IsNewYear() bool
	IsFriday13th() bool
	FormatMonthDay() string
}

// KeyFor derives the active key. Special occasions win over the plain
// month-day, in fixed priority order.
func KeyFor(cal Calendar) Key {
	switch {
	case cal.IsDayBeforeChristmas():
		return KeyDayBeforeChristmas
	case cal.IsChristmas():
		return KeyChristmas
	case cal.IsNewYear():
		return KeyNewYear
	case cal.IsFriday13th():
		return KeyFriday13th
	default:
		return Key(cal.FormatMonthDay())
	}
}

// IsOccasion reports whether k is a special occasion rather than a date.
func (k Key) IsOccasion() bool {
	switch k {
	case KeyDayBeforeChristmas, KeyChristmas, KeyNewYear, KeyFriday13th:
		return true
	}
	return false
}

// Path is the translation key path holding the candidates for k.
func (k Key) Path() string {
	return "choices." + string(k)
}
