package choice

import (
	"fmt"
	"strings"
)

// Filter is the inclusion mask over candidate types. Filters are compared by
// value; any flag change is a new filter.
type Filter struct {
	Movie  bool `json:"movie"`
	TV     bool `json:"tv"`
	Person bool `json:"person"`
}

// All includes every type.
var All = Filter{Movie: true, TV: true, Person: true}

// Includes reports whether t passes the filter.
func (f Filter) Includes(t Type) bool {
	switch t {
	case Movie:
		return f.Movie
	case TV:
		return f.TV
	case Person:
		return f.Person
	}
	return false
}

// Empty reports whether the filter excludes everything.
func (f Filter) Empty() bool {
	return !f.Movie && !f.TV && !f.Person
}

// Apply returns the candidates passing the filter, in their original order.
func (f Filter) Apply(list []Candidate) []Candidate {
	out := make([]Candidate, 0, len(list))
	for _, c := range list {
		if f.Includes(c.Type) {
			out = append(out, c)
		}
	}
	return out
}

func (f Filter) String() string {
	var parts []string
	for _, t := range Types() {
		if f.Includes(t) {
			parts = append(parts, string(t))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// Preset names one of the filter choices offered to users.
type Preset string

const (
	PresetAll        Preset = "all"
	PresetOnlyMovies Preset = "only_movies"
	PresetOnlyTV     Preset = "only_tv"
	PresetOnlyPeople Preset = "only_people"
)

var presetFilters = map[Preset]Filter{
	PresetAll:        All,
	PresetOnlyMovies: {Movie: true},
	PresetOnlyTV:     {TV: true},
	PresetOnlyPeople: {Person: true},
}

// Presets lists the presets in menu order.
func Presets() []Preset {
	return []Preset{PresetAll, PresetOnlyMovies, PresetOnlyTV, PresetOnlyPeople}
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presetFilters[p]; !ok {
		return "", fmt.Errorf("choice: unknown filter preset %q", s)
	}
	return p, nil
}

// Filter returns the mask for the preset. Unknown presets include everything.
func (p Preset) Filter() Filter {
	if f, ok := presetFilters[p]; ok {
		return f
	}
	return All
}

// Next returns the preset following p in menu order, wrapping around.
func (p Preset) Next() Preset {
	presets := Presets()
	for i, candidate := range presets {
		if candidate == p {
			return presets[(i+1)%len(presets)]
		}
	}
	return PresetAll
}
