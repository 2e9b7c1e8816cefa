// Package choice models the dated candidates a suggestion is drawn from and
// the deterministic cycle that walks them.
package choice

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Type identifies what kind of title a candidate is.
type Type string

const (
	Movie  Type = "movie"
	TV     Type = "tv"
	Person Type = "person"
)

// Types lists the supported candidate types in display order.
func Types() []Type {
	return []Type{Movie, TV, Person}
}

// ErrInvalidType is returned when a candidate list holds an unsupported type.
var ErrInvalidType = errors.New("choice: invalid type")

// Reason tags that relate a candidate to the calendar date. Any other reason
// value is a free-text "featuring" fragment.
const (
	ReasonReleased    = "released"
	ReasonEnded       = "ended"
	ReasonCanceled    = "canceled"
	ReasonBirth       = "birth"
	ReasonDeath       = "death"
	ReasonDateInTitle = "date_in_title"
	ReasonFeaturing   = "featuring"
)

var dateReasons = map[string]struct{}{
	ReasonReleased:    {},
	ReasonEnded:       {},
	ReasonCanceled:    {},
	ReasonBirth:       {},
	ReasonDeath:       {},
	ReasonDateInTitle: {},
}

// IsDateReason reports whether reason is one of the date-related tags.
func IsDateReason(reason string) bool {
	_, ok := dateReasons[reason]
	return ok
}

// ExternalIDs carries the identifiers used to build outbound links.
type ExternalIDs struct {
	TMDBID int    `json:"tmdb_id"`
	IMDBID string `json:"imdb_id"`
}

// Candidate is one entry of a calendar key's list.
type Candidate struct {
	Type        Type        `json:"type"`
	Name        string      `json:"name"`
	Reason      string      `json:"reason"`
	ExternalIDs ExternalIDs `json:"external_ids"`
	ImagePath   string      `json:"image_path,omitempty"`
	Date        string      `json:"date"`

	ReleaseDate  string `json:"release_date,omitempty"`
	FirstAirDate string `json:"first_air_date,omitempty"`
	LastAirDate  string `json:"last_air_date,omitempty"`
	Birthday     string `json:"birthday,omitempty"`
	Deathday     string `json:"deathday,omitempty"`
}

const imageBaseURL = "https://image.tmdb.org/t/p/original/"

// Title formats the display title for the candidate's type. Missing years
// render as empty segments.
func (c Candidate) Title() (string, error) {
	switch c.Type {
	case Movie:
		return fmt.Sprintf("%s (%s)", c.Name, year(c.ReleaseDate)), nil
	case TV:
		return fmt.Sprintf("%s (%s-%s)", c.Name, year(c.FirstAirDate), year(c.LastAirDate)), nil
	case Person:
		return c.Name, nil
	default:
		return "", fmt.Errorf("%w (%s)", ErrInvalidType, c.Type)
	}
}

// ImageURL returns the poster or photo URL, or "" when the candidate has no
// image.
func (c Candidate) ImageURL() string {
	if c.ImagePath == "" {
		return ""
	}
	return imageBaseURL + strings.TrimPrefix(c.ImagePath, "/")
}

func year(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// Validate rejects a list holding any candidate of an unsupported type.
func Validate(list []Candidate) error {
	for i, c := range list {
		switch c.Type {
		case Movie, TV, Person:
		default:
			return fmt.Errorf("%w (%q at index %d)", ErrInvalidType, c.Type, i)
		}
	}
	return nil
}

// Decode converts a raw looked-up value into a candidate list. Values that
// are not arrays decode to an empty list; lists with unsupported types are
// rejected.
func Decode(raw any) ([]Candidate, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("choice: encode candidates: %w", err)
	}
	var list []Candidate
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("choice: decode candidates: %w", err)
	}
	if err := Validate(list); err != nil {
		return nil, err
	}
	return list, nil
}
