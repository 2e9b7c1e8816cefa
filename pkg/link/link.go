// Package link builds the outbound reference URL for a suggestion.
package link

import (
	"fmt"
	"strings"

	"tableflip.dev/onthisday/pkg/choice"
)

// Site is a reference site a user prefers to follow suggestions to.
type Site string

const (
	IMDb       Site = "imdb"
	TMDB       Site = "tmdb"
	Letterboxd Site = "letterboxd"
)

// Default is used when no preference has been stored.
const Default = IMDb

// Sites lists the supported sites in menu order.
func Sites() []Site {
	return []Site{IMDb, TMDB, Letterboxd}
}

// ParseSite validates a site name.
func ParseSite(s string) (Site, error) {
	site := Site(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Sites() {
		if site == known {
			return site, nil
		}
	}
	return "", fmt.Errorf("link: unknown site %q", s)
}

// Next returns the site following s in menu order, wrapping around.
func (s Site) Next() Site {
	sites := Sites()
	for i, known := range sites {
		if known == s {
			return sites[(i+1)%len(sites)]
		}
	}
	return Default
}

// Resolve returns the URL for c on site, or "" when there is no candidate.
// Letterboxd only knows movies; other types fall back to IMDb.
func Resolve(c *choice.Candidate, site Site) string {
	if c == nil {
		return ""
	}
	switch site {
	case TMDB:
		return fmt.Sprintf("https://www.themoviedb.org/%s/%d", c.Type, c.ExternalIDs.TMDBID)
	case Letterboxd:
		if c.Type == choice.Movie {
			return fmt.Sprintf("https://letterboxd.com/tmdb/%d", c.ExternalIDs.TMDBID)
		}
	}
	if c.Type == choice.Person {
		return "https://www.imdb.com/name/" + c.ExternalIDs.IMDBID
	}
	return "https://www.imdb.com/title/" + c.ExternalIDs.IMDBID
}
