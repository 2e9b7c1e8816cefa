package link

import (
	"testing"

	"tableflip.dev/onthisday/pkg/choice"
)

func TestResolve(t *testing.T) {
	person := &choice.Candidate{Type: choice.Person, ExternalIDs: choice.ExternalIDs{TMDBID: 2636, IMDBID: "nm123"}}
	movie := &choice.Candidate{Type: choice.Movie, ExternalIDs: choice.ExternalIDs{TMDBID: 42, IMDBID: "tt0133093"}}
	show := &choice.Candidate{Type: choice.TV, ExternalIDs: choice.ExternalIDs{TMDBID: 7, IMDBID: "tt0903747"}}

	tests := []struct {
		name string
		c    *choice.Candidate
		site Site
		want string
	}{
		{name: "imdb person", c: person, site: IMDb, want: "https://www.imdb.com/name/nm123"},
		{name: "imdb movie", c: movie, site: IMDb, want: "https://www.imdb.com/title/tt0133093"},
		{name: "letterboxd movie", c: movie, site: Letterboxd, want: "https://letterboxd.com/tmdb/42"},
		{name: "letterboxd tv falls back", c: show, site: Letterboxd, want: "https://www.imdb.com/title/tt0903747"},
		{name: "letterboxd person falls back", c: person, site: Letterboxd, want: "https://www.imdb.com/name/nm123"},
		{name: "tmdb tv", c: show, site: TMDB, want: "https://www.themoviedb.org/tv/7"},
		{name: "tmdb person", c: person, site: TMDB, want: "https://www.themoviedb.org/person/2636"},
		{name: "unknown site", c: movie, site: Site("mubi"), want: "https://www.imdb.com/title/tt0133093"},
		{name: "no candidate", c: nil, site: TMDB, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.c, tt.site); got != tt.want {
				t.Fatalf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSite(t *testing.T) {
	s, err := ParseSite(" TMDB ")
	if err != nil || s != TMDB {
		t.Fatalf("ParseSite() = %q, %v", s, err)
	}
	if _, err := ParseSite("rottentomatoes"); err == nil {
		t.Fatalf("expected error for unknown site")
	}
	if got := Letterboxd.Next(); got != IMDb {
		t.Fatalf("Next() wraps to %q, want imdb", got)
	}
}
