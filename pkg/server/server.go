// Package server hosts the widget over a small local JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"tableflip.dev/onthisday/pkg/choice"
	"tableflip.dev/onthisday/pkg/clock"
	"tableflip.dev/onthisday/pkg/link"
	"tableflip.dev/onthisday/pkg/store"
	"tableflip.dev/onthisday/pkg/widget"
)

// Server serializes access to a single widget.
type Server struct {
	mu     sync.Mutex
	widget *widget.Widget
	prefs  store.Preferences
	log    *log.Logger
}

// New wraps a mounted widget. prefs may be nil to skip persistence.
func New(w *widget.Widget, prefs store.Preferences, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{widget: w, prefs: prefs, log: logger}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/suggestion", s.getSuggestion).Methods(http.MethodGet)
	api.HandleFunc("/advance", s.advance).Methods(http.MethodPost)
	api.HandleFunc("/filters", s.putFilters).Methods(http.MethodPut)
	api.HandleFunc("/calendar", s.putCalendar).Methods(http.MethodPut)
	api.HandleFunc("/link", s.putLink).Methods(http.MethodPut)
	return r
}

// ListenAndServe serves on host:port until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, host string, port int) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) getSuggestion(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tz := strings.TrimSpace(q.Get("tz"))
	date := strings.TrimSpace(q.Get("date"))

	s.mu.Lock()
	defer s.mu.Unlock()

	if tz == "" && date == "" {
		writeJSON(w, http.StatusOK, s.widget.View())
		return
	}
	if _, err := clock.ParseOverride(date); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c := s.widget.Clock()
	if !clock.ZoneExists(tz) {
		// Unknown zones are ignored, as in the browser.
		tz = c.Timezone()
	}
	if date == "" {
		date = c.Override()
	}
	// Query parameters only preview; PUT /api/calendar moves the widget.
	s.respond(w, func() (widget.View, error) { return s.widget.Preview(tz, date) })
}

func (s *Server) advance(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, s.widget.Advance)
}

type filtersRequest struct {
	Preset string `json:"preset"`
	Movie  *bool  `json:"movie"`
	TV     *bool  `json:"tv"`
	Person *bool  `json:"person"`
}

func (s *Server) putFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var f choice.Filter
	if req.Preset != "" {
		preset, err := choice.ParsePreset(req.Preset)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		f = preset.Filter()
		s.persist(store.KeyFilter, string(preset))
	} else {
		f = s.widget.Filter()
		if req.Movie != nil {
			f.Movie = *req.Movie
		}
		if req.TV != nil {
			f.TV = *req.TV
		}
		if req.Person != nil {
			f.Person = *req.Person
		}
	}
	s.respond(w, func() (widget.View, error) { return s.widget.FiltersChanged(f) })
}

type calendarRequest struct {
	Timezone string `json:"timezone"`
	Date     string `json:"date"`
}

func (s *Server) putCalendar(w http.ResponseWriter, r *http.Request) {
	var req calendarRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Timezone != "" && !clock.ZoneExists(req.Timezone) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown timezone %q", req.Timezone))
		return
	}
	if _, err := clock.ParseOverride(req.Date); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, func() (widget.View, error) { return s.widget.CalendarChanged(req.Timezone, req.Date) })
}

type linkRequest struct {
	Site string `json:"site"`
}

func (s *Server) putLink(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	site, err := link.ParseSite(req.Site)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist(store.KeyLink, string(site))
	s.respond(w, func() (widget.View, error) { return s.widget.SetLinkSite(site) })
}

func (s *Server) respond(w http.ResponseWriter, transition func() (widget.View, error)) {
	v, err := transition()
	if err != nil {
		s.log.Error("transition failed", "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) persist(name, value string) {
	if s.prefs == nil {
		return
	}
	if err := store.WriteSetting(s.prefs, name, value); err != nil {
		s.log.Warn("persist preference", "key", name, "err", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
