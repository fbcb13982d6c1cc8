package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/layout"
	"github.com/mirrormods/scores-data-service/internal/poller"
	"github.com/mirrormods/scores-data-service/internal/rotation"
)

// Source exposes the cached per-league payloads.
type Source interface {
	Payload(domain.League) (domain.Payload, bool)
}

// Handler wires HTTP routes to the cache, rotation, and poller health.
type Handler struct {
	source    Source
	view      func() rotation.View
	layoutFor func(domain.League) layout.Layout
	mirrored  bool
	statusFor map[domain.League]func() poller.Status
	logger    *slog.Logger
}

type Config struct {
	Source    Source
	View      func() rotation.View
	LayoutFor func(domain.League) layout.Layout
	Mirrored  bool
	StatusFor map[domain.League]func() poller.Status
	Logger    *slog.Logger
}

func New(cfg Config) *Handler {
	layoutFor := cfg.LayoutFor
	if layoutFor == nil {
		layoutFor = func(domain.League) layout.Layout {
			return layout.Layout{Columns: 2, Rows: 2, GamesPerPage: 4, Scale: 1}
		}
	}
	return &Handler{
		source:    cfg.Source,
		view:      cfg.View,
		layoutFor: layoutFor,
		mirrored:  cfg.Mirrored,
		statusFor: cfg.StatusFor,
		logger:    cfg.Logger,
	}
}

// Healthz reports per-league poller health; degraded leagues flip the
// status code so orchestrators can see a stuck poll loop.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	type leagueHealth struct {
		Ready     bool   `json:"ready"`
		LastError string `json:"lastError,omitempty"`
	}

	leagues := make(map[string]leagueHealth, len(h.statusFor))
	allReady := true
	for league, statusFn := range h.statusFor {
		status := statusFn()
		leagues[string(league)] = leagueHealth{Ready: status.IsReady(), LastError: status.LastError}
		if !status.IsReady() {
			allReady = false
		}
	}

	body := map[string]any{"status": "ok", "leagues": leagues}
	code := http.StatusOK
	if len(h.statusFor) > 0 && !allReady {
		body["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, body, loggerFromContext(r, h.logger))
}

// Games serves the cached payload for /games/{league}.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	league, ok := leagueFromPath(r.URL.Path, "/games/")
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown league", h.logger)
		return
	}
	payload, ok := h.source.Payload(league)
	if !ok {
		writeError(w, r, http.StatusNotFound, "no data for league", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, payload, loggerFromContext(r, h.logger))
}

// Standings serves the standings extra for /standings/{league}.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	league, ok := leagueFromPath(r.URL.Path, "/standings/")
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown league", h.logger)
		return
	}
	payload, ok := h.source.Payload(league)
	if !ok || payload.Standings == nil {
		writeError(w, r, http.StatusNotFound, "no standings for league", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, payload.Standings, loggerFromContext(r, h.logger))
}

// viewResponse is the rotation's current page, fully positioned for the
// display layer.
type viewResponse struct {
	League    domain.League         `json:"league"`
	Kind      rotation.PageKind     `json:"kind"`
	Page      int                   `json:"page"`
	Layout    layout.Layout         `json:"layout"`
	Slots     []layout.Slot         `json:"slots,omitempty"`
	Standings *domain.StandingsPage `json:"standings,omitempty"`
	Updated   string                `json:"updated,omitempty"`
}

// View serves the rotation's current position with its page content.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.view == nil {
		writeError(w, r, http.StatusServiceUnavailable, "rotation not running", h.logger)
		return
	}

	view := h.view()
	l := h.layoutFor(view.League)
	resp := viewResponse{
		League: view.League,
		Kind:   view.Kind,
		Page:   view.Page,
		Layout: l,
	}

	payload, ok := h.source.Payload(view.League)
	if ok {
		resp.Updated = payload.Updated.Format("2006-01-02T15:04:05Z07:00")
		switch view.Kind {
		case rotation.KindScoreboard:
			page := layout.Paginate(payload.Games, l, view.Page)
			resp.Slots = layout.Slots(page, l, h.mirrored)
		case rotation.KindStandings:
			if payload.Standings != nil && view.Page < len(payload.Standings.Pages) {
				resp.Standings = &payload.Standings.Pages[view.Page]
			}
		}
	}
	writeJSON(w, http.StatusOK, resp, loggerFromContext(r, h.logger))
}

func leagueFromPath(path, prefix string) (domain.League, bool) {
	raw := strings.TrimPrefix(path, prefix)
	raw = strings.TrimSuffix(raw, "/")
	if raw == "" || strings.Contains(raw, "/") {
		return "", false
	}
	return domain.ParseLeague(raw)
}
