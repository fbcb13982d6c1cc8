// Package rotation advances the display through pages and leagues on a
// timer.
package rotation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/layout"
	"github.com/mirrormods/scores-data-service/internal/logging"
	"github.com/mirrormods/scores-data-service/internal/metrics"
)

const defaultInterval = 15 * time.Second

// PageKind distinguishes scoreboard pages from standings pages within a
// league's rotation.
type PageKind string

const (
	KindScoreboard PageKind = "scoreboard"
	KindStandings  PageKind = "standings"
)

// View is the rotation's current position.
type View struct {
	League domain.League `json:"league"`
	Kind   PageKind      `json:"kind"`
	Page   int           `json:"page"`
}

// Source exposes the cached payloads the rotation derives page counts from.
type Source interface {
	Payload(domain.League) (domain.Payload, bool)
}

// Scheduler walks every scoreboard page of the active league, then its
// standings pages when enabled, then wraps to the next league. A single
// configured league never advances the league index.
type Scheduler struct {
	leagues       []domain.League
	source        Source
	layoutFor     func(domain.League) layout.Layout
	showStandings func(domain.League) bool
	logger        *slog.Logger
	metrics       *metrics.Recorder
	interval      time.Duration
	clock         clockwork.Clock

	mu        sync.Mutex
	leagueIdx int
	page      int
}

type Config struct {
	Leagues       []domain.League
	Source        Source
	LayoutFor     func(domain.League) layout.Layout
	ShowStandings func(domain.League) bool
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
	Interval      time.Duration
	Clock         clockwork.Clock
}

func New(cfg Config) *Scheduler {
	leagues := cfg.Leagues
	if len(leagues) == 0 {
		leagues = []domain.League{domain.DefaultLeague}
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	layoutFor := cfg.LayoutFor
	if layoutFor == nil {
		layoutFor = func(domain.League) layout.Layout {
			return layout.Layout{Columns: 2, Rows: 2, GamesPerPage: 4, Scale: 1}
		}
	}
	showStandings := cfg.ShowStandings
	if showStandings == nil {
		showStandings = func(domain.League) bool { return false }
	}
	return &Scheduler{
		leagues:       leagues,
		source:        cfg.Source,
		layoutFor:     layoutFor,
		showStandings: showStandings,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		interval:      interval,
		clock:         clock,
	}
}

// Run advances the rotation on each tick until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := s.clock.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				s.Advance()
			}
		}
	}()
}

// Advance moves to the next page, wrapping into the next league after the
// current league's last page.
func (s *Scheduler) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	league := s.leagues[s.leagueIdx]
	s.page++
	if s.page < s.totalPages(league) {
		s.logAdvance(league)
		return
	}

	s.page = 0
	if len(s.leagues) > 1 {
		s.leagueIdx = (s.leagueIdx + 1) % len(s.leagues)
	}
	s.logAdvance(s.leagues[s.leagueIdx])
}

func (s *Scheduler) logAdvance(league domain.League) {
	s.metrics.RecordRotationAdvance(string(league))
	logging.Info(s.logger, "rotation advanced",
		slog.String(logging.FieldLeague, string(league)),
		slog.Int(logging.FieldPage, s.page),
	)
}

// OnData re-derives the active league's page count after a cache update,
// snapping back to the first page when the position fell off the end.
func (s *Scheduler) OnData(league domain.League) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.leagues[s.leagueIdx] != league {
		return
	}
	if s.page >= s.totalPages(league) {
		s.page = 0
	}
}

// View reports the current rotation position.
func (s *Scheduler) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	league := s.leagues[s.leagueIdx]
	sb := s.scoreboardPages(league)
	if s.page < sb {
		return View{League: league, Kind: KindScoreboard, Page: s.page}
	}
	return View{League: league, Kind: KindStandings, Page: s.page - sb}
}

func (s *Scheduler) totalPages(league domain.League) int {
	return s.scoreboardPages(league) + s.standingsPages(league)
}

func (s *Scheduler) scoreboardPages(league domain.League) int {
	games := 0
	if s.source != nil {
		if p, ok := s.source.Payload(league); ok {
			games = len(p.Games)
		}
	}
	return layout.PageCount(games, s.layoutFor(league))
}

func (s *Scheduler) standingsPages(league domain.League) int {
	if s.source == nil || !s.showStandings(league) {
		return 0
	}
	p, ok := s.source.Payload(league)
	if !ok || p.Standings == nil {
		return 0
	}
	return len(p.Standings.Pages)
}
