// Package poller drives the per-league fetch loops.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/logging"
	"github.com/mirrormods/scores-data-service/internal/metrics"
	"github.com/mirrormods/scores-data-service/internal/providers"
	"github.com/mirrormods/scores-data-service/internal/timeutil"
)

const defaultInterval = 60 * time.Second

// cutoffs holds each league's morning rollback time: before this local time
// the poller still queries yesterday so late finishes stay on the board.
// The NFL has no cutoff; its provider windows over the whole game week.
var cutoffs = map[domain.League]timeutil.Cutoff{
	domain.LeagueMLB: {Hour: 8, Minute: 45},
	domain.LeagueNHL: {Hour: 9},
	domain.LeagueNBA: {Hour: 9, Minute: 30},
}

// Store receives each successful fetch's payload.
type Store interface {
	SetPayload(domain.Payload)
}

// SnapshotWriter persists payloads to disk.
type SnapshotWriter interface {
	WritePayload(domain.Payload) error
}

// StandingsFetcher supplies the optional standings extra when the provider's
// result does not already carry one.
type StandingsFetcher func(ctx context.Context) (*domain.Standings, error)

// Poller fetches one league on an interval and publishes results to the
// store and snapshot writer. Fetch failures keep the previous cache entry;
// only a successful (possibly empty) result replaces it.
type Poller struct {
	league    domain.League
	provider  providers.GameProvider
	store     Store
	writer    SnapshotWriter
	standings StandingsFetcher
	onUpdate  func(domain.League)
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	location  *time.Location
	clock     clockwork.Clock

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poll loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

type Config struct {
	League    domain.League
	Provider  providers.GameProvider
	Store     Store
	Writer    SnapshotWriter
	Standings StandingsFetcher
	OnUpdate  func(domain.League)
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Interval  time.Duration
	Location  *time.Location
	Clock     clockwork.Clock
}

// New constructs a Poller with sane defaults.
func New(cfg Config) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Poller{
		league:    cfg.League,
		provider:  cfg.Provider,
		store:     cfg.Store,
		writer:    cfg.Writer,
		standings: cfg.Standings,
		onUpdate:  cfg.OnUpdate,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		interval:  interval,
		location:  cfg.Location,
		clock:     clock,
		done:      make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	ticker := p.clock.NewTicker(p.interval)

	go func() {
		defer ticker.Stop()
		logging.Info(p.logger, "poller started",
			slog.String(logging.FieldLeague, string(p.league)),
			slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
		)
		// Initial fetch to warm data on boot.
		p.FetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				logging.Info(p.logger, "poller stopped", slog.String(logging.FieldLeague, string(p.league)))
				return
			case <-p.done:
				logging.Info(p.logger, "poller stopped", slog.String(logging.FieldLeague, string(p.league)))
				return
			case <-ticker.Chan():
				p.FetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// FetchOnce runs a single fetch cycle; exported so tests and the boot path
// can drive the loop directly.
func (p *Poller) FetchOnce(ctx context.Context) {
	start := p.clock.Now()
	p.recordAttempt(start)

	date := p.effectiveDate(start)
	result, err := p.provider.FetchGames(ctx, date)
	p.metrics.RecordPollCycle(string(p.league), p.clock.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "poller fetch failed", err,
			slog.String(logging.FieldLeague, string(p.league)),
			slog.String(logging.FieldDate, date),
		)
		p.recordFailure(err, start)
		return
	}

	if result.Standings == nil && p.standings != nil {
		standings, sErr := p.standings(ctx)
		if sErr != nil {
			logging.Error(p.logger, "standings fetch failed", sErr,
				slog.String(logging.FieldLeague, string(p.league)))
		} else {
			result.Standings = standings
		}
	}

	payload := domain.Payload{
		League:     p.league,
		Games:      result.Games,
		TeamsOnBye: result.TeamsOnBye,
		Standings:  result.Standings,
		Updated:    p.clock.Now().UTC(),
	}
	if p.store != nil {
		p.store.SetPayload(payload)
	}
	if p.writer != nil {
		if writeErr := p.writer.WritePayload(payload); writeErr != nil {
			logging.Error(p.logger, "poller snapshot write failed", writeErr,
				slog.String(logging.FieldLeague, string(p.league)))
		}
	}
	if p.onUpdate != nil {
		p.onUpdate(p.league)
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed games",
		slog.String(logging.FieldLeague, string(p.league)),
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(result.Games)),
		slog.Int64(logging.FieldDurationMS, p.clock.Since(start).Milliseconds()),
	)
}

func (p *Poller) effectiveDate(now time.Time) string {
	cutoff, ok := cutoffs[p.league]
	if !ok {
		loc := p.location
		if loc == nil {
			loc = time.UTC
		}
		return timeutil.FormatDate(now.In(loc))
	}
	return timeutil.EffectiveDate(now, p.location, cutoff)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// League names the league this poller serves.
func (p *Poller) League() domain.League {
	return p.league
}
