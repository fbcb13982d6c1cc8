package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type leagueStats struct {
	pollCycles       int
	pollErrors       int
	fallbackAdvances int
	rotations        int
	lastPollLatency  time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// poll cycles. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu      sync.Mutex
	sources map[string]*sourceStats
	leagues map[string]*leagueStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources: make(map[string]*sourceStats),
		leagues: make(map[string]*leagueStats),
		otel:    otel,
	}
}

// RecordSourceAttempt counts an upstream call and stores its latency.
func (r *Recorder) RecordSourceAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureSource(source)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceAttempt(source, duration, err)
	}
}

// RecordFallbackAdvance counts the fallback chain moving past a source.
func (r *Recorder) RecordFallbackAdvance(league, source string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureLeague(league).fallbackAdvances++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFallbackAdvance(league, source)
	}
}

// RecordPollCycle counts one full fetch cycle for a league.
func (r *Recorder) RecordPollCycle(league string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureLeague(league)
	stats.pollCycles++
	stats.lastPollLatency = duration
	if err != nil {
		stats.pollErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPollCycle(league, duration, err)
	}
}

// RecordRotationAdvance counts a rotation tick landing on a league.
func (r *Recorder) RecordRotationAdvance(league string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureLeague(league).rotations++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRotationAdvance(league)
	}
}

// RecordHTTPRequest counts a served request.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// SourceSnapshot is a copy of the stats for one upstream source.
type SourceSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// LeagueSnapshot is a copy of the per-league counters.
type LeagueSnapshot struct {
	PollCycles       int
	PollErrors       int
	FallbackAdvances int
	Rotations        int
	LastPollLatency  time.Duration
}

// SourceSnapshot returns a copy of the current stats for the source.
func (r *Recorder) SourceSnapshot(source string) SourceSnapshot {
	if r == nil {
		return SourceSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.ensureSource(source)
	return SourceSnapshot{Calls: s.calls, Errors: s.errors, LastCallLatency: s.lastCallLatency}
}

// LeagueSnapshot returns a copy of the current stats for the league.
func (r *Recorder) LeagueSnapshot(league string) LeagueSnapshot {
	if r == nil {
		return LeagueSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.ensureLeague(league)
	return LeagueSnapshot{
		PollCycles:       l.pollCycles,
		PollErrors:       l.pollErrors,
		FallbackAdvances: l.fallbackAdvances,
		Rotations:        l.rotations,
		LastPollLatency:  l.lastPollLatency,
	}
}

func (r *Recorder) ensureSource(source string) *sourceStats {
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	return stats
}

func (r *Recorder) ensureLeague(league string) *leagueStats {
	stats, ok := r.leagues[league]
	if !ok {
		stats = &leagueStats{}
		r.leagues[league] = stats
	}
	return stats
}
