package nhl

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"

	"github.com/mirrormods/scores-data-service/internal/logging"
)

const (
	reachabilityTTL        = 5 * time.Minute
	reachabilityRetryDelay = 200 * time.Millisecond
	reachabilityMaxElapsed = 4 * time.Second
)

// LookupFunc resolves a hostname; swapped out in tests.
type LookupFunc func(ctx context.Context, host string) ([]string, error)

// ReachabilityProbe answers "does this hostname still resolve" with a short
// TTL cache, so a dead upstream costs one DNS burst every few minutes
// instead of an HTTP timeout every poll.
type ReachabilityProbe struct {
	host   string
	lookup LookupFunc
	clock  clockwork.Clock
	logger *slog.Logger
	ttl    time.Duration

	retryDelay time.Duration
	maxElapsed time.Duration

	mu      sync.Mutex
	checked time.Time
	ok      bool
}

type ReachabilityConfig struct {
	Host   string
	Lookup LookupFunc
	Clock  clockwork.Clock
	Logger *slog.Logger
	TTL    time.Duration
}

func NewReachabilityProbe(cfg ReachabilityConfig) *ReachabilityProbe {
	lookup := cfg.Lookup
	if lookup == nil {
		lookup = net.DefaultResolver.LookupHost
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = reachabilityTTL
	}
	return &ReachabilityProbe{
		host:       cfg.Host,
		lookup:     lookup,
		clock:      clock,
		logger:     cfg.Logger,
		ttl:        ttl,
		retryDelay: reachabilityRetryDelay,
		maxElapsed: reachabilityMaxElapsed,
	}
}

// Reachable reports whether the host resolves, consulting the cache first.
func (p *ReachabilityProbe) Reachable(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	if !p.checked.IsZero() && now.Sub(p.checked) < p.ttl {
		return p.ok
	}

	p.ok = p.resolveWithRetry(ctx)
	p.checked = now
	if !p.ok {
		logging.Warn(p.logger, "host does not resolve", slog.String("host", p.host))
	}
	return p.ok
}

func (p *ReachabilityProbe) resolveWithRetry(ctx context.Context) bool {
	policy := backoff.NewConstantBackOff(p.retryDelay)
	attempt := func() error {
		addrs, err := p.lookup(ctx, p.host)
		if err != nil {
			return err
		}
		if len(addrs) == 0 {
			return &net.DNSError{Err: "no addresses", Name: p.host, IsNotFound: true}
		}
		return nil
	}

	deadline, cancel := context.WithTimeout(ctx, p.maxElapsed)
	defer cancel()
	err := backoff.Retry(attempt, backoff.WithContext(policy, deadline))
	return err == nil
}
