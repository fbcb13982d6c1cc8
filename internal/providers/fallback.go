package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/logging"
	"github.com/mirrormods/scores-data-service/internal/metrics"
)

// fallbackProvider tries an ordered list of sources and stops at the first
// one that yields games. Sources that fail or come back empty advance the
// chain. Exhausting every source yields an empty result with no error: once
// all generations of the API agree there is nothing to show, "no games" is
// the answer, and the caller clears its cache instead of keeping stale data.
type fallbackProvider struct {
	league  domain.League
	sources []GameProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewFallbackProvider chains the given sources for a league, in order.
func NewFallbackProvider(league domain.League, logger *slog.Logger, recorder *metrics.Recorder, sources ...GameProvider) GameProvider {
	return &fallbackProvider{
		league:  league,
		sources: sources,
		logger:  logger,
		metrics: recorder,
	}
}

func (f *fallbackProvider) Source() string {
	return string(f.league) + "-fallback"
}

func (f *fallbackProvider) FetchGames(ctx context.Context, date string) (Result, error) {
	if len(f.sources) == 0 {
		return Result{}, ErrProviderUnavailable
	}

	for i, source := range f.sources {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if gated, ok := source.(Gated); ok && !gated.Available(ctx) {
			logging.Warn(f.logger, "source unreachable, skipping",
				slog.String(logging.FieldSource, source.Source()),
				slog.String(logging.FieldLeague, string(f.league)),
			)
			f.metrics.RecordFallbackAdvance(string(f.league), source.Source())
			continue
		}

		start := time.Now()
		result, err := source.FetchGames(ctx, date)
		f.metrics.RecordSourceAttempt(source.Source(), time.Since(start), err)

		if err != nil {
			logging.Error(f.logger, "source fetch failed", err,
				slog.String(logging.FieldSource, source.Source()),
				slog.String(logging.FieldLeague, string(f.league)),
				slog.String(logging.FieldDate, date),
			)
		} else if !result.Empty() {
			return result, nil
		}

		if i < len(f.sources)-1 {
			f.metrics.RecordFallbackAdvance(string(f.league), source.Source())
			logging.Info(f.logger, "advancing to fallback source",
				slog.String(logging.FieldSource, source.Source()),
				slog.String(logging.FieldLeague, string(f.league)),
				slog.String(logging.FieldDate, date),
			)
		}
	}

	logging.Info(f.logger, "all sources exhausted, reporting empty schedule",
		slog.String(logging.FieldLeague, string(f.league)),
		slog.String(logging.FieldDate, date),
	)
	return Result{}, nil
}
