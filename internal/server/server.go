package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mirrormods/scores-data-service/internal/config"
	"github.com/mirrormods/scores-data-service/internal/domain"
	httpapi "github.com/mirrormods/scores-data-service/internal/http"
	"github.com/mirrormods/scores-data-service/internal/http/handlers"
	"github.com/mirrormods/scores-data-service/internal/http/middleware"
	"github.com/mirrormods/scores-data-service/internal/layout"
	"github.com/mirrormods/scores-data-service/internal/logging"
	"github.com/mirrormods/scores-data-service/internal/metrics"
	"github.com/mirrormods/scores-data-service/internal/poller"
	"github.com/mirrormods/scores-data-service/internal/rotation"
	"github.com/mirrormods/scores-data-service/internal/snapshots"
	"github.com/mirrormods/scores-data-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	widget        config.Widget
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	pollers       []*poller.Poller
	rotation      *rotation.Scheduler
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	widget, err := config.LoadWidget(cfg.WidgetConfigPath)
	if err != nil {
		return nil, err
	}
	return newServerWithMetrics(cfg, widget, logger, nil), nil
}

func newServerWithMetrics(cfg config.Config, widget config.Widget, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	memoryStore := store.NewMemoryStore()
	writer := snapshots.NewWriter(cfg.SnapshotDir)
	leagues := widget.ConfiguredLeagues()
	location := widget.Location()
	layoutFor := func(l domain.League) layout.Layout { return layout.Compute(l, widget) }

	warmCache(memoryStore, writer, leagues, logger)

	sched := rotation.New(rotation.Config{
		Leagues:       leagues,
		Source:        memoryStore,
		LayoutFor:     layoutFor,
		ShowStandings: widget.ShowStandings,
		Logger:        logger,
		Metrics:       recorder,
		Interval:      widget.RotateInterval(),
	})

	pollers := make([]*poller.Poller, 0, len(leagues))
	statusFor := make(map[domain.League]func() poller.Status, len(leagues))
	for _, league := range leagues {
		set := buildProvider(league, widget, logger, recorder, location)
		p := poller.New(poller.Config{
			League:    league,
			Provider:  set.provider,
			Store:     memoryStore,
			Writer:    writer,
			Standings: set.standings,
			OnUpdate:  sched.OnData,
			Logger:    logger,
			Metrics:   recorder,
			Interval:  widget.UpdateInterval(),
			Location:  location,
		})
		pollers = append(pollers, p)
		statusFor[league] = p.Status
	}

	httpSrv := buildHTTPServer(cfg, widget, memoryStore, sched, layoutFor, statusFor, logger, recorder)

	return &Server{
		cfg:           cfg,
		widget:        widget,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		pollers:       pollers,
		rotation:      sched,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// warmCache restores the last written snapshots so the display has data
// before the first poll completes.
func warmCache(memoryStore *store.MemoryStore, writer *snapshots.Writer, leagues []domain.League, logger *slog.Logger) {
	for _, league := range leagues {
		payload, err := writer.ReadPayload(league)
		if err != nil {
			continue
		}
		memoryStore.SetPayload(payload)
		logging.Info(logger, "cache warmed from snapshot",
			slog.String(logging.FieldLeague, string(league)),
			slog.Int(logging.FieldCount, len(payload.Games)),
		)
	}
}

func buildHTTPServer(cfg config.Config, widget config.Widget, memoryStore *store.MemoryStore, sched *rotation.Scheduler, layoutFor func(domain.League) layout.Layout, statusFor map[domain.League]func() poller.Status, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.New(handlers.Config{
		Source:    memoryStore,
		View:      sched.View,
		LayoutFor: layoutFor,
		Mirrored:  widget.RightAligned,
		StatusFor: statusFor,
		Logger:    logger,
	})
	router := httpapi.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the pollers, rotation, and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	for _, p := range s.pollers {
		p.Start(ctx)
	}
	s.rotation.Run(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	for _, p := range s.pollers {
		if err := p.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop poller", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
