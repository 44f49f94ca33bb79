package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	rosterapp "github.com/preston-bernstein/roster-service/internal/app/roster"
	teamapp "github.com/preston-bernstein/roster-service/internal/app/team"
	visitorsapp "github.com/preston-bernstein/roster-service/internal/app/visitors"
	"github.com/preston-bernstein/roster-service/internal/config"
	httpserver "github.com/preston-bernstein/roster-service/internal/http"
	"github.com/preston-bernstein/roster-service/internal/http/handlers"
	"github.com/preston-bernstein/roster-service/internal/logging"
	"github.com/preston-bernstein/roster-service/internal/metrics"
	"github.com/preston-bernstein/roster-service/internal/rosterfile"
	"github.com/preston-bernstein/roster-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg             config.Config
	logger          *slog.Logger
	metrics         *metrics.Recorder
	store           *store.MemoryStore
	rosterService   *rosterapp.Service
	visitorsService *visitorsapp.Service
	teamService     *teamapp.Service
	httpServer      httpServer
	metricsServer   httpServer
	metricsStop     func(context.Context) error
}

// New constructs a server, loading the roster file once. A failed load is
// logged and leaves the server running with an empty roster.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	memoryStore, rosterSvc, visitorSvc, teamSvc := buildServices(cfg, logger, recorder)
	httpSrv := buildHTTPServer(cfg, rosterSvc, visitorSvc, teamSvc, logger, recorder)

	return &Server{
		cfg:             cfg,
		logger:          logger,
		metrics:         recorder,
		store:           memoryStore,
		rosterService:   rosterSvc,
		visitorsService: visitorSvc,
		teamService:     teamSvc,
		httpServer:      httpSrv,
		metricsServer:   metricsSrv,
		metricsStop:     metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, rosterSvc *rosterapp.Service, httpSrv httpServer) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		rosterService: rosterSvc,
		httpServer:    httpSrv,
	}
}

func buildServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, *rosterapp.Service, *visitorsapp.Service, *teamapp.Service) {
	memoryStore := store.NewMemoryStore()

	rosterSvc := rosterapp.NewService(memoryStore, logger, recorder)
	// Load failures are already logged and reflected in /ready.
	_ = rosterSvc.Load(rosterfile.NewFSStore(cfg.RosterFile))

	visitorSvc := visitorsapp.NewService(rosterfile.NewVisitorLog(cfg.VisitorLogFile), logger, recorder)

	teamSvc, err := teamapp.NewService()
	if err != nil {
		logging.Warn(logger, "team metadata unavailable", "error", err)
		teamSvc = nil
	}

	return memoryStore, rosterSvc, visitorSvc, teamSvc
}

func buildHTTPServer(cfg config.Config, rosterSvc *rosterapp.Service, visitorSvc *visitorsapp.Service, teamSvc *teamapp.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(rosterSvc, visitorSvc, teamSvc, logger)
	router := httpserver.NewRouter(handler, httpserver.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
		Metrics:     recorder,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
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

// RosterStatus reports the outcome of the startup roster load.
func (s *Server) RosterStatus() rosterapp.Status {
	if s.rosterService == nil {
		return rosterapp.Status{}
	}
	return s.rosterService.Status()
}
