// Package server exposes the content adapter over an HTTP JSON API with
// Prometheus metrics
package server

import (
	"context"
	"net"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tenebris-tech/x2post/adapter"
)

// Server serves the adaptation API
type Server struct {
	config  Config
	adapter *adapter.Adapter
	metrics *Metrics
	logger  *zap.Logger
	router  *gin.Engine
}

// New creates a server. The adapter reports thread sizes to the server metrics.
func New(cfg Config, logger *zap.Logger, adapterOpts ...adapter.Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := NewMetrics(cfg.ServiceName, cfg.Version)
	opts := append([]adapter.Option{adapter.WithLogger(logger)}, adapterOpts...)
	opts = append(opts, adapter.WithOnThreadPacked(metrics.ObserveThread))

	s := &Server{
		config:  cfg,
		adapter: adapter.New(opts...),
		metrics: metrics,
		logger:  logger,
	}
	s.router = s.setupRouter()
	return s
}

// setupRouter creates a gin router with common middleware
func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()

	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(s.logger))
	router.Use(RecoveryMiddleware(s.logger))
	router.Use(s.metrics.Middleware())

	router.GET("/health", s.handleHealth)
	router.GET("/metrics", s.metrics.Handler())

	v1 := router.Group("/v1", BodyLimitMiddleware(s.config.MaxBodyBytes))
	v1.POST("/adapt", s.handleAdapt)
	v1.POST("/adapt/topic", s.handleTopic)

	return router
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the server metrics
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start listens on the configured address and serves until ctx is done
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", s.config.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server",
			zap.String("addr", ln.Addr().String()),
			zap.String("service", s.config.ServiceName),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "serving HTTP")
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...", zap.String("service", s.config.ServiceName))

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().ShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	if err := <-errCh; err != nil {
		return errors.Wrap(err, "serving HTTP")
	}

	s.logger.Info("Server stopped", zap.String("service", s.config.ServiceName))
	return nil
}
