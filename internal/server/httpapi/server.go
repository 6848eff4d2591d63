package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
)

const shutdownTimeout = 10 * time.Second

// Server owns the HTTP listener and its graceful shutdown.
type Server struct {
	httpServer *http.Server
	limiter    *rateLimiter
	log        logging.Logger
}

// NewServer wires the router and returns a runnable server.
func NewServer(cfg *config.Config, log logging.Logger, users UserService, tasks TaskService) *Server {
	limiter := newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	router := NewRouter(cfg, log, users, tasks, limiter)

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.EndpointAddrHTTP,
			Handler: router,
		},
		limiter: limiter,
		log:     log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests. It
// blocks and returns the first fatal listener error, or nil on a clean
// shutdown.
func (s *Server) Run(ctx context.Context) error {
	stopCleanup := make(chan struct{})
	s.limiter.startCleanup(time.Minute, stopCleanup)
	defer close(stopCleanup)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info(ctx, "shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
