package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"wellness-service/internal/config"
	"wellness-service/internal/logger"
)

// Server is the HTTP gateway server
type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
	stop       chan struct{}
}

// NewServer creates the HTTP server for handler
func NewServer(handler http.Handler, limiter *RateLimiter, cfg *config.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
		stop:    make(chan struct{}),
	}
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	if s.limiter != nil {
		go s.cleanupVisitors()
	}

	logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	close(s.stop)
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.limiter.Cleanup()
		case <-s.stop:
			return
		}
	}
}
