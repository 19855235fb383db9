package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/logger"
)

// shutdownTimeout bounds graceful shutdown once the run context is cancelled.
const shutdownTimeout = 5 * time.Second

// Server serves a single tool endpoint.
type Server struct {
	mu       sync.Mutex
	name     domain.ServiceName
	addr     string
	handler  http.Handler
	server   *http.Server
	listener net.Listener
}

func newServer(name domain.ServiceName, addr, path string, h http.HandlerFunc) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc(path, postOnly(h))
	mux.HandleFunc("/", notFound)

	handler := withRequestID(withRecover(mux))

	return &Server{
		name:    name,
		addr:    addr,
		handler: handler,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Name returns the service this server exposes.
func (s *Server) Name() domain.ServiceName {
	return s.name
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Listen binds the listener. It is called by Run and may be called earlier
// to learn the bound address when the configured port is 0.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return nil
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = listener
	return nil
}

// Addr returns the bound address once listening, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	logger.Info("%s server listening on %s", s.name, s.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		logger.Info("%s server shutting down", s.name)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s server: %w", s.name, err)
	}
}
