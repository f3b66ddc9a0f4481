package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// ReadHeaderTimeout is the default timeout for reading request headers.
const ReadHeaderTimeout = 10 * time.Second

// Server manages the lifecycle of the HTTP server in front of a document.
type Server struct {
	name       string
	config     Config
	server     *http.Server
	listener   net.Listener
	onServeErr func()
}

// NewServer creates a Server with the given name, handler and config.
// It applies config defaults and validates the result.
// onServeErr, if non-nil, is called when the background Serve goroutine fails.
func NewServer(name string, handler http.Handler, cfg Config, onServeErr func()) (*Server, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if handler == nil {
		return nil, ErrNilHandler
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &Server{
		name:   name,
		config: cfg,
		server: &http.Server{ //nolint:exhaustruct // only relevant fields needed
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		listener:   nil,
		onServeErr: onServeErr,
	}, nil
}

// Start listens on TCP and serves requests in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	listenCfg := net.ListenConfig{} //nolint:exhaustruct // zero-value defaults are fine

	listener, err := listenCfg.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		slog.Error("failed to listen", "document", s.name, "address", s.server.Addr, "error", err)

		return fmt.Errorf("%w: %w", ErrListenFailed, err)
	}

	s.listener = listener

	slog.Info("serving document",
		"document", s.name,
		"address", listener.Addr().String(),
		"max_body_bytes", s.config.MaxBodyBytes)

	go func() {
		serveErr := s.server.Serve(listener)
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("document service error", "document", s.name, "error", serveErr)

			if s.onServeErr != nil {
				s.onServeErr()
			}
		}
	}()

	return nil
}

// Addr returns the address the server listens on, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	slog.Info("stopping document service", "document", s.name)

	err := s.server.Shutdown(ctx)
	if err != nil {
		slog.Error("shutdown failed", "document", s.name, "error", err)

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	return nil
}
