// Package http provides the platform HTTP server and router seam
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"homefeed/internal/platform/logger"
)

// ServerOptions collects tunables for the platform HTTP server
type ServerOptions struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

func (o *ServerOptions) defaults() {
	if o.ReadHeaderTimeout == 0 {
		o.ReadHeaderTimeout = 5 * time.Second
	}
	if o.ReadTimeout == 0 {
		o.ReadTimeout = 15 * time.Second
	}
	if o.WriteTimeout == 0 {
		o.WriteTimeout = 30 * time.Second
	}
	if o.IdleTimeout == 0 {
		o.IdleTimeout = 60 * time.Second
	}
	if o.ShutdownTimeout == 0 {
		o.ShutdownTimeout = 10 * time.Second
	}
}

// Server wraps a chi mux behind the Router seam plus a stdlib http.Server
type Server struct {
	mux  *chi.Mux
	srv  *http.Server
	opts ServerOptions
	log  logger.Logger
}

// NewServer builds a Server listening on opts.Addr
func NewServer(opts ServerOptions) *Server {
	opts.defaults()
	mux := chi.NewRouter()
	return &Server{
		mux:  mux,
		opts: opts,
		log:  *logger.Named("http"),
		srv: &http.Server{
			Addr:              opts.Addr,
			Handler:           mux,
			ReadHeaderTimeout: opts.ReadHeaderTimeout,
			ReadTimeout:       opts.ReadTimeout,
			WriteTimeout:      opts.WriteTimeout,
			IdleTimeout:       opts.IdleTimeout,
		},
	}
}

// Router returns the mounting surface for modules
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler exposes the underlying mux, mainly for httptest
func (s *Server) Handler() http.Handler { return s.mux }

// Run serves until ctx is cancelled, then drains with the shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.opts.Addr).Msg("http server listening")
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	sctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.log.Info().Msg("http server draining")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	return <-errCh
}
