// Package server provides the HTTP API of the braille service.
//
// All API routes live below a configurable prefix (default /api/v1):
//
//	POST /translation/to-braille   text  → cells
//	POST /translation/to-text      cells → text
//	POST /generation/image         text  → PNG
//	POST /generation/pdf           text  → PDF
//	GET  /generation/formats
//
// Errors are reported as JSON objects {error, code, status_code}.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/internal/config"
	"github.com/npillmayer/braille/render"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Server serves the braille API. It is safe for concurrent use; the
// transcoder is shared by all requests.
type Server struct {
	Version string // reported by the service info endpoint

	cfg     *config.Config
	tc      *braille.Transcoder
	log     *zap.SugaredLogger
	render  render.Options
	limiter *rate.Limiter
	started time.Time
	handler http.Handler
}

// New creates a server. A nil transcoder selects the standard table, a nil
// logger disables logging.
func New(cfg *config.Config, tc *braille.Transcoder, log *zap.SugaredLogger) *Server {
	if tc == nil {
		tc = braille.Default()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Server{
		Version: "dev",
		cfg:     cfg,
		tc:      tc,
		log:     log,
		render:  RenderOptions(cfg.Render),
		started: time.Now(),
	}
	if cfg.Limits.RequestsPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.Limits.RequestsPerSecond), cfg.Limits.Burst)
	}
	s.handler = s.chain(s.routes())
	return s
}

// RenderOptions converts the render configuration to renderer options.
// PDF geometry keeps its defaults.
func RenderOptions(rc config.RenderConfig) render.Options {
	opts := render.DefaultOptions()
	opts.CellWidth = rc.CellWidth
	opts.CellHeight = rc.CellHeight
	opts.DotRadius = rc.DotRadius
	opts.Margin = rc.Margin
	opts.Spacing = rc.Spacing
	opts.CellsPerRow = rc.CellsPerRow
	return opts
}

// Handler returns the root handler including all middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() *http.ServeMux {
	p := s.cfg.Server.APIPrefix
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+p+"/translation/to-braille", s.handleToBraille)
	mux.HandleFunc("POST "+p+"/translation/to-text", s.handleToText)
	mux.HandleFunc("POST "+p+"/generation/image", s.handleImage)
	mux.HandleFunc("POST "+p+"/generation/pdf", s.handlePDF)
	mux.HandleFunc("GET "+p+"/generation/formats", s.handleFormats)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleInfo)
	return mux
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully,
// waiting for active requests up to the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.log.Infow("braille server listening", "address", ln.Addr().String(),
		"api_prefix", s.cfg.Server.APIPrefix)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	timeout := time.Duration(s.cfg.Server.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.log.Infow("shutting down braille server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
