// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/analytics"
	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
	"github.com/H0llyW00dzZ/ssl-checker/src/logger"
)

const (
	// maxBodyBytes caps the size of a check request body.
	maxBodyBytes = 4 << 10
	// shutdownTimeout bounds the graceful shutdown after the context ends.
	shutdownTimeout = 5 * time.Second
	// defaultMaxConcurrentChecks applies when Options leaves the cap unset.
	defaultMaxConcurrentChecks = 64
)

// Checker runs one inspection. [*inspect.Inspector] implements it.
type Checker interface {
	Inspect(ctx context.Context, domain string) (*inspect.Report, error)
}

// Options configures a Server.
type Options struct {
	Address             string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	IdleTimeout         time.Duration
	MaxConcurrentChecks int
	AllowedOrigins      []string
	Logger              logger.Logger
	Analytics           *analytics.Recorder
}

// Server serves the HTTP API.
type Server struct {
	checker   Checker
	opts      Options
	log       logger.Logger
	analytics *analytics.Recorder
	sem       *semaphore.Weighted
	schema    *gojsonschema.Schema
	handler   http.Handler
}

// New creates a Server that answers check requests with checker.
//
// Unset options fall back to the process-wide analytics recorder, a CLI
// logger and a cap of 64 concurrent checks.
func New(checker Checker, opts Options) (*Server, error) {
	if checker == nil {
		return nil, errors.New("httpserver: checker is required")
	}

	schema, err := compileSchema(checkRequestSchema)
	if err != nil {
		return nil, err
	}

	if opts.MaxConcurrentChecks <= 0 {
		opts.MaxConcurrentChecks = defaultMaxConcurrentChecks
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		checker:   checker,
		opts:      opts,
		log:       opts.Logger,
		analytics: opts.Analytics,
		sem:       semaphore.NewWeighted(int64(opts.MaxConcurrentChecks)),
		schema:    schema,
	}
	if s.log == nil {
		s.log = logger.NewCLILogger()
	}
	if s.analytics == nil {
		s.analytics = analytics.Default
	}

	s.handler = s.routes()
	return s, nil
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/check_certificate", s.handleCheckCertificate).Methods(http.MethodPost)
	r.HandleFunc("/analytics", s.handleAnalytics).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

// Handler returns the routed HTTP handler, CORS included.
func (s *Server) Handler() http.Handler { return s.handler }

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		IdleTimeout:  s.opts.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Printf("HTTP API listening on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		s.log.Println("HTTP API stopped")
		return nil
	})

	return g.Wait()
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.opts.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Address, err)
	}
	return s.Serve(ctx, ln)
}
