// Package server exposes the summary pipeline over HTTP. Uploads carry the
// external decoder's output; binary replay files are not decoded here.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/adamchlebek/RL-Dash/internal/aggregator"
	"github.com/adamchlebek/RL-Dash/internal/cars"
	"github.com/adamchlebek/RL-Dash/internal/config"
	"github.com/adamchlebek/RL-Dash/internal/replay"
)

type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	router chi.Router
}

// New wires the routes.
func New(cfg *config.Config, log *zap.Logger) *Server {
	s := &Server{cfg: cfg, log: log, router: chi.NewRouter()}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/cars", s.handleCars)
	s.router.Post("/parse", s.handleParse)
	s.router.Post("/parse/basic", s.handleBasic)
	s.router.Post("/parse/lookup", s.handleLookup)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// upload limits the body, decodes the replay and writes the error response
// itself when that fails.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) (*replay.Replay, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	rep, size, err := readUpload(r)
	if err != nil {
		status := uploadStatus(err)
		msg := err.Error()
		if status == http.StatusBadRequest {
			msg = msgNoFile
		}
		s.log.Warn("upload rejected",
			zap.Int("status", status),
			zap.String("size", humanize.Bytes(uint64(size))),
			zap.Error(err),
		)
		writeError(w, status, msg)
		return nil, false
	}
	s.log.Debug("upload decoded",
		zap.String("size", humanize.Bytes(uint64(size))),
		zap.Int("properties", len(rep.Properties)),
		zap.Int("frames", len(rep.Frames())),
	)
	return rep, true
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.upload(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregator.Build(rep, aggregator.WithLogger(s.log)))
}

func (s *Server) handleBasic(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.upload(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregator.BuildBasic(rep))
}

type lookupResponse struct {
	Path  string `json:"path"`
	Value string `json:"value"`
	Found bool   `json:"found"`
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing path query parameter")
		return
	}
	rep, ok := s.upload(w, r)
	if !ok {
		return
	}
	value, found := rep.Lookup(path)
	writeJSON(w, http.StatusOK, lookupResponse{Path: path, Value: value, Found: found})
}

func (s *Server) handleCars(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, cars.All())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
