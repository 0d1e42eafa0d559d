package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"reajuste/internal/domain/adjustment"
	"reajuste/internal/platform/config"
	"reajuste/internal/platform/logging"
	"reajuste/internal/platform/metrics"
	"reajuste/internal/transport/http/api"
	adjustmenthandler "reajuste/internal/transport/http/handlers/adjustment"
	"reajuste/internal/transport/http/middleware"
	"reajuste/internal/transport/http/render"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.Environment)
	slog.SetDefault(logger)

	router, err := NewRouter(cfg, logger, metrics.New())
	if err != nil {
		log.Fatalf("router setup failed: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr, "referenceYear", cfg.DefaultReferenceYear)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "err", err)
		}
	}
}

// NewRouter wires middleware, the calculator routes and static assets.
func NewRouter(cfg config.Config, logger *slog.Logger, collector *metrics.Collector) (http.Handler, error) {
	pages, err := render.NewPages()
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	calc := adjustment.NewCalculator(cfg.DefaultReferenceYear)
	adjustmenthandler.NewHandler(calc, pages, collector).RegisterRoutes(router)

	router.NotFound(staticHandler{staticPath: cfg.StaticDir}.ServeHTTP)
	return router, nil
}

type staticHandler struct {
	staticPath string
}

func (h staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	name := filepath.Join(h.staticPath, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, name)
}
