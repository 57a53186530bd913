package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"kycagent/internal/audit"
	"kycagent/internal/checklist"
	"kycagent/internal/document"
	"kycagent/internal/document/extract"
	"kycagent/internal/kyc/handler"
	kycmetrics "kycagent/internal/kyc/metrics"
	"kycagent/internal/kyc/service"
	"kycagent/internal/notify"
	"kycagent/internal/platform/config"
	"kycagent/internal/platform/httpserver"
	"kycagent/internal/platform/logger"
	"kycagent/internal/platform/metrics"
	"kycagent/internal/platform/redis"
	"kycagent/pkg/platform/httputil"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	files, err := document.NewFileStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis.URL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("redis search cache enabled")
	}

	recognizer, verifier := buildAI(cfg.AI, log)
	searcher := buildSearcher(cfg.Search, redisClient, log)

	auditPublisher := audit.NewPublisher(audit.NewBoundedStore(audit.DefaultCapacity),
		audit.WithAsyncBuffer(256),
		audit.WithLogger(log),
	)
	defer auditPublisher.Close()

	queue := notify.NewQueue(cfg.NotifyQueue)
	worker := notify.NewWorker(notify.NewLogSender(log), queue, log)

	svc := service.New(
		checklist.NewInMemoryStore(),
		document.NewInMemoryStore(),
		files,
		extract.New(log),
		recognizer,
		verifier,
		searcher,
		service.WithLogger(log),
		service.WithMetrics(kycmetrics.New(reg)),
		service.WithAuditPublisher(auditPublisher),
		service.WithNotifications(queue),
	)

	router := chi.NewRouter()
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				status["redis"] = "unavailable"
			}
		}
		httputil.WriteJSON(w, http.StatusOK, status)
	})
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	handler.New(svc, log, metrics.New(reg),
		handler.WithAdminToken(cfg.AdminToken),
		handler.WithMaxUploadBytes(cfg.MaxUploadBytes),
	).Register(router)

	srv := httpserver.New(cfg.Addr, router, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ignoreCanceled(worker.Run(gctx))
	})
	g.Go(func() error {
		log.Info("starting kyc service",
			"addr", cfg.Addr,
			"ai_provider", cfg.AI.Provider,
			"search_provider", cfg.Search.Provider,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
