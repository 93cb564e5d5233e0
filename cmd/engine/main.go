package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/logging"
	"github.com/westbet/westbetpro/internal/pkg/storage"
	"github.com/westbet/westbetpro/internal/rules"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	fmt.Println("Starting Prediction Engine...")

	var configPath string
	var healthAddr string
	var once bool

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&healthAddr, "health-addr", ":8080", "Health server listen address (e.g. :8080)")
	flag.BoolVar(&once, "once", false, "Run a single evaluation pass and exit")
	flag.Parse()

	fmt.Printf("Loading config from: %s\n", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	_, err = logging.SetupLogger(&cfg.Logging, "engine")
	if err != nil {
		log.Printf("Warning: failed to setup logging: %v, continuing with default logger", err)
	} else {
		slog.Info("Logging initialized", "service", "engine")
	}

	if envDSN := os.Getenv("POSTGRES_DSN"); envDSN != "" {
		cfg.Postgres.DSN = envDSN
		log.Println("engine: using PostgreSQL DSN from POSTGRES_DSN environment variable")
	}
	if cfg.Postgres.DSN == "" {
		log.Fatalf("engine: postgres DSN is required. Set it in config or POSTGRES_DSN env var")
	}
	if envAddr := os.Getenv("REDIS_ADDR"); envAddr != "" {
		cfg.Redis.Addr = envAddr
		log.Println("engine: using Redis address from REDIS_ADDR environment variable")
	}

	store, err := storage.NewPostgresStorage(&cfg.Postgres)
	if err != nil {
		log.Fatalf("engine: failed to initialize PostgreSQL storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("engine: error closing PostgreSQL storage: %v", err)
		}
	}()

	redisClient, err := storage.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("engine: failed to connect to Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("engine: error closing Redis client: %v", err)
		}
	}()

	catalog, err := rules.DefaultCatalog()
	if err != nil {
		log.Fatalf("engine: failed to load rule catalog: %v", err)
	}
	slog.Info("Rule catalog loaded", "rules", catalog.Len())

	processor := rules.NewProcessor(catalog, cfg.Engine.MinConfidence, cfg.Engine.Tolerance, cfg.Engine.Workers)
	engine := rules.NewEngine(store, store, store, redisClient, processor, cfg.Engine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping engine...")
		cancel()
	}()

	if once {
		run, err := engine.RunOnce(ctx)
		if err != nil {
			log.Fatalf("engine: run failed: %v", err)
		}
		fmt.Printf("Run %s: %d matches, %d opportunities in %dms\n",
			run.ID, run.MatchesProcessed, run.OpportunitiesFound, run.ExecutionTimeMS)
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong\n"))
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	srv := &http.Server{
		Addr:              healthAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		slog.Info("HTTP server listening", "addr", healthAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("Starting Prediction Engine...",
		"min_confidence", cfg.Engine.MinConfidence,
		"days_ahead", cfg.Engine.DaysAhead,
		"async", cfg.Engine.AsyncEnabled)
	if err := engine.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Engine failed: %v", err)
	}

	slog.Info("Prediction Engine stopped")
}
