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
	"github.com/westbet/westbetpro/internal/results"
	"github.com/westbet/westbetpro/internal/scorefeed"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	fmt.Println("Starting Result Tracker...")

	var configPath string
	var healthAddr string
	var once bool

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&healthAddr, "health-addr", ":8081", "Health server listen address (e.g. :8081)")
	flag.BoolVar(&once, "once", false, "Run a single tracking pass and exit")
	flag.Parse()

	fmt.Printf("Loading config from: %s\n", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	_, err = logging.SetupLogger(&cfg.Logging, "tracker")
	if err != nil {
		log.Printf("Warning: failed to setup logging: %v, continuing with default logger", err)
	} else {
		slog.Info("Logging initialized", "service", "tracker")
	}

	if envDSN := os.Getenv("POSTGRES_DSN"); envDSN != "" {
		cfg.Postgres.DSN = envDSN
		log.Println("tracker: using PostgreSQL DSN from POSTGRES_DSN environment variable")
	}
	if cfg.Postgres.DSN == "" {
		log.Fatalf("tracker: postgres DSN is required. Set it in config or POSTGRES_DSN env var")
	}
	if envAddr := os.Getenv("REDIS_ADDR"); envAddr != "" {
		cfg.Redis.Addr = envAddr
	}
	if apiKey := os.Getenv("SCOREFEED_API_KEY"); apiKey != "" {
		cfg.ScoreFeed.APIKey = apiKey
		log.Println("tracker: using score feed API key from environment")
	}
	if cfg.ScoreFeed.APIKey == "" {
		log.Fatalf("tracker: score feed API key is required. Set it in config or SCOREFEED_API_KEY env var")
	}

	store, err := storage.NewPostgresStorage(&cfg.Postgres)
	if err != nil {
		log.Fatalf("tracker: failed to initialize PostgreSQL storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("tracker: error closing PostgreSQL storage: %v", err)
		}
	}()

	// The day-fixture cache keeps repeated tracking passes from
	// re-fetching the same feed pages. The tracker still works without
	// Redis, just slower.
	var cache scorefeed.Cache
	redisClient, err := storage.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Printf("tracker: redis unavailable, running without feed cache: %v", err)
	} else {
		cache = redisClient
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("tracker: error closing Redis client: %v", err)
			}
		}()
	}

	feed := scorefeed.NewHTTPClient(&cfg.ScoreFeed, cache)
	tracker := results.NewTracker(store, feed, cfg.Tracker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping tracker...")
		cancel()
	}()

	if once {
		summary, err := tracker.RunOnce(ctx)
		if err != nil {
			log.Fatalf("tracker: pass failed: %v", err)
		}
		fmt.Printf("Checked %d predictions: %d won, %d lost, %d skipped\n",
			summary.Checked, summary.Won, summary.Lost, summary.SkippedTotal())
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

	slog.Info("Starting Result Tracker...", "interval", cfg.Tracker.Interval)
	if err := tracker.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Tracker failed: %v", err)
	}

	slog.Info("Result Tracker stopped")
}
