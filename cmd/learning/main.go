package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/westbet/westbetpro/internal/learning"
	"github.com/westbet/westbetpro/internal/notify"
	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/logging"
	"github.com/westbet/westbetpro/internal/pkg/storage"
	"github.com/westbet/westbetpro/internal/rules"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	fmt.Println("Starting Learning Analyzer...")

	var configPath string
	var interval time.Duration

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.DurationVar(&interval, "interval", 0, "Repeat interval (e.g. 24h); 0 runs one pass and exits")
	flag.Parse()

	fmt.Printf("Loading config from: %s\n", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	_, err = logging.SetupLogger(&cfg.Logging, "learning")
	if err != nil {
		log.Printf("Warning: failed to setup logging: %v, continuing with default logger", err)
	} else {
		slog.Info("Logging initialized", "service", "learning")
	}

	if envDSN := os.Getenv("POSTGRES_DSN"); envDSN != "" {
		cfg.Postgres.DSN = envDSN
		log.Println("learning: using PostgreSQL DSN from POSTGRES_DSN environment variable")
	}
	if cfg.Postgres.DSN == "" {
		log.Fatalf("learning: postgres DSN is required. Set it in config or POSTGRES_DSN env var")
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Telegram.BotToken = token
		log.Println("learning: using Telegram bot token from environment")
	}
	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		if chatID, err := strconv.ParseInt(chatIDStr, 10, 64); err == nil {
			cfg.Telegram.ChatID = chatID
		}
	}

	store, err := storage.NewPostgresStorage(&cfg.Postgres)
	if err != nil {
		log.Fatalf("learning: failed to initialize PostgreSQL storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("learning: error closing PostgreSQL storage: %v", err)
		}
	}()

	catalog, err := rules.DefaultCatalog()
	if err != nil {
		log.Fatalf("learning: failed to load rule catalog: %v", err)
	}

	// Advisories always land in Postgres; Telegram is an optional extra
	// sink for the reviewer.
	var sinks []learning.Sink
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		notifier, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("learning: telegram notifier unavailable: %v", err)
		} else {
			sinks = append(sinks, notifier)
			defer notifier.Stop()
		}
	}

	analyzer := learning.NewAnalyzer(store, store, catalog, sinks, cfg.Learning)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping analyzer...")
		cancel()
	}()

	if err := analyzer.RunOnce(ctx); err != nil {
		log.Fatalf("learning: analysis pass failed: %v", err)
	}
	if interval == 0 {
		slog.Info("Learning analysis completed")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Learning Analyzer stopped")
			return
		case <-ticker.C:
			if err := analyzer.RunOnce(ctx); err != nil {
				slog.Error("analysis pass failed", "error", err)
			}
		}
	}
}
