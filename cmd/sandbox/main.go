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

	"github.com/westbet/westbetpro/internal/notify"
	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/logging"
	"github.com/westbet/westbetpro/internal/pkg/storage"
	"github.com/westbet/westbetpro/internal/rules"
	"github.com/westbet/westbetpro/internal/sandbox"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	var configPath string
	var candidateID string
	var testName string
	var baseline string
	var baselineRuleID int
	var notifyReviewer bool

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&candidateID, "candidate", "", "Candidate rule id to test (required)")
	flag.StringVar(&testName, "name", "", "Optional test name")
	flag.StringVar(&baseline, "baseline", "golden_rules", "Baseline mode: no_rules, golden_rules or specific_rule")
	flag.IntVar(&baselineRuleID, "baseline-rule", 0, "Golden rule id for specific_rule baseline")
	flag.BoolVar(&notifyReviewer, "notify", false, "Send the verdict to the Telegram reviewer chat")
	flag.Parse()

	if candidateID == "" {
		flag.Usage()
		log.Fatalf("sandbox: -candidate is required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	_, err = logging.SetupLogger(&cfg.Logging, "sandbox")
	if err != nil {
		log.Printf("Warning: failed to setup logging: %v, continuing with default logger", err)
	}

	if envDSN := os.Getenv("POSTGRES_DSN"); envDSN != "" {
		cfg.Postgres.DSN = envDSN
	}
	if cfg.Postgres.DSN == "" {
		log.Fatalf("sandbox: postgres DSN is required. Set it in config or POSTGRES_DSN env var")
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Telegram.BotToken = token
	}
	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		if chatID, err := strconv.ParseInt(chatIDStr, 10, 64); err == nil {
			cfg.Telegram.ChatID = chatID
		}
	}

	store, err := storage.NewPostgresStorage(&cfg.Postgres)
	if err != nil {
		log.Fatalf("sandbox: failed to initialize PostgreSQL storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("sandbox: error closing PostgreSQL storage: %v", err)
		}
	}()

	catalog, err := rules.DefaultCatalog()
	if err != nil {
		log.Fatalf("sandbox: failed to load rule catalog: %v", err)
	}

	mode := enums.BaselineMode(baseline)
	switch mode {
	case enums.BaselineNone, enums.BaselineGoldenRules:
	case enums.BaselineSpecificRule:
		if baselineRuleID == 0 {
			log.Fatalf("sandbox: -baseline-rule is required with the specific_rule baseline")
		}
	default:
		log.Fatalf("sandbox: unknown baseline mode %q", baseline)
	}

	evaluator := sandbox.NewEvaluator(store, store, catalog, cfg.Sandbox)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, aborting test...")
		cancel()
	}()

	run, err := evaluator.Run(ctx, sandbox.TestRequest{
		CandidateID:    candidateID,
		TestName:       testName,
		BaselineMode:   mode,
		BaselineRuleID: baselineRuleID,
	})
	if err != nil {
		log.Fatalf("sandbox: test failed: %v", err)
	}

	fmt.Printf("Test %s completed\n", run.TestRunID)
	fmt.Printf("  Period: %s to %s (%d matches)\n",
		run.PeriodStart.Format("2006-01-02"), run.PeriodEnd.Format("2006-01-02"), run.TotalMatches)
	fmt.Printf("  Candidate: %d wins / %d losses of %d predictions (%.1f%%)\n",
		run.CandidateWins, run.CandidateLosses, run.CandidatePredictions, run.CandidateWinRate)
	fmt.Printf("  Baseline (%s): %d wins / %d losses of %d predictions (%.1f%%)\n",
		run.BaselineMode, run.BaselineWins, run.BaselineLosses, run.BaselinePredictions, run.BaselineWinRate)
	fmt.Printf("  Delta: %+.1f%%  p-value: %.4f  significant: %v\n",
		run.WinRateDelta, run.PValue, run.IsSignificant)
	fmt.Printf("  Recommendation: %s (%s)\n", run.Recommendation, run.Reason)

	if notifyReviewer && cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		notifier, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("sandbox: telegram notifier unavailable: %v", err)
			return
		}
		if err := notifier.SendTestRunSummary(ctx, run); err != nil {
			log.Printf("sandbox: failed to queue telegram summary: %v", err)
		}
		notifier.Stop()
	}
}
