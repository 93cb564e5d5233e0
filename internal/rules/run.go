package rules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/models"
	"github.com/westbet/westbetpro/internal/pkg/storage"
)

// Locker serializes engine runs over a date range.
type Locker interface {
	AcquireRunLock(ctx context.Context, dateFrom, dateTo time.Time, ttl time.Duration) (func(context.Context) error, error)
}

// Engine ties fixture fetching, rule evaluation and prediction
// persistence into one run. A run row is written before any evaluation
// starts, so an aborted run is still visible afterwards.
type Engine struct {
	matches     storage.MatchStore
	predictions storage.PredictionStore
	runs        storage.RunStore
	locker      Locker
	processor   *Processor
	cfg         config.EngineConfig
}

func NewEngine(matches storage.MatchStore, predictions storage.PredictionStore,
	runs storage.RunStore, locker Locker, processor *Processor, cfg config.EngineConfig) *Engine {
	return &Engine{
		matches:     matches,
		predictions: predictions,
		runs:        runs,
		locker:      locker,
		processor:   processor,
		cfg:         cfg,
	}
}

// RunOnce executes a single engine run over the configured date window.
// Concurrent runs over the same window are rejected with
// storage.ErrLockHeld.
func (e *Engine) RunOnce(ctx context.Context) (*models.Run, error) {
	now := time.Now()
	dateFrom := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateTo := dateFrom.AddDate(0, 0, e.cfg.DaysAhead)
	return e.Run(ctx, dateFrom, dateTo)
}

// Run executes one engine run over [dateFrom, dateTo].
func (e *Engine) Run(ctx context.Context, dateFrom, dateTo time.Time) (*models.Run, error) {
	release, err := e.locker.AcquireRunLock(ctx, dateFrom, dateTo, e.cfg.RunLockTTL)
	if err != nil {
		if errors.Is(err, storage.ErrLockHeld) {
			slog.Warn("engine run already in progress for this window",
				"date_from", dateFrom.Format("2006-01-02"),
				"date_to", dateTo.Format("2006-01-02"))
		}
		return nil, err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			slog.Error("failed to release run lock", "error", err)
		}
	}()

	run := &models.Run{
		ID:            uuid.NewString(),
		Status:        "running",
		StartedAt:     time.Now(),
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		Leagues:       e.cfg.Leagues,
		MinConfidence: e.cfg.MinConfidence,
	}
	if err := e.runs.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	if err := e.execute(ctx, run); err != nil {
		run.Status = "failed"
		run.ErrorMessage = err.Error()
		run.CompletedAt = time.Now()
		run.ExecutionTimeMS = time.Since(run.StartedAt).Milliseconds()
		if completeErr := e.runs.CompleteRun(context.WithoutCancel(ctx), run); completeErr != nil {
			slog.Error("failed to record run failure", "run_id", run.ID, "error", completeErr)
		}
		return run, err
	}

	run.Status = "completed"
	run.CompletedAt = time.Now()
	run.ExecutionTimeMS = time.Since(run.StartedAt).Milliseconds()
	if err := e.runs.CompleteRun(ctx, run); err != nil {
		return run, fmt.Errorf("failed to complete run: %w", err)
	}

	slog.Info("engine run completed",
		"run_id", run.ID,
		"matches_processed", run.MatchesProcessed,
		"opportunities_found", run.OpportunitiesFound,
		"execution_time_ms", run.ExecutionTimeMS)
	return run, nil
}

func (e *Engine) execute(ctx context.Context, run *models.Run) error {
	matches, err := e.matches.FetchMatches(ctx, run.DateFrom, run.DateTo, e.cfg.Leagues)
	if err != nil {
		return fmt.Errorf("failed to fetch matches: %w", err)
	}
	if e.cfg.SkipPastMatches {
		matches = filterUpcoming(matches, time.Now())
	}
	run.MatchesProcessed = len(matches)

	opportunities, err := e.processor.Process(ctx, matches)
	if err != nil {
		return fmt.Errorf("failed to process matches: %w", err)
	}
	run.OpportunitiesFound = len(opportunities)

	if _, err := e.predictions.ReplacePredictions(ctx, run.ID, run.DateFrom, run.DateTo, opportunities); err != nil {
		return fmt.Errorf("failed to store predictions: %w", err)
	}
	return nil
}

// Start runs the engine once, then repeats on the async interval until
// the context is cancelled. A failed pass is logged, not fatal.
func (e *Engine) Start(ctx context.Context) error {
	if _, err := e.RunOnce(ctx); err != nil && !errors.Is(err, storage.ErrLockHeld) {
		slog.Error("engine run failed", "error", err)
	}
	if !e.cfg.AsyncEnabled {
		return nil
	}

	ticker := time.NewTicker(e.cfg.AsyncInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := e.RunOnce(ctx); err != nil && !errors.Is(err, storage.ErrLockHeld) {
				slog.Error("engine run failed", "error", err)
			}
		}
	}
}

// filterUpcoming drops fixtures whose kickoff is already in the past. A
// fixture without a kickoff time counts as upcoming for its whole day.
func filterUpcoming(matches []models.Match, now time.Time) []models.Match {
	upcoming := matches[:0]
	for _, m := range matches {
		if !kickoff(&m).Before(now) {
			upcoming = append(upcoming, m)
		}
	}
	return upcoming
}

func kickoff(m *models.Match) time.Time {
	day := m.MatchDate
	if t, err := time.Parse("15:04", m.MatchTime); err == nil {
		return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
	}
	// No kickoff time: treat as end of day.
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
}
