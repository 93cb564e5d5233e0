package results

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
	"github.com/westbet/westbetpro/internal/pkg/storage"
	"github.com/westbet/westbetpro/internal/scorefeed"
)

// Tracker grades pending predictions against the score feed. Each pass
// is independent; anything it cannot grade is skipped with a reason and
// picked up again on the next pass.
type Tracker struct {
	predictions storage.PredictionStore
	feed        scorefeed.Client
	cfg         config.TrackerConfig
}

func NewTracker(predictions storage.PredictionStore, feed scorefeed.Client, cfg config.TrackerConfig) *Tracker {
	return &Tracker{predictions: predictions, feed: feed, cfg: cfg}
}

// Summary reports one tracker pass.
type Summary struct {
	Checked int
	Won     int
	Lost    int
	Skipped map[enums.SkipReason]int
}

// SkippedTotal returns the number of predictions skipped this pass,
// across all reasons.
func (s *Summary) SkippedTotal() int {
	total := 0
	for _, n := range s.Skipped {
		total += n
	}
	return total
}

func (s *Summary) skip(reason enums.SkipReason) {
	if s.Skipped == nil {
		s.Skipped = make(map[enums.SkipReason]int)
	}
	s.Skipped[reason]++
}

// Start runs a pass immediately, then repeats on the configured
// interval until the context is cancelled.
func (t *Tracker) Start(ctx context.Context) error {
	if _, err := t.RunOnce(ctx); err != nil {
		slog.Error("tracker pass failed", "error", err)
	}

	ticker := time.NewTicker(t.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := t.RunOnce(ctx); err != nil {
				slog.Error("tracker pass failed", "error", err)
			}
		}
	}
}

// RunOnce grades one batch of pending predictions.
func (t *Tracker) RunOnce(ctx context.Context) (*Summary, error) {
	pending, err := t.predictions.FetchPendingPredictions(ctx, t.cfg.PendingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending predictions: %w", err)
	}

	summary := &Summary{}
	// One feed call per match day; the rest resolve from the same list.
	fixturesByDay := make(map[string][]scorefeed.Fixture)
	failedDays := make(map[string]bool)

	for i := range pending {
		p := &pending[i]
		day := p.MatchDate.Format("2006-01-02")

		if failedDays[day] {
			summary.skip(enums.SkipFeedError)
			continue
		}
		fixtures, ok := fixturesByDay[day]
		if !ok {
			fixtures, err = t.feed.FixturesOnDate(ctx, p.MatchDate)
			if err != nil {
				slog.Error("failed to fetch fixtures", "day", day, "error", err)
				failedDays[day] = true
				summary.skip(enums.SkipFeedError)
				continue
			}
			fixturesByDay[day] = fixtures
		}

		t.grade(ctx, p, fixtures, summary)
	}

	slog.Info("tracker pass completed",
		"checked", summary.Checked,
		"won", summary.Won,
		"lost", summary.Lost,
		"skipped", len(pending)-summary.Checked)
	return summary, nil
}

func (t *Tracker) grade(ctx context.Context, p *models.Prediction, fixtures []scorefeed.Fixture, summary *Summary) {
	fixture := MatchFixture(fixtures, p.HomeTeam, p.AwayTeam)
	if fixture == nil {
		slog.Debug("fixture unresolved",
			"home", p.HomeTeam, "away", p.AwayTeam,
			"day", p.MatchDate.Format("2006-01-02"))
		summary.skip(enums.SkipFixtureUnresolved)
		return
	}
	if !fixture.State.Finished() {
		summary.skip(enums.SkipMatchNotFinished)
		return
	}

	outcome, err := GradeBet(p.Bet, fixture.FullTime, fixture.HalfTime)
	if err != nil || outcome == enums.OutcomeIndeterminate {
		if err != nil {
			slog.Warn("ungradable prediction text", "prediction_id", p.ID, "bet", p.Bet)
		}
		summary.skip(enums.SkipIndeterminate)
		return
	}

	result := enums.StatusWon
	if outcome == enums.OutcomeLost {
		result = enums.StatusLost
	}
	note := scoreNote(fixture)

	if err := t.predictions.UpdatePredictionResult(ctx, p.ID, result, note); err != nil {
		// Another pass got there first; nothing to do.
		if errors.Is(err, storage.ErrAlreadyGraded) {
			return
		}
		slog.Error("failed to update prediction result", "prediction_id", p.ID, "error", err)
		return
	}

	summary.Checked++
	if result == enums.StatusWon {
		summary.Won++
	} else {
		summary.Lost++
	}
}

// scoreNote renders the result note, e.g. "MS: 2-1 | İY: 1-0". An
// unknown half-time score shows as "?-?".
func scoreNote(fixture *scorefeed.Fixture) string {
	ht := "?-?"
	if fixture.HalfTime.Known {
		ht = fmt.Sprintf("%d-%d", fixture.HalfTime.Home, fixture.HalfTime.Away)
	}
	return fmt.Sprintf("MS: %d-%d | İY: %s", fixture.FullTime.Home, fixture.FullTime.Away, ht)
}
