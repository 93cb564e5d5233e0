// Package sandbox tests candidate rules on frozen historical data. A
// sandbox run is strictly read-only with respect to live predictions:
// it never activates a rule and never touches the prediction tables.
// Its only writes are the immutable test-run record and the candidate's
// own lifecycle state.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
	"github.com/westbet/westbetpro/internal/pkg/storage"
	"github.com/westbet/westbetpro/internal/pkg/validation"
	"github.com/westbet/westbetpro/internal/results"
	"github.com/westbet/westbetpro/internal/rules"
	"github.com/westbet/westbetpro/internal/stats"
)

// TestRequest describes one sandbox evaluation to run.
type TestRequest struct {
	CandidateID    string
	TestName       string             // defaults to "Test of <candidate name>"
	BaselineMode   enums.BaselineMode // defaults to golden_rules
	BaselineRuleID int                // required for specific_rule mode
}

// tally accumulates one side's win/loss counts over the test window.
// Triggered predictions whose outcome is indeterminate count toward the
// prediction total but toward neither wins nor losses.
type tally struct {
	predictions int
	wins        int
	losses      int
}

func (t *tally) record(outcome enums.Outcome) {
	t.predictions++
	switch outcome {
	case enums.OutcomeWon:
		t.wins++
	case enums.OutcomeLost:
		t.losses++
	}
}

func (t *tally) winRate() float64 {
	if t.predictions == 0 {
		return 0
	}
	return float64(t.wins) / float64(t.predictions) * 100
}

// Evaluator runs candidate rules against finished historical fixtures
// and compares their simulated record to a baseline.
type Evaluator struct {
	candidates storage.CandidateStore
	matches    storage.MatchStore
	catalog    *rules.Catalog
	cfg        config.SandboxConfig

	now func() time.Time
}

func NewEvaluator(candidates storage.CandidateStore, matches storage.MatchStore, catalog *rules.Catalog, cfg config.SandboxConfig) *Evaluator {
	return &Evaluator{
		candidates: candidates,
		matches:    matches,
		catalog:    catalog,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Run executes one sandbox test end to end: load and validate the
// candidate, walk it through draft → testing, replay the frozen window,
// persist the immutable test run, and finish at tested. Re-testing an
// already tested candidate creates a new test run without reopening the
// lifecycle.
func (e *Evaluator) Run(ctx context.Context, req TestRequest) (*models.TestRun, error) {
	candidate, err := e.candidates.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("load candidate %s: %w", req.CandidateID, err)
	}
	if err := validation.ValidateCandidate(candidate); err != nil {
		return nil, err
	}

	mode := req.BaselineMode
	if mode == "" {
		mode = enums.BaselineGoldenRules
	}
	var baselineRule *models.Rule
	if mode == enums.BaselineSpecificRule {
		baselineRule = e.catalog.ByID(req.BaselineRuleID)
		if baselineRule == nil {
			return nil, fmt.Errorf("baseline rule %d not in catalog", req.BaselineRuleID)
		}
	}

	executedAt := e.now().UTC()
	if candidate.TestStatus.CanTransitionTo(enums.TestStatusTesting) {
		if err := e.candidates.UpdateCandidateStatus(ctx, candidate.CandidateID, enums.TestStatusTesting, executedAt); err != nil {
			return nil, fmt.Errorf("mark candidate testing: %w", err)
		}
		candidate.TestStatus = enums.TestStatusTesting
	}

	// The window is frozen history: it ends yesterday so no fixture in
	// it can still change.
	periodEnd := executedAt.Truncate(24 * time.Hour).AddDate(0, 0, -1)
	periodStart := periodEnd.AddDate(0, 0, -e.cfg.TestPeriodDays)

	matches, err := e.matches.FetchFinishedMatches(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("fetch historical matches: %w", err)
	}
	slog.Info("sandbox test started",
		"candidate_id", candidate.CandidateID,
		"baseline", mode.String(),
		"period_start", periodStart.Format("2006-01-02"),
		"period_end", periodEnd.Format("2006-01-02"),
		"matches", len(matches))

	run := &models.TestRun{
		TestRunID:      fmt.Sprintf("TEST-%s-%s", executedAt.Format("20060102-150405"), uuid.NewString()[:8]),
		TestName:       req.TestName,
		CandidateID:    candidate.CandidateID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		BaselineMode:   mode,
		BaselineRuleID: req.BaselineRuleID,
		TotalMatches:   len(matches),
		ExecutedAt:     executedAt,
	}
	if run.TestName == "" {
		run.TestName = "Test of " + candidate.Name
	}

	e.replay(candidate, matches, mode, baselineRule, run)
	run.Recommendation, run.Reason = recommend(run, e.cfg.MinSampleSize)

	if err := e.candidates.SaveTestRun(ctx, run); err != nil {
		return nil, fmt.Errorf("save test run: %w", err)
	}
	if candidate.TestStatus.CanTransitionTo(enums.TestStatusTested) {
		if err := e.candidates.UpdateCandidateStatus(ctx, candidate.CandidateID, enums.TestStatusTested, executedAt); err != nil {
			return nil, fmt.Errorf("mark candidate tested: %w", err)
		}
	} else if err := e.candidates.UpdateCandidateStatus(ctx, candidate.CandidateID, candidate.TestStatus, executedAt); err != nil {
		return nil, fmt.Errorf("record candidate test time: %w", err)
	}

	slog.Info("sandbox test completed",
		"test_run_id", run.TestRunID,
		"candidate_win_rate", run.CandidateWinRate,
		"baseline_win_rate", run.BaselineWinRate,
		"delta", run.WinRateDelta,
		"p_value", run.PValue,
		"recommendation", run.Recommendation.String())
	return run, nil
}

// replay simulates candidate and baseline over every finished fixture
// in the window and fills the run's counters.
func (e *Evaluator) replay(candidate *models.CandidateRule, matches []models.Match, mode enums.BaselineMode, baselineRule *models.Rule, run *models.TestRun) {
	var cand, base tally

	for i := range matches {
		match := &matches[i]

		if ConditionsMatch(candidate.Conditions, match) {
			cand.record(e.grade(candidate.PredictionText, match))
		}

		switch mode {
		case enums.BaselineNone:
			// Nothing predicts; the candidate is measured alone.
		case enums.BaselineSpecificRule:
			if rules.RuleMatches(baselineRule, match.Odds, 0) {
				base.record(e.grade(baselineRule.Predictions[0], match))
			}
		default: // golden_rules
			if text, ok := e.bestCatalogPrediction(match); ok {
				base.record(e.grade(text, match))
			}
		}
	}

	run.CandidatePredictions = cand.predictions
	run.CandidateWins = cand.wins
	run.CandidateLosses = cand.losses
	run.CandidateWinRate = cand.winRate()
	run.BaselinePredictions = base.predictions
	run.BaselineWins = base.wins
	run.BaselineLosses = base.losses
	run.BaselineWinRate = base.winRate()
	run.WinRateDelta = run.CandidateWinRate - run.BaselineWinRate

	// The significance test needs a real sample on both sides. A thin
	// baseline gives p=1.0, which the decision table turns into reject
	// or insufficient_data downstream.
	if cand.predictions >= e.cfg.MinSampleSize && base.predictions >= e.cfg.MinSampleSize {
		expected := 0.5
		if base.predictions > 0 {
			expected = float64(base.wins) / float64(base.predictions)
		}
		run.PValue = stats.ProportionTest(cand.wins, cand.predictions, expected)
	} else {
		run.PValue = 1.0
	}
	run.IsSignificant = stats.Significant(run.PValue)
}

// bestCatalogPrediction returns the highest-confidence prediction the
// golden-rule catalog makes for the fixture, mirroring what the live
// engine would have emitted.
func (e *Evaluator) bestCatalogPrediction(match *models.Match) (string, bool) {
	bestText, bestConfidence := "", -1
	for _, rule := range e.catalog.Rules() {
		if !rules.RuleMatches(&rule, match.Odds, 0) {
			continue
		}
		for i, prediction := range rule.Predictions {
			if c := rules.Confidence(&rule, i); c > bestConfidence {
				bestText, bestConfidence = prediction, c
			}
		}
	}
	return bestText, bestConfidence >= 0
}

func (e *Evaluator) grade(text string, match *models.Match) enums.Outcome {
	outcome, err := results.GradeBet(text, match.FullTime, match.HalfTime)
	if err != nil {
		var unsupported *results.ErrUnsupportedBet
		if !errors.As(err, &unsupported) {
			slog.Warn("sandbox grading failed", "prediction", text, "error", err)
		}
		return enums.OutcomeIndeterminate
	}
	return outcome
}

// ConditionsMatch reports whether a fixture satisfies a candidate's
// trigger predicate. Every odds range must be present and in bounds; an
// empty predicate never triggers.
func ConditionsMatch(conditions models.Conditions, match *models.Match) bool {
	if len(conditions.Odds) == 0 && len(conditions.Leagues) == 0 {
		return false
	}
	for key, bounds := range conditions.Odds {
		value, ok := match.Odds[key]
		if !ok || !bounds.Contains(value) {
			return false
		}
	}
	if len(conditions.Leagues) > 0 {
		allowed := false
		for _, league := range conditions.Leagues {
			if league == match.League {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}
	return true
}

// recommend applies the verdict table in order. Thresholds are strict:
// a delta of exactly 5 points is not enough for approval and falls
// through to needs_tuning when the win rate clears 70.
func recommend(run *models.TestRun, minSampleSize int) (enums.Recommendation, string) {
	if run.CandidatePredictions < minSampleSize {
		return enums.RecommendInsufficientData,
			fmt.Sprintf("Only %d predictions, need %d+", run.CandidatePredictions, minSampleSize)
	}
	if !run.IsSignificant {
		return enums.RecommendReject, "No statistically significant improvement over baseline"
	}
	if run.WinRateDelta > 5 && run.CandidateWinRate > 75 {
		return enums.RecommendApprove,
			fmt.Sprintf("+%.1f%% improvement, ready for production", run.WinRateDelta)
	}
	if run.WinRateDelta > 0 && run.CandidateWinRate > 70 {
		return enums.RecommendNeedsTuning,
			fmt.Sprintf("+%.1f%% improvement but confidence needs adjustment", run.WinRateDelta)
	}
	return enums.RecommendReject, "Does not perform better than baseline"
}
