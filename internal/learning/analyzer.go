// Package learning watches graded prediction history and emits
// advisories when reality drifts from the rule table: degraded rules,
// unreliable leagues, miscalibrated confidence bands. It never changes
// a rule itself; every finding goes to an admin as a suggestion.
package learning

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math"
	"time"

	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/models"
	"github.com/westbet/westbetpro/internal/pkg/storage"
	"github.com/westbet/westbetpro/internal/rules"
	"github.com/westbet/westbetpro/internal/stats"
)

// RulePerformance is one rule's graded record over the analysis window,
// with the statistics needed to judge a drop.
type RulePerformance struct {
	RuleID        int
	RuleName      string
	Total         int
	WonCount      int
	LostCount     int
	SuccessRate   float64 // percent
	BaselineRate  float64 // percent
	Delta         float64 // SuccessRate - BaselineRate
	CILower       float64 // Wilson 95% bounds, percent
	CIUpper       float64
	PValue        float64
	IsSignificant bool
}

// Sink receives advisories that were newly persisted. Sink errors are
// logged and do not fail the analysis pass.
type Sink interface {
	Emit(ctx context.Context, advisory models.Advisory) error
}

// Analyzer runs the periodic learning pass.
type Analyzer struct {
	predictions storage.PredictionStore
	advisories  storage.AdvisoryStore
	catalog     *rules.Catalog
	sinks       []Sink
	cfg         config.LearningConfig
	now         func() time.Time
}

func NewAnalyzer(predictions storage.PredictionStore, advisories storage.AdvisoryStore,
	catalog *rules.Catalog, sinks []Sink, cfg config.LearningConfig) *Analyzer {
	return &Analyzer{
		predictions: predictions,
		advisories:  advisories,
		catalog:     catalog,
		sinks:       sinks,
		cfg:         cfg,
		now:         time.Now,
	}
}

// RunOnce executes one full analysis pass: rule degradation, league
// reliability, confidence calibration. Advisories are deduplicated by
// suggestion id, so re-running the same day is idempotent.
func (a *Analyzer) RunOnce(ctx context.Context) error {
	var advisories []models.Advisory

	ruleAdvisories, err := a.detectRuleDegradation(ctx)
	if err != nil {
		return fmt.Errorf("failed to analyze rule performance: %w", err)
	}
	advisories = append(advisories, ruleAdvisories...)

	leagueAdvisories, err := a.detectLeagueIssues(ctx)
	if err != nil {
		return fmt.Errorf("failed to analyze league reliability: %w", err)
	}
	advisories = append(advisories, leagueAdvisories...)

	calibrationAdvisories, err := a.detectConfidenceDrift(ctx)
	if err != nil {
		return fmt.Errorf("failed to analyze confidence calibration: %w", err)
	}
	advisories = append(advisories, calibrationAdvisories...)

	newCount := 0
	for _, advisory := range advisories {
		inserted, err := a.advisories.SaveAdvisory(ctx, &advisory)
		if err != nil {
			slog.Error("failed to save advisory", "suggestion_id", advisory.SuggestionID, "error", err)
			continue
		}
		if !inserted {
			continue
		}
		newCount++
		for _, sink := range a.sinks {
			if err := sink.Emit(ctx, advisory); err != nil {
				slog.Error("advisory sink failed", "suggestion_id", advisory.SuggestionID, "error", err)
			}
		}
	}

	slog.Info("learning pass completed",
		"advisories_found", len(advisories),
		"advisories_new", newCount)
	return nil
}

// AnalyzeRulePerformance computes per-rule statistics over the rolling
// window. Rules with fewer finished predictions than the minimum sample
// size are excluded entirely.
func (a *Analyzer) AnalyzeRulePerformance(ctx context.Context) ([]RulePerformance, error) {
	since := a.now().AddDate(0, 0, -a.cfg.WindowDays)
	samples, err := a.predictions.FetchPerformanceWindows(ctx, since, a.cfg.MinSampleSize)
	if err != nil {
		return nil, err
	}

	performances := make([]RulePerformance, 0, len(samples))
	for _, sample := range samples {
		rule := a.catalog.ByID(sample.RuleID)
		if rule == nil {
			// Rule retired from the catalog; history remains but there
			// is nothing to advise on.
			continue
		}

		total := sample.Finished()
		perf := RulePerformance{
			RuleID:       sample.RuleID,
			RuleName:     rule.Name,
			Total:        total,
			WonCount:     sample.WonCount,
			LostCount:    sample.LostCount,
			SuccessRate:  sample.SuccessRate(),
			BaselineRate: rule.BaselineRate * 100,
		}
		perf.Delta = perf.SuccessRate - perf.BaselineRate

		lower, upper := stats.WilsonInterval(sample.WonCount, total, 0.95)
		perf.CILower, perf.CIUpper = lower*100, upper*100
		perf.PValue = stats.ProportionTest(sample.WonCount, total, rule.BaselineRate)
		perf.IsSignificant = stats.Significant(perf.PValue)

		performances = append(performances, perf)
	}
	return performances, nil
}

func (a *Analyzer) detectRuleDegradation(ctx context.Context) ([]models.Advisory, error) {
	performances, err := a.AnalyzeRulePerformance(ctx)
	if err != nil {
		return nil, err
	}

	var advisories []models.Advisory
	for _, perf := range performances {
		if !perf.IsSignificant || perf.Delta >= -5 {
			continue
		}
		severity := severityForDelta(perf.Delta)

		advisories = append(advisories, models.Advisory{
			SuggestionID: fmt.Sprintf("SUG-%s-R%d", a.now().Format("20060102"), perf.RuleID),
			Severity:     severity,
			Category:     "rule_performance",
			Title:        fmt.Sprintf("Rule %q Degradation Detected", perf.RuleName),
			Description: fmt.Sprintf("Rule %q has dropped to %.1f%% success rate in the last %d days, down from baseline %.1f%%.",
				perf.RuleName, perf.SuccessRate, a.cfg.WindowDays, perf.BaselineRate),
			Data: map[string]string{
				"rule_id":             fmt.Sprintf("%d", perf.RuleID),
				"baseline_rate":       fmt.Sprintf("%.2f", perf.BaselineRate),
				"current_rate":        fmt.Sprintf("%.2f", perf.SuccessRate),
				"delta":               fmt.Sprintf("%.2f", perf.Delta),
				"sample_size":         fmt.Sprintf("%d", perf.Total),
				"won_count":           fmt.Sprintf("%d", perf.WonCount),
				"lost_count":          fmt.Sprintf("%d", perf.LostCount),
				"confidence_interval": fmt.Sprintf("%.2f%% - %.2f%% (95%% CI)", perf.CILower, perf.CIUpper),
				"p_value":             fmt.Sprintf("%.4f", perf.PValue),
			},
			Recommendation: recommendationFor(perf),
			Justification: fmt.Sprintf("%.1f%% drop is statistically significant (p = %.4f) over %d predictions",
				math.Abs(perf.Delta), perf.PValue, perf.Total),
			Actions: []string{
				fmt.Sprintf("Lower confidence_base by %d points", confidenceAdjustment(perf.Delta)),
				"Add additional filters to rule conditions",
				"Disable rule temporarily and monitor",
				fmt.Sprintf("Review last %d losses for pattern", perf.LostCount),
			},
			ActionRequired: severity == "high",
			CreatedAt:      a.now(),
		})
	}
	return advisories, nil
}

func (a *Analyzer) detectLeagueIssues(ctx context.Context) ([]models.Advisory, error) {
	// Leagues accumulate samples slower than rules: double the window.
	since := a.now().AddDate(0, 0, -2*a.cfg.WindowDays)
	leagues, err := a.predictions.FetchLeaguePerformance(ctx, since, 20)
	if err != nil {
		return nil, err
	}

	var advisories []models.Advisory
	for _, league := range leagues {
		rate := league.SuccessRate()
		if rate >= 70 {
			continue
		}
		severity := "low"
		if rate < 65 {
			severity = "medium"
		}

		advisories = append(advisories, models.Advisory{
			SuggestionID: fmt.Sprintf("SUG-%s-L%03d", a.now().Format("20060102"), leagueHash(league.League)),
			Severity:     severity,
			Category:     "league_reliability",
			Title:        fmt.Sprintf("Low Reliability: %s", league.League),
			Description: fmt.Sprintf("League %q shows only %.1f%% success rate over the last %d days (%d predictions).",
				league.League, rate, 2*a.cfg.WindowDays, league.Finished()),
			Data: map[string]string{
				"league":       league.League,
				"success_rate": fmt.Sprintf("%.2f", rate),
				"sample_size":  fmt.Sprintf("%d", league.Finished()),
				"won_count":    fmt.Sprintf("%d", league.WonCount),
			},
			Recommendation: fmt.Sprintf("Consider filtering out %s or reducing confidence for this league", league.League),
			Justification:  fmt.Sprintf("Based on %d predictions, significantly below system average", league.Finished()),
			Actions: []string{
				fmt.Sprintf("Add league filter to exclude %s", league.League),
				"Reduce confidence by 10 points for this league",
				"Monitor for 2 more weeks before action",
			},
			ActionRequired: rate < 65,
			CreatedAt:      a.now(),
		})
	}
	return advisories, nil
}

func (a *Analyzer) detectConfidenceDrift(ctx context.Context) ([]models.Advisory, error) {
	since := a.now().AddDate(0, 0, -a.cfg.WindowDays)
	buckets, err := a.predictions.FetchConfidenceBuckets(ctx, since)
	if err != nil {
		return nil, err
	}

	var advisories []models.Advisory
	for _, bucket := range buckets {
		if bucket.Finished() < 20 {
			continue
		}
		// Confidence is a stated success probability; a calibrated
		// bucket wins about as often as its average confidence says.
		drift := bucket.SuccessRate() - bucket.AvgConfidence
		if math.Abs(drift) <= 5 {
			continue
		}

		severity := "low"
		if math.Abs(drift) > 8 {
			severity = "medium"
		}
		direction := "Deflation"
		verb := "over"
		adjustment := "Increase"
		if drift < 0 {
			direction = "Inflation"
			verb = "under"
			adjustment = "Reduce"
		}

		advisories = append(advisories, models.Advisory{
			SuggestionID: fmt.Sprintf("SUG-%s-C%s", a.now().Format("20060102"), bucket.Bucket),
			Severity:     severity,
			Category:     "confidence_calibration",
			Title:        fmt.Sprintf("Confidence %s: %s%%", direction, bucket.Bucket),
			Description: fmt.Sprintf("Predictions in the %s%% range show %.1f%% %s-performance compared to stated confidence.",
				bucket.Bucket, math.Abs(drift), verb),
			Data: map[string]string{
				"confidence_bucket": bucket.Bucket,
				"expected_success":  fmt.Sprintf("%.2f", bucket.AvgConfidence),
				"actual_success":    fmt.Sprintf("%.2f", bucket.SuccessRate()),
				"drift":             fmt.Sprintf("%.2f", drift),
				"sample_size":       fmt.Sprintf("%d", bucket.Finished()),
			},
			Recommendation: fmt.Sprintf("%s confidence scores in this range by ~%d points", adjustment, int(math.Abs(drift))),
			Justification:  fmt.Sprintf("Based on %d predictions, calibration is off by %.1f%%", bucket.Finished(), math.Abs(drift)),
			Actions: []string{
				"Adjust confidence_base for rules in this range",
				"Review rule confidence calculations",
				"Monitor for another 30 days",
			},
			ActionRequired: false,
			CreatedAt:      a.now(),
		})
	}
	return advisories, nil
}

// severityForDelta grades a degradation drop.
func severityForDelta(delta float64) string {
	switch {
	case delta < -10:
		return "high"
	case delta < -7:
		return "medium"
	default:
		return "low"
	}
}

// confidenceAdjustment dampens the raw drop so one bad window does not
// over-correct.
func confidenceAdjustment(delta float64) int {
	return int(math.Abs(delta * 0.8))
}

func recommendationFor(perf RulePerformance) string {
	switch {
	case perf.Delta < -10:
		return fmt.Sprintf("Disable rule temporarily or reduce confidence_base by %d points immediately", int(math.Abs(perf.Delta)))
	case perf.Delta < -7:
		return fmt.Sprintf("Consider reducing confidence_base by %d points or adding filters", confidenceAdjustment(perf.Delta))
	default:
		return "Monitor closely for another week before action"
	}
}

func leagueHash(league string) int {
	h := fnv.New32a()
	h.Write([]byte(league))
	return int(h.Sum32() % 1000)
}
