package learning

import (
	"context"
	"testing"
	"time"

	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
	"github.com/westbet/westbetpro/internal/rules"
)

type fakeHistory struct {
	samples []models.PerformanceSample
	buckets []models.ConfidenceBucket
	leagues []models.LeaguePerformance
}

func (f *fakeHistory) ReplacePredictions(ctx context.Context, runID string, from, to time.Time, opps []models.Opportunity) (int, error) {
	return 0, nil
}

func (f *fakeHistory) FetchPendingPredictions(ctx context.Context, limit int) ([]models.Prediction, error) {
	return nil, nil
}

func (f *fakeHistory) UpdatePredictionResult(ctx context.Context, id string, result enums.PredictionStatus, note string) error {
	return nil
}

func (f *fakeHistory) FetchPerformanceWindows(ctx context.Context, since time.Time, minFinished int) ([]models.PerformanceSample, error) {
	return f.samples, nil
}

func (f *fakeHistory) FetchConfidenceBuckets(ctx context.Context, since time.Time) ([]models.ConfidenceBucket, error) {
	return f.buckets, nil
}

func (f *fakeHistory) FetchLeaguePerformance(ctx context.Context, since time.Time, minFinished int) ([]models.LeaguePerformance, error) {
	var out []models.LeaguePerformance
	for _, l := range f.leagues {
		if l.Finished() >= minFinished {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeAdvisoryStore struct {
	saved map[string]models.Advisory
}

func (f *fakeAdvisoryStore) SaveAdvisory(ctx context.Context, advisory *models.Advisory) (bool, error) {
	if f.saved == nil {
		f.saved = make(map[string]models.Advisory)
	}
	if _, exists := f.saved[advisory.SuggestionID]; exists {
		return false, nil
	}
	f.saved[advisory.SuggestionID] = *advisory
	return true, nil
}

type captureSink struct {
	emitted []models.Advisory
}

func (s *captureSink) Emit(ctx context.Context, advisory models.Advisory) error {
	s.emitted = append(s.emitted, advisory)
	return nil
}

func newTestAnalyzer(t *testing.T, history *fakeHistory, store *fakeAdvisoryStore, sink Sink) *Analyzer {
	t.Helper()
	catalog, err := rules.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error: %v", err)
	}
	a := NewAnalyzer(history, store, catalog, []Sink{sink}, config.LearningConfig{
		WindowDays:    30,
		MinSampleSize: 30,
	})
	a.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return a
}

func TestAnalyzeRulePerformance_Degradation(t *testing.T) {
	history := &fakeHistory{
		samples: []models.PerformanceSample{
			{RuleID: 30, WonCount: 18, LostCount: 12},  // 60% vs 90% baseline
			{RuleID: 16, WonCount: 28, LostCount: 2},   // healthy
			{RuleID: 9999, WonCount: 20, LostCount: 10}, // retired rule
		},
	}
	a := newTestAnalyzer(t, history, &fakeAdvisoryStore{}, &captureSink{})

	performances, err := a.AnalyzeRulePerformance(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeRulePerformance() error: %v", err)
	}
	if len(performances) != 2 {
		t.Fatalf("performances = %d, want 2 (retired rule excluded)", len(performances))
	}

	degraded := performances[0]
	if degraded.RuleID != 30 {
		t.Fatalf("first sample rule = %d, want 30", degraded.RuleID)
	}
	if degraded.SuccessRate != 60 {
		t.Errorf("success rate = %.1f, want 60", degraded.SuccessRate)
	}
	if degraded.Delta != -30 {
		t.Errorf("delta = %.1f, want -30", degraded.Delta)
	}
	if !degraded.IsSignificant {
		t.Errorf("a 30-point drop over 30 samples must be significant, p = %v", degraded.PValue)
	}
	if degraded.CILower >= degraded.CIUpper {
		t.Errorf("CI (%v, %v) is inverted", degraded.CILower, degraded.CIUpper)
	}
}

func TestRunOnce_DegradationAdvisory(t *testing.T) {
	history := &fakeHistory{
		samples: []models.PerformanceSample{
			{RuleID: 30, WonCount: 18, LostCount: 12},
		},
	}
	store := &fakeAdvisoryStore{}
	sink := &captureSink{}
	a := newTestAnalyzer(t, history, store, sink)

	if err := a.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce() error: %v", err)
	}

	advisory, ok := store.saved["SUG-20260301-R30"]
	if !ok {
		t.Fatalf("expected advisory SUG-20260301-R30, saved: %v", store.saved)
	}
	if advisory.Severity != "high" {
		t.Errorf("severity = %q, want high for a 30-point drop", advisory.Severity)
	}
	if !advisory.ActionRequired {
		t.Error("high severity advisories require action")
	}
	if advisory.Category != "rule_performance" {
		t.Errorf("category = %q", advisory.Category)
	}
	if len(sink.emitted) != 1 {
		t.Fatalf("sink emissions = %d, want 1", len(sink.emitted))
	}

	// A second pass on the same day finds the same advisory and stays
	// silent.
	if err := a.RunOnce(context.Background()); err != nil {
		t.Fatalf("second RunOnce() error: %v", err)
	}
	if len(sink.emitted) != 1 {
		t.Errorf("sink emissions after rerun = %d, want still 1", len(sink.emitted))
	}
}

func TestRunOnce_LeagueAndCalibration(t *testing.T) {
	history := &fakeHistory{
		leagues: []models.LeaguePerformance{
			{League: "Lig A", WonCount: 12, LostCount: 8},  // 60%, medium
			{League: "Lig B", WonCount: 18, LostCount: 2},  // 90%, fine
			{League: "Lig C", WonCount: 10, LostCount: 5},  // only 15 graded
		},
		buckets: []models.ConfidenceBucket{
			{Bucket: "90-94", WonCount: 20, LostCount: 10, AvgConfidence: 91}, // 66.7% vs 91
			{Bucket: "85-89", WonCount: 26, LostCount: 4, AvgConfidence: 87},  // 86.7% vs 87
		},
	}
	store := &fakeAdvisoryStore{}
	a := newTestAnalyzer(t, history, store, &captureSink{})

	if err := a.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce() error: %v", err)
	}

	var leagueCount, calibrationCount int
	for _, advisory := range store.saved {
		switch advisory.Category {
		case "league_reliability":
			leagueCount++
			if advisory.Severity != "medium" {
				t.Errorf("60%% league severity = %q, want medium", advisory.Severity)
			}
		case "confidence_calibration":
			calibrationCount++
			if advisory.Severity != "medium" {
				t.Errorf("24-point drift severity = %q, want medium", advisory.Severity)
			}
		}
	}
	if leagueCount != 1 {
		t.Errorf("league advisories = %d, want 1", leagueCount)
	}
	if calibrationCount != 1 {
		t.Errorf("calibration advisories = %d, want 1", calibrationCount)
	}
}
