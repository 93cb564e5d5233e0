package results

import (
	"context"
	"testing"
	"time"

	"github.com/westbet/westbetpro/internal/pkg/config"
	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
	"github.com/westbet/westbetpro/internal/scorefeed"
)

type fakePredictionStore struct {
	pending []models.Prediction
	graded  map[string]enums.PredictionStatus
	notes   map[string]string
}

func (f *fakePredictionStore) ReplacePredictions(ctx context.Context, runID string, from, to time.Time, opps []models.Opportunity) (int, error) {
	return 0, nil
}

func (f *fakePredictionStore) FetchPendingPredictions(ctx context.Context, limit int) ([]models.Prediction, error) {
	return f.pending, nil
}

func (f *fakePredictionStore) UpdatePredictionResult(ctx context.Context, id string, result enums.PredictionStatus, note string) error {
	if f.graded == nil {
		f.graded = make(map[string]enums.PredictionStatus)
		f.notes = make(map[string]string)
	}
	f.graded[id] = result
	f.notes[id] = note
	return nil
}

func (f *fakePredictionStore) FetchPerformanceWindows(ctx context.Context, since time.Time, minFinished int) ([]models.PerformanceSample, error) {
	return nil, nil
}

func (f *fakePredictionStore) FetchConfidenceBuckets(ctx context.Context, since time.Time) ([]models.ConfidenceBucket, error) {
	return nil, nil
}

func (f *fakePredictionStore) FetchLeaguePerformance(ctx context.Context, since time.Time, minFinished int) ([]models.LeaguePerformance, error) {
	return nil, nil
}

type fakeFeed struct {
	fixtures []scorefeed.Fixture
	calls    int
}

func (f *fakeFeed) FixturesOnDate(ctx context.Context, date time.Time) ([]scorefeed.Fixture, error) {
	f.calls++
	return f.fixtures, nil
}

func (f *fakeFeed) LiveFixtures(ctx context.Context) ([]scorefeed.Fixture, error) {
	return nil, nil
}

func TestTracker_RunOnce(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &fakePredictionStore{
		pending: []models.Prediction{
			{ID: "p1", HomeTeam: "Galatasaray", AwayTeam: "Fenerbahçe", MatchDate: day, Bet: "MS 1.5 ÜST"},
			{ID: "p2", HomeTeam: "Galatasaray", AwayTeam: "Fenerbahçe", MatchDate: day, Bet: "KG VAR"},
			{ID: "p3", HomeTeam: "Besiktas", AwayTeam: "Trabzonspor", MatchDate: day, Bet: "MS 1.5 ÜST"},
			{ID: "p4", HomeTeam: "Unknown", AwayTeam: "Teams", MatchDate: day, Bet: "MS 1.5 ÜST"},
		},
	}
	feed := &fakeFeed{
		fixtures: []scorefeed.Fixture{
			{
				HomeTeam: "Galatasaray", AwayTeam: "Fenerbahce",
				State:    enums.StateFinished,
				FullTime: models.Score{Home: 2, Away: 0, Known: true},
				HalfTime: models.Score{Home: 1, Away: 0, Known: true},
			},
			{
				HomeTeam: "Besiktas", AwayTeam: "Trabzonspor",
				State: enums.StateLive,
			},
		},
	}

	tracker := NewTracker(store, feed, config.TrackerConfig{Interval: time.Minute, PendingLimit: 100})
	summary, err := tracker.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce() error: %v", err)
	}

	// 2-0: total over 1.5 won, both-scored lost.
	if store.graded["p1"] != enums.StatusWon {
		t.Errorf("p1 = %q, want won", store.graded["p1"])
	}
	if store.graded["p2"] != enums.StatusLost {
		t.Errorf("p2 = %q, want lost", store.graded["p2"])
	}
	if store.notes["p1"] != "MS: 2-0 | İY: 1-0" {
		t.Errorf("p1 note = %q", store.notes["p1"])
	}

	// Live fixture and unresolved fixture stay pending.
	if _, ok := store.graded["p3"]; ok {
		t.Error("p3 is not finished, must not be graded")
	}
	if _, ok := store.graded["p4"]; ok {
		t.Error("p4 has no fixture, must not be graded")
	}

	if summary.Checked != 2 || summary.Won != 1 || summary.Lost != 1 {
		t.Errorf("summary = %+v, want 2 checked, 1 won, 1 lost", summary)
	}
	if summary.Skipped[enums.SkipMatchNotFinished] != 1 {
		t.Errorf("skipped not_finished = %d, want 1", summary.Skipped[enums.SkipMatchNotFinished])
	}
	if summary.Skipped[enums.SkipFixtureUnresolved] != 1 {
		t.Errorf("skipped unresolved = %d, want 1", summary.Skipped[enums.SkipFixtureUnresolved])
	}

	// All four predictions share a match day: one feed call.
	if feed.calls != 1 {
		t.Errorf("feed calls = %d, want 1", feed.calls)
	}
}
