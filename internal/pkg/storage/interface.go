package storage

import (
	"context"
	"time"

	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

// MatchStore reads stored fixtures.
type MatchStore interface {
	// FetchMatches returns fixtures whose match date falls inside
	// [from, to]. An empty leagues slice means no league filter.
	FetchMatches(ctx context.Context, from, to time.Time, leagues []string) ([]models.Match, error)

	// FetchFinishedMatches returns fixtures in the range that already
	// carry a known full-time score.
	FetchFinishedMatches(ctx context.Context, from, to time.Time) ([]models.Match, error)

	// AttachScores records the final (and optionally half-time) score of
	// a fixture.
	AttachScores(ctx context.Context, matchID string, fullTime, halfTime models.Score) error

	Close() error
}

// PredictionStore persists engine output and grades it.
type PredictionStore interface {
	// ReplacePredictions atomically retires active predictions in the
	// date range and inserts the new set under runID. Returns the number
	// of inserted rows. Either all writes land or none do.
	ReplacePredictions(ctx context.Context, runID string, from, to time.Time, opportunities []models.Opportunity) (int, error)

	// FetchPendingPredictions returns ungraded predictions, oldest
	// match first, capped at limit.
	FetchPendingPredictions(ctx context.Context, limit int) ([]models.Prediction, error)

	// UpdatePredictionResult grades a prediction. The transition is
	// single-shot: a prediction already graded is left untouched and
	// ErrAlreadyGraded is returned.
	UpdatePredictionResult(ctx context.Context, predictionID string, result enums.PredictionStatus, note string) error

	// FetchPerformanceWindows aggregates graded predictions per rule
	// since the window start. Rules with fewer graded predictions than
	// minFinished are omitted.
	FetchPerformanceWindows(ctx context.Context, since time.Time, minFinished int) ([]models.PerformanceSample, error)

	// FetchConfidenceBuckets aggregates graded predictions by confidence
	// band since the window start.
	FetchConfidenceBuckets(ctx context.Context, since time.Time) ([]models.ConfidenceBucket, error)

	// FetchLeaguePerformance aggregates graded predictions per league
	// since the window start, omitting leagues below minFinished.
	FetchLeaguePerformance(ctx context.Context, since time.Time, minFinished int) ([]models.LeaguePerformance, error)
}

// RunStore tracks engine executions.
type RunStore interface {
	// CreateRun durably inserts the run row in running state.
	CreateRun(ctx context.Context, run *models.Run) error

	// CompleteRun writes the run's terminal state and counters.
	CompleteRun(ctx context.Context, run *models.Run) error
}

// CandidateStore persists sandbox candidate rules and their test runs.
type CandidateStore interface {
	GetCandidate(ctx context.Context, candidateID string) (*models.CandidateRule, error)
	SaveCandidate(ctx context.Context, candidate *models.CandidateRule) error

	// UpdateCandidateStatus moves a candidate through its lifecycle and
	// records the latest test outcome on it.
	UpdateCandidateStatus(ctx context.Context, candidateID string, status enums.TestStatus, testedAt time.Time) error

	// SaveTestRun appends an immutable test-run record.
	SaveTestRun(ctx context.Context, run *models.TestRun) error

	// FetchTestRuns returns a candidate's past test runs, newest first.
	FetchTestRuns(ctx context.Context, candidateID string) ([]models.TestRun, error)
}

// AdvisoryStore persists learning advisories. SaveAdvisory reports
// whether the advisory was newly inserted; a repeated suggestion id is
// a no-op returning false, which is how re-running analysis stays
// idempotent.
type AdvisoryStore interface {
	SaveAdvisory(ctx context.Context, advisory *models.Advisory) (bool, error)
}
