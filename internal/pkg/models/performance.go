package models

import (
	"time"
)

// PerformanceSample is a per-rule aggregate over a time window. Derived
// data: recomputed on demand from graded predictions, never mutated
// directly.
type PerformanceSample struct {
	RuleID        int       `json:"rule_id"`
	RuleName      string    `json:"rule_name"`
	WindowStart   time.Time `json:"window_start"`
	WonCount      int       `json:"won_count"`
	LostCount     int       `json:"lost_count"`
	PendingCount  int       `json:"pending_count"`
	AvgConfidence float64   `json:"avg_confidence"`
	BaselineRate  float64   `json:"baseline_rate"` // recorded baseline success rate in percent
}

// Finished returns the number of graded predictions in the window.
func (s PerformanceSample) Finished() int {
	return s.WonCount + s.LostCount
}

// SuccessRate returns won/(won+lost) in percent, 0 when nothing finished.
func (s PerformanceSample) SuccessRate() float64 {
	finished := s.Finished()
	if finished == 0 {
		return 0
	}
	return float64(s.WonCount) / float64(finished) * 100
}

// ConfidenceBucket aggregates graded predictions whose confidence fell
// into one band, e.g. "90-94".
type ConfidenceBucket struct {
	Bucket        string  `json:"bucket"`
	WonCount      int     `json:"won_count"`
	LostCount     int     `json:"lost_count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// Finished returns the number of graded predictions in the bucket.
func (b ConfidenceBucket) Finished() int {
	return b.WonCount + b.LostCount
}

// SuccessRate returns won/(won+lost) in percent, 0 when nothing finished.
func (b ConfidenceBucket) SuccessRate() float64 {
	finished := b.Finished()
	if finished == 0 {
		return 0
	}
	return float64(b.WonCount) / float64(finished) * 100
}

// LeaguePerformance aggregates graded predictions per league.
type LeaguePerformance struct {
	League    string `json:"league"`
	WonCount  int    `json:"won_count"`
	LostCount int    `json:"lost_count"`
}

// Finished returns the number of graded predictions for the league.
func (l LeaguePerformance) Finished() int {
	return l.WonCount + l.LostCount
}

// SuccessRate returns won/(won+lost) in percent, 0 when nothing finished.
func (l LeaguePerformance) SuccessRate() float64 {
	finished := l.Finished()
	if finished == 0 {
		return 0
	}
	return float64(l.WonCount) / float64(finished) * 100
}

// Run is the durable record of one engine execution. A run row is
// inserted before any evaluation starts and completed exactly once.
type Run struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"` // running, completed, failed
	StartedAt          time.Time `json:"started_at"`
	CompletedAt        time.Time `json:"completed_at,omitempty"`
	DateFrom           time.Time `json:"date_from"`
	DateTo             time.Time `json:"date_to"`
	Leagues            []string  `json:"leagues,omitempty"`
	MinConfidence      int       `json:"min_confidence"`
	MatchesProcessed   int       `json:"matches_processed"`
	OpportunitiesFound int       `json:"opportunities_found"`
	ExecutionTimeMS    int64     `json:"execution_time_ms"`
	ErrorMessage       string    `json:"error_message,omitempty"`
}
