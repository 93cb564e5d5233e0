package models

import (
	"time"

	"github.com/westbet/westbetpro/internal/pkg/enums"
)

// OddsRange is an inclusive [Min, Max] bound on one odds field. A nil
// bound side means unbounded.
type OddsRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v falls inside the range.
func (r OddsRange) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Conditions is a candidate rule's trigger predicate: range checks on
// named odds fields plus an optional league allow-list. Empty conditions
// never trigger.
type Conditions struct {
	Odds    map[string]OddsRange `json:"odds,omitempty" yaml:"odds,omitempty"`       // canonical odds key -> range
	Leagues []string             `json:"leagues,omitempty" yaml:"leagues,omitempty"` // allow-list, empty = all
}

// CandidateRule is a draft rule under sandbox evaluation. Same shape as
// Rule but with a conditions predicate in place of a fixed odds
// signature, and a test lifecycle.
type CandidateRule struct {
	CandidateID    string           `json:"candidate_id" yaml:"candidate_id"`
	Name           string           `json:"rule_name" yaml:"name"`
	Description    string           `json:"rule_description,omitempty" yaml:"description,omitempty"`
	PredictionText string           `json:"prediction_type" yaml:"prediction"`
	ConfidenceBase int              `json:"confidence_base" yaml:"confidence_base"`
	Conditions     Conditions       `json:"conditions" yaml:"conditions"`
	TestStatus     enums.TestStatus `json:"test_status" yaml:"-"`
	CreatedBy      string           `json:"created_by,omitempty" yaml:"-"`
	LastTestedAt   time.Time        `json:"last_tested_at,omitempty" yaml:"-"`
}

// TestRun is the immutable record of one sandbox evaluation.
type TestRun struct {
	TestRunID            string               `json:"test_run_id"`
	TestName             string               `json:"test_name"`
	CandidateID          string               `json:"candidate_id"`
	PeriodStart          time.Time            `json:"test_period_start"`
	PeriodEnd            time.Time            `json:"test_period_end"`
	BaselineMode         enums.BaselineMode   `json:"baseline_type"`
	BaselineRuleID       int                  `json:"baseline_rule_id,omitempty"`
	TotalMatches         int                  `json:"total_matches_tested"`
	CandidatePredictions int                  `json:"candidate_predictions_count"`
	CandidateWins        int                  `json:"candidate_win_count"`
	CandidateLosses      int                  `json:"candidate_loss_count"`
	CandidateWinRate     float64              `json:"candidate_win_rate"`
	BaselinePredictions  int                  `json:"baseline_predictions_count"`
	BaselineWins         int                  `json:"baseline_win_count"`
	BaselineLosses       int                  `json:"baseline_loss_count"`
	BaselineWinRate      float64              `json:"baseline_win_rate"`
	WinRateDelta         float64              `json:"win_rate_delta"`
	PValue               float64              `json:"p_value"`
	IsSignificant        bool                 `json:"is_significant"`
	Recommendation       enums.Recommendation `json:"recommendation"`
	Reason               string               `json:"recommendation_reason"`
	ExecutedAt           time.Time            `json:"executed_at"`
}
