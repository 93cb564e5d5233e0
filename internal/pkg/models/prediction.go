package models

import (
	"time"

	"github.com/westbet/westbetpro/internal/pkg/enums"
)

// ScoredPrediction is one (prediction, confidence, rule) tuple inside an
// opportunity's ranked list.
type ScoredPrediction struct {
	Bet        string `json:"bet"`
	Confidence int    `json:"confidence"`
	RuleID     int    `json:"rule_id"`
	RuleName   string `json:"rule_name"`
}

// MatchedRule tags an opportunity with every rule that fired on it.
type MatchedRule struct {
	RuleID   int    `json:"rule_id"`
	RuleName string `json:"rule_name"`
}

// Opportunity is a fixture for which at least one rule matched, with its
// full confidence-ranked prediction list. The primary prediction is the
// top entry; Alternatives hold the untruncated remainder.
type Opportunity struct {
	MatchID      string             `json:"match_id"`
	HomeTeam     string             `json:"home_team"`
	AwayTeam     string             `json:"away_team"`
	League       string             `json:"league"`
	MatchDate    time.Time          `json:"match_date"`
	MatchTime    string             `json:"match_time,omitempty"`
	Prediction   ScoredPrediction   `json:"prediction"`
	Alternatives []ScoredPrediction `json:"alternative_predictions"`
	MatchedRules []MatchedRule      `json:"matched_rules"`
	Note         string             `json:"note,omitempty"`
}

// Prediction is a persisted opportunity with result bookkeeping.
// Status transitions pending→{won,lost} are single-shot (enforced by
// enums.PredictionStatus and the storage layer).
type Prediction struct {
	ID           string                 `json:"id"`
	RunID        string                 `json:"run_id"`
	MatchID      string                 `json:"match_id"`
	HomeTeam     string                 `json:"home_team"`
	AwayTeam     string                 `json:"away_team"`
	League       string                 `json:"league"`
	MatchDate    time.Time              `json:"match_date"`
	MatchTime    string                 `json:"match_time,omitempty"`
	Bet          string                 `json:"prediction"`
	Confidence   int                    `json:"confidence"`
	RuleID       int                    `json:"rule_id"`
	Alternatives []ScoredPrediction     `json:"alternative_predictions,omitempty"`
	Status       enums.PredictionStatus `json:"status"` // active until graded
	Result       enums.PredictionStatus `json:"result"` // pending/won/lost mirror for bookkeeping
	Note         string                 `json:"note,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}
