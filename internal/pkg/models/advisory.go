package models

import (
	"time"
)

// Advisory is a suggestion emitted for human review. The system never
// acts on advisories itself; they are persisted and surfaced to an
// admin who decides what to do.
type Advisory struct {
	SuggestionID   string            `json:"suggestion_id"`
	Severity       string            `json:"severity"` // low, medium, high
	Category       string            `json:"category"` // rule_performance, league_reliability, confidence_calibration
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Data           map[string]string `json:"data,omitempty"`
	Recommendation string            `json:"recommendation"`
	Justification  string            `json:"justification"`
	Actions        []string          `json:"suggested_actions,omitempty"`
	ActionRequired bool              `json:"action_required"`
	CreatedAt      time.Time         `json:"created_at"`
}
