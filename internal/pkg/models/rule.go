package models

import (
	"github.com/westbet/westbetpro/internal/pkg/enums"
)

// Rule is a single golden rule: a pattern of required odds values
// historically associated with certain outcomes. Rules are immutable
// after catalog load.
type Rule struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	PrimaryOdds    map[string]float64 `json:"primary_odds"`              // label -> required value, non-empty
	SecondaryOdds  map[string]float64 `json:"secondary_odds,omitempty"`  // optional extra filter
	ExcludeOdds    map[string]float64 `json:"exclude_odds,omitempty"`    // any satisfied pair voids the rule
	Predictions    []string           `json:"predictions"`               // ordered, first is the primary slot
	ConfidenceBase int                `json:"confidence_base"`           // 0-100
	Importance     enums.Importance   `json:"importance"`
	BaselineRate   float64            `json:"baseline_rate,omitempty"` // historical success rate as a fraction of 1
	Notes          string             `json:"notes,omitempty"`
}
