package validation

import (
	"fmt"

	"github.com/westbet/westbetpro/internal/pkg/models"
)

// Error reports a malformed rule or candidate definition. Catalog load
// fails fast on the first invalid entry instead of silently skipping it.
type Error struct {
	Entity string // "rule" or "candidate_rule"
	ID     string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Entity, e.ID, e.Reason)
}

// ValidateRule checks the structural invariants of a golden rule:
// non-empty primary signature, non-empty prediction list, confidence
// base within [0,100] and a known importance tier.
func ValidateRule(rule *models.Rule) error {
	if rule == nil {
		return &Error{Entity: "rule", ID: "?", Reason: "rule cannot be nil"}
	}
	id := fmt.Sprintf("%d", rule.ID)

	if rule.Name == "" {
		return &Error{Entity: "rule", ID: id, Reason: "name cannot be empty"}
	}
	if len(rule.PrimaryOdds) == 0 {
		return &Error{Entity: "rule", ID: id, Reason: "primary_odds cannot be empty"}
	}
	if len(rule.Predictions) == 0 {
		return &Error{Entity: "rule", ID: id, Reason: "predictions cannot be empty"}
	}
	if rule.ConfidenceBase < 0 || rule.ConfidenceBase > 100 {
		return &Error{Entity: "rule", ID: id, Reason: fmt.Sprintf("confidence_base %d out of range [0,100]", rule.ConfidenceBase)}
	}
	if !rule.Importance.Valid() {
		return &Error{Entity: "rule", ID: id, Reason: fmt.Sprintf("unknown importance %q", rule.Importance)}
	}
	for label, val := range rule.PrimaryOdds {
		if val <= 1.0 {
			return &Error{Entity: "rule", ID: id, Reason: fmt.Sprintf("primary odds %q = %.2f is not a valid decimal odd", label, val)}
		}
	}
	return nil
}

// ValidateCandidate checks a candidate rule before sandbox evaluation.
func ValidateCandidate(c *models.CandidateRule) error {
	if c == nil {
		return &Error{Entity: "candidate_rule", ID: "?", Reason: "candidate cannot be nil"}
	}
	if c.CandidateID == "" {
		return &Error{Entity: "candidate_rule", ID: "?", Reason: "candidate_id cannot be empty"}
	}
	if c.Name == "" {
		return &Error{Entity: "candidate_rule", ID: c.CandidateID, Reason: "name cannot be empty"}
	}
	if c.PredictionText == "" {
		return &Error{Entity: "candidate_rule", ID: c.CandidateID, Reason: "prediction cannot be empty"}
	}
	if c.ConfidenceBase < 0 || c.ConfidenceBase > 100 {
		return &Error{Entity: "candidate_rule", ID: c.CandidateID, Reason: fmt.Sprintf("confidence_base %d out of range [0,100]", c.ConfidenceBase)}
	}
	if len(c.Conditions.Odds) == 0 && len(c.Conditions.Leagues) == 0 {
		return &Error{Entity: "candidate_rule", ID: c.CandidateID, Reason: "conditions cannot be empty"}
	}
	for key, r := range c.Conditions.Odds {
		if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			return &Error{Entity: "candidate_rule", ID: c.CandidateID, Reason: fmt.Sprintf("odds range %q has min > max", key)}
		}
	}
	return nil
}
