package validation

import (
	"testing"

	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

func validRule() *models.Rule {
	return &models.Rule{
		ID:             30,
		Name:           "4-5 gol 2.33",
		PrimaryOdds:    map[string]float64{"4-5": 2.33},
		Predictions:    []string{"İY 0.5 ÜST"},
		ConfidenceBase: 90,
		Importance:     enums.ImportanceImportant,
	}
}

func TestValidateRule(t *testing.T) {
	if err := ValidateRule(validRule()); err != nil {
		t.Fatalf("valid rule rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.Rule)
	}{
		{"empty primary odds", func(r *models.Rule) { r.PrimaryOdds = nil }},
		{"empty predictions", func(r *models.Rule) { r.Predictions = nil }},
		{"confidence above 100", func(r *models.Rule) { r.ConfidenceBase = 101 }},
		{"negative confidence", func(r *models.Rule) { r.ConfidenceBase = -1 }},
		{"unknown importance", func(r *models.Rule) { r.Importance = "critical" }},
		{"odd below 1.0", func(r *models.Rule) { r.PrimaryOdds = map[string]float64{"4-5": 0.95} }},
	}
	for _, tt := range tests {
		r := validRule()
		tt.mutate(r)
		if err := ValidateRule(r); err == nil {
			t.Errorf("%s: expected validation error, got nil", tt.name)
		}
	}
}

func TestValidateCandidate_EmptyConditions(t *testing.T) {
	c := &models.CandidateRule{
		CandidateID:    "CAND-MS-001",
		Name:           "test",
		PredictionText: "MS 2.5 ÜST",
		ConfidenceBase: 82,
	}
	if err := ValidateCandidate(c); err == nil {
		t.Error("candidate with empty conditions should be rejected")
	}
}

func TestValidateCandidate_InvertedRange(t *testing.T) {
	min, max := 5.0, 2.5
	c := &models.CandidateRule{
		CandidateID:    "CAND-MS-001",
		Name:           "test",
		PredictionText: "MS 2.5 ÜST",
		ConfidenceBase: 82,
		Conditions: models.Conditions{
			Odds: map[string]models.OddsRange{
				"oran_2": {Min: &min, Max: &max},
			},
		},
	}
	if err := ValidateCandidate(c); err == nil {
		t.Error("candidate with min > max should be rejected")
	}
}
