package rules

import (
	"testing"

	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

func TestCanonicalOddsKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"4-5", "oran_45"},
		{"2,5 Ü", "oran_25_ust"},
		{"3,5 A", "oran_35_alt"},
		{"VAR", "oran_var"},
		{"İY 0.5", "iy_05"},
		// Unknown labels slug deterministically.
		{"SOME LABEL", "some_label"},
	}
	for _, tt := range tests {
		if got := CanonicalOddsKey(tt.label); got != tt.want {
			t.Errorf("CanonicalOddsKey(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestSignatureMatches_Tolerance(t *testing.T) {
	signature := map[string]float64{"4-5": 2.33}

	tests := []struct {
		name      string
		snapshot  map[string]float64
		tolerance float64
		want      bool
	}{
		{"exact match", map[string]float64{"oran_45": 2.33}, 0, true},
		{"off by 0.01 with zero tolerance", map[string]float64{"oran_45": 2.34}, 0, false},
		{"off by 0.01 within tolerance", map[string]float64{"oran_45": 2.34}, 0.01, true},
		{"just outside tolerance", map[string]float64{"oran_45": 2.345}, 0.01, false},
		{"missing key fails", map[string]float64{"oran_25_ust": 2.33}, 0.5, false},
		{"empty snapshot fails", nil, 0.5, false},
	}
	for _, tt := range tests {
		if got := SignatureMatches(tt.snapshot, signature, tt.tolerance); got != tt.want {
			t.Errorf("%s: SignatureMatches() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestExclusionTriggered(t *testing.T) {
	exclude := map[string]float64{"VAR": 1.50}

	if !ExclusionTriggered(map[string]float64{"oran_var": 1.50}, exclude, 0) {
		t.Error("exact exclude value must trigger")
	}
	if ExclusionTriggered(map[string]float64{"oran_var": 1.60}, exclude, 0) {
		t.Error("different value must not trigger")
	}
	// Unlike a normal signature, a missing key does not trigger.
	if ExclusionTriggered(map[string]float64{"oran_45": 3.15}, exclude, 0) {
		t.Error("missing exclude key must not trigger")
	}
}

func TestRuleMatches(t *testing.T) {
	rule := &models.Rule{
		ID:             9,
		Name:           "4-5 gol 3.15 (KG VAR 1.50 HARİÇ)",
		PrimaryOdds:    map[string]float64{"4-5": 3.15},
		ExcludeOdds:    map[string]float64{"VAR": 1.50},
		Predictions:    []string{"İY 0.5 ÜST"},
		ConfidenceBase: 88,
		Importance:     enums.ImportanceImportant,
	}

	tests := []struct {
		name     string
		snapshot map[string]float64
		want     bool
	}{
		{"primary only", map[string]float64{"oran_45": 3.15}, true},
		{"exclude triggers", map[string]float64{"oran_45": 3.15, "oran_var": 1.50}, false},
		{"exclude value differs", map[string]float64{"oran_45": 3.15, "oran_var": 1.80}, true},
		{"primary misses", map[string]float64{"oran_45": 3.16}, false},
	}
	for _, tt := range tests {
		if got := RuleMatches(rule, tt.snapshot, 0); got != tt.want {
			t.Errorf("%s: RuleMatches() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRuleMatches_Secondary(t *testing.T) {
	rule := &models.Rule{
		ID:             48,
		Name:           "4-5 gol 2.51 + 2.5 üst 1.23",
		PrimaryOdds:    map[string]float64{"4-5": 2.51},
		SecondaryOdds:  map[string]float64{"2,5 Ü": 1.23},
		Predictions:    []string{"İY 0.5 ÜST"},
		ConfidenceBase: 90,
	}

	if RuleMatches(rule, map[string]float64{"oran_45": 2.51}, 0) {
		t.Error("missing secondary key must fail the rule")
	}
	if !RuleMatches(rule, map[string]float64{"oran_45": 2.51, "oran_25_ust": 1.23}, 0) {
		t.Error("primary plus secondary must match")
	}
}
