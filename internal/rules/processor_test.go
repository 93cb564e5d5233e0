package rules

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog([]models.Rule{
		{
			ID:             1,
			Name:           "first",
			PrimaryOdds:    map[string]float64{"4-5": 2.50},
			Predictions:    []string{"MS 1.5 ÜST", "KG VAR"},
			ConfidenceBase: 88,
			Importance:     enums.ImportanceImportant,
		},
		{
			ID:             2,
			Name:           "second",
			PrimaryOdds:    map[string]float64{"4-5": 2.50},
			SecondaryOdds:  map[string]float64{"2,5 Ü": 1.40},
			Predictions:    []string{"MS 2.5 ÜST"},
			ConfidenceBase: 90,
			Importance:     enums.ImportanceNormal,
		},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}
	return catalog
}

func TestProcessor_Evaluate_TwoRules(t *testing.T) {
	p := NewProcessor(testCatalog(t), 85, 0, 1)

	match := models.Match{
		ID:        "lig|a|b|2026-03-01",
		HomeTeam:  "A",
		AwayTeam:  "B",
		League:    "lig",
		MatchDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Odds:      map[string]float64{"oran_45": 2.50, "oran_25_ust": 1.40},
	}

	opp := p.Evaluate(&match)
	if opp == nil {
		t.Fatal("expected an opportunity, got nil")
	}

	// Both rules score 93 for their first prediction (88+2+2+1 and
	// 90+0+2+1); the tie goes to the rule listed first in the catalog.
	if opp.Prediction.Confidence != 93 {
		t.Errorf("top confidence = %d, want 93", opp.Prediction.Confidence)
	}
	if opp.Prediction.RuleID != 1 {
		t.Errorf("top rule = %d, want catalog-first rule 1 on tie", opp.Prediction.RuleID)
	}
	if len(opp.MatchedRules) != 2 {
		t.Errorf("matched rules = %d, want 2", len(opp.MatchedRules))
	}
	// All remaining predictions are kept, untruncated.
	if len(opp.Alternatives) != 2 {
		t.Errorf("alternatives = %d, want 2", len(opp.Alternatives))
	}
}

func TestProcessor_Evaluate_ConfidenceGate(t *testing.T) {
	p := NewProcessor(testCatalog(t), 95, 0, 1)
	match := models.Match{
		ID:   "m1",
		Odds: map[string]float64{"oran_45": 2.50},
	}
	if opp := p.Evaluate(&match); opp != nil {
		t.Errorf("confidence below gate must yield no opportunity, got %+v", opp)
	}
}

func TestProcessor_Evaluate_NoOdds(t *testing.T) {
	p := NewProcessor(testCatalog(t), 85, 0, 1)
	if opp := p.Evaluate(&models.Match{ID: "m1"}); opp != nil {
		t.Error("fixture without odds must be skipped")
	}
}

func TestProcessor_Process_Deterministic(t *testing.T) {
	p := NewProcessor(testCatalog(t), 85, 0, 4)

	matches := []models.Match{
		{ID: "m1", Odds: map[string]float64{"oran_45": 2.50}},
		{ID: "m2", Odds: map[string]float64{"oran_45": 9.99}}, // no rule fires
		{ID: "m3", Odds: map[string]float64{"oran_45": 2.50, "oran_25_ust": 1.40}},
	}

	first, err := p.Process(context.Background(), matches)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("opportunities = %d, want 2", len(first))
	}
	if first[0].MatchID != "m1" || first[1].MatchID != "m3" {
		t.Errorf("output order %q, %q does not follow input order", first[0].MatchID, first[1].MatchID)
	}

	// Same input, same output: the evaluation is pure.
	second, err := p.Process(context.Background(), matches)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated runs over identical input must be identical")
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error: %v", err)
	}
	if catalog.Len() == 0 {
		t.Fatal("built-in catalog is empty")
	}
	if r := catalog.ByID(30); r == nil || r.Name != "4-5 gol 2.33" {
		t.Errorf("ByID(30) = %+v, want the 2.33 rule", r)
	}
}
