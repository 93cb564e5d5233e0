package rules

import (
	"testing"

	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		name  string
		rule  models.Rule
		index int
		want  int
	}{
		{
			// 85 base + 2 important + 2 rarity (2 predictions) + 1 primary slot.
			name: "important rule primary slot",
			rule: models.Rule{
				ConfidenceBase: 85,
				Importance:     enums.ImportanceImportant,
				Predictions:    []string{"MS 1.5 ÜST", "KG VAR"},
			},
			index: 0,
			want:  90,
		},
		{
			name: "same rule secondary slot",
			rule: models.Rule{
				ConfidenceBase: 85,
				Importance:     enums.ImportanceImportant,
				Predictions:    []string{"MS 1.5 ÜST", "KG VAR"},
			},
			index: 1,
			want:  89,
		},
		{
			// 90 + 3 very important + 1 rarity (4 predictions) + 1 slot.
			name: "very important mid rarity",
			rule: models.Rule{
				ConfidenceBase: 90,
				Importance:     enums.ImportanceVeryImportant,
				Predictions:    []string{"a", "b", "c", "d"},
			},
			index: 0,
			want:  95,
		},
		{
			// No rarity bonus above 4 predictions, no importance bonus.
			name: "normal rule broad predictions",
			rule: models.Rule{
				ConfidenceBase: 88,
				Importance:     enums.ImportanceNormal,
				Predictions:    []string{"a", "b", "c", "d", "e"},
			},
			index: 2,
			want:  88,
		},
		{
			name: "capped at 100",
			rule: models.Rule{
				ConfidenceBase: 99,
				Importance:     enums.ImportanceVeryImportant,
				Predictions:    []string{"a"},
			},
			index: 0,
			want:  100,
		},
	}
	for _, tt := range tests {
		if got := Confidence(&tt.rule, tt.index); got != tt.want {
			t.Errorf("%s: Confidence() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
