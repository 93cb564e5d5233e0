package results

import (
	"testing"

	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

func score(home, away int) models.Score {
	return models.Score{Home: home, Away: away, Known: true}
}

func TestGradeBet(t *testing.T) {
	unknown := models.Score{}

	tests := []struct {
		bet      string
		fullTime models.Score
		halfTime models.Score
		want     enums.Outcome
	}{
		// Full-time totals: strictly over / strictly under.
		{"MS 1.5 ÜST", score(2, 1), score(1, 0), enums.OutcomeWon},
		{"MS 2.5 ÜST", score(2, 0), score(1, 0), enums.OutcomeLost},
		{"MS 2.5 ALT", score(1, 1), score(0, 0), enums.OutcomeWon},
		{"MS 3.5 ALT", score(2, 2), score(1, 1), enums.OutcomeLost},
		{"MS 0.5 ÜST", score(0, 0), score(0, 0), enums.OutcomeLost},

		// Half-time totals need a known half-time score.
		{"İY 0.5 ÜST", score(2, 1), score(1, 0), enums.OutcomeWon},
		{"İY 0.5 ÜST", score(2, 1), score(0, 0), enums.OutcomeLost},
		{"İY 0.5 ÜST", score(2, 1), unknown, enums.OutcomeIndeterminate},
		{"İY 1.5 ÜST", score(3, 0), score(2, 0), enums.OutcomeWon},

		// Team-specific totals, both scopes and orders.
		{"MS EV 1.5 ÜST", score(2, 1), score(1, 0), enums.OutcomeWon},
		{"EV MS 0.5 ÜST", score(1, 0), score(0, 0), enums.OutcomeWon},
		{"MS DEP 0.5 ÜST", score(2, 0), score(1, 0), enums.OutcomeLost},
		{"İY DEP 0.5 ÜST", score(1, 2), score(0, 1), enums.OutcomeWon},
		{"İY EV 0.5 ÜST", score(2, 1), unknown, enums.OutcomeIndeterminate},

		// Both teams scored.
		{"KG VAR", score(2, 1), score(1, 0), enums.OutcomeWon},
		{"KG VAR", score(2, 0), score(1, 0), enums.OutcomeLost},
		{"KG YOK", score(2, 0), score(1, 0), enums.OutcomeWon},
		{"İY KG VAR", score(2, 2), score(1, 1), enums.OutcomeWon},
		{"İY KG VAR", score(2, 2), score(1, 0), enums.OutcomeLost},
		{"MS KG VAR", score(1, 1), score(0, 0), enums.OutcomeWon},

		// 1X2.
		{"1", score(2, 1), score(1, 0), enums.OutcomeWon},
		{"1", score(1, 1), score(0, 0), enums.OutcomeLost},
		{"X", score(1, 1), score(0, 0), enums.OutcomeWon},
		{"2", score(0, 1), score(0, 0), enums.OutcomeWon},

		// Ascii spellings.
		{"IY 0.5 UST", score(2, 1), score(1, 0), enums.OutcomeWon},
	}
	for _, tt := range tests {
		got, err := GradeBet(tt.bet, tt.fullTime, tt.halfTime)
		if err != nil {
			t.Errorf("GradeBet(%q) unexpected error: %v", tt.bet, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GradeBet(%q, ft=%d-%d, ht=%+v) = %q, want %q",
				tt.bet, tt.fullTime.Home, tt.fullTime.Away, tt.halfTime, got, tt.want)
		}
	}
}

func TestParseBet_Unsupported(t *testing.T) {
	for _, text := range []string{"İY SKOR 1-1", "", "HANDIKAP 1", "MS ÜST", "1.5 MS"} {
		if _, err := ParseBet(text); err == nil {
			t.Errorf("ParseBet(%q) should fail", text)
		}
	}
}

func TestParseBet_ZeroMeansDraw(t *testing.T) {
	bet, err := ParseBet("0")
	if err != nil {
		t.Fatalf("ParseBet(\"0\") error: %v", err)
	}
	if got := bet.Grade(score(1, 1), score(0, 0)); got != enums.OutcomeWon {
		t.Errorf("draw bet on 1-1 = %q, want won", got)
	}
}
