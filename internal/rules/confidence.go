package rules

import (
	"github.com/westbet/westbetpro/internal/pkg/models"
)

// Confidence scores one of a matched rule's predictions. Deterministic:
// base plus importance bonus, plus a rarity bonus for rules with few
// predictions, plus one point for the rule's first-listed prediction.
// Capped at 100.
func Confidence(rule *models.Rule, predictionIndex int) int {
	score := rule.ConfidenceBase

	score += rule.Importance.ConfidenceBonus()

	// Fewer predictions means a sharper pattern.
	switch n := len(rule.Predictions); {
	case n <= 2:
		score += 2
	case n <= 4:
		score += 1
	}

	if predictionIndex == 0 {
		score += 1
	}

	if score > 100 {
		score = 100
	}
	return score
}
