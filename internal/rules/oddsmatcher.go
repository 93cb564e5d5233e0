package rules

import (
	"math"
	"strings"

	"github.com/westbet/westbetpro/internal/pkg/models"
)

// oddsKeyTable translates a rule's odds label to the canonical snapshot
// key. Must stay in sync with the keys used at match ingestion.
// Example: "2,5 Ü" -> "oran_25_ust".
var oddsKeyTable = map[string]string{
	"4-5":    "oran_45",
	"2,5 Ü":  "oran_25_ust",
	"2,5 A":  "oran_25_alt",
	"3,5 Ü":  "oran_35_ust",
	"3,5 A":  "oran_35_alt",
	"2-3":    "oran_23",
	"VAR":    "oran_var",
	"1":      "oran_1",
	"0":      "oran_0",
	"2":      "oran_2",
	"İY 0.5": "iy_05",
	"İY 1.5": "iy_15",
	"MS 0.5": "ms_05",
	"MS 1.5": "ms_15",
	"MS 2.5": "ms_25",
	"MS 3.5": "ms_35",
}

// CanonicalOddsKey maps a rule odds label to its snapshot key. Unknown
// labels fall back to a deterministic slug: lowercase, spaces to
// underscores.
func CanonicalOddsKey(label string) string {
	if key, ok := oddsKeyTable[label]; ok {
		return key
	}
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

// SignatureMatches reports whether every (label, required) pair in the
// signature is satisfied by the snapshot within tolerance. A missing
// snapshot key fails the signature.
func SignatureMatches(snapshot map[string]float64, signature map[string]float64, tolerance float64) bool {
	if len(snapshot) == 0 {
		return false
	}
	for label, required := range signature {
		actual, ok := snapshot[CanonicalOddsKey(label)]
		if !ok {
			return false
		}
		if math.Abs(actual-required) > tolerance {
			return false
		}
	}
	return true
}

// ExclusionTriggered reports whether any pair of an exclude signature is
// satisfied by the snapshot within tolerance. Missing snapshot keys are
// skipped (treated as non-conflicting).
func ExclusionTriggered(snapshot map[string]float64, exclude map[string]float64, tolerance float64) bool {
	if len(snapshot) == 0 {
		return false
	}
	for label, required := range exclude {
		actual, ok := snapshot[CanonicalOddsKey(label)]
		if !ok {
			continue
		}
		if math.Abs(actual-required) <= tolerance {
			return true
		}
	}
	return false
}

// RuleMatches reports whether a fixture's odds snapshot satisfies a
// rule: primary matches, secondary (when present) matches, and the
// exclude signature (when present) does not trigger.
func RuleMatches(rule *models.Rule, snapshot map[string]float64, tolerance float64) bool {
	if !SignatureMatches(snapshot, rule.PrimaryOdds, tolerance) {
		return false
	}
	if len(rule.SecondaryOdds) > 0 && !SignatureMatches(snapshot, rule.SecondaryOdds, tolerance) {
		return false
	}
	if len(rule.ExcludeOdds) > 0 && ExclusionTriggered(snapshot, rule.ExcludeOdds, tolerance) {
		return false
	}
	return true
}
