package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

func TestFormatAdvisory(t *testing.T) {
	text := formatAdvisory(&models.Advisory{
		SuggestionID:   "SUG-20260301-R30",
		Severity:       "high",
		Category:       "rule_performance",
		Title:          "Rule Degradation Detected",
		Description:    "Rule has dropped to 60.0% success rate.",
		Actions:        []string{"Lower confidence_base by 24 points", "Consider disabling the rule"},
		ActionRequired: true,
	})

	for _, want := range []string{
		"🔴",
		"Rule Degradation Detected",
		"rule_performance | severity: high",
		"Lower confidence\\_base by 24 points",
		"Action required",
		"`SUG-20260301-R30`",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("advisory message missing %q:\n%s", want, text)
		}
	}
}

func TestFormatTestRun(t *testing.T) {
	text := formatTestRun(&models.TestRun{
		TestRunID:            "TEST-20260301-120000-abcd1234",
		TestName:             "Test of MS 2.5 Üst",
		CandidateID:          "CAND-MS-001",
		BaselineMode:         enums.BaselineGoldenRules,
		PeriodStart:          time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		PeriodEnd:            time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		TotalMatches:         40,
		CandidatePredictions: 40,
		CandidateWins:        36,
		CandidateWinRate:     90,
		BaselinePredictions:  40,
		BaselineWins:         28,
		BaselineWinRate:      70,
		WinRateDelta:         20,
		PValue:               0.0058,
		IsSignificant:        true,
		Recommendation:       enums.RecommendApprove,
		Reason:               "+20.0% improvement, ready for production",
	})

	for _, want := range []string{
		"Sandbox Test Completed",
		"36 wins / 40 predictions (90.0%)",
		"28 wins / 40 predictions (70.0%)",
		"Δ +20.0% | p=0.0058 (significant)",
		"Recommendation: approve",
		"2025-12-31 → 2026-02-28 (40 matches)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("test-run message missing %q:\n%s", want, text)
		}
	}
}
