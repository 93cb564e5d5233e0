package models

import (
	"testing"
	"time"
)

func TestNaturalMatchKey_SameFixtureDifferentCasing(t *testing.T) {
	date := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)

	k1 := NaturalMatchKey("Super Lig", "Galatasaray", "Fenerbahce", date)
	k2 := NaturalMatchKey("  super  lig ", "GALATASARAY", "fenerbahce", date)

	if k1 != k2 {
		t.Errorf("same fixture should have same key: %q vs %q", k1, k2)
	}
}

func TestNaturalMatchKey_SeparatorSafety(t *testing.T) {
	date := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)

	k := NaturalMatchKey("Liga|A", "Team/One", "Team\\Two", date)
	want := "liga a|team one|team two|2026-02-13"
	if k != want {
		t.Errorf("NaturalMatchKey = %q, want %q", k, want)
	}
}

func TestNaturalMatchKey_ZeroDate(t *testing.T) {
	k := NaturalMatchKey("lig", "a", "b", time.Time{})
	want := "lig|a|b|unknown-date"
	if k != want {
		t.Errorf("NaturalMatchKey = %q, want %q", k, want)
	}
}
