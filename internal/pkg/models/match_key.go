package models

import (
	"strings"
	"time"
)

// NaturalMatchKey builds a stable fixture identifier from the natural
// key (league, home team, away team, date). Two runs over overlapping
// date ranges produce the same key for the same fixture, which makes
// prediction upserts order-independent.
//
// Format: league|home|away|date
func NaturalMatchKey(league, homeTeam, awayTeam string, matchDate time.Time) string {
	l := normalizeKeyPart(league)
	home := normalizeKeyPart(homeTeam)
	away := normalizeKeyPart(awayTeam)

	d := "unknown-date"
	if !matchDate.IsZero() {
		d = matchDate.UTC().Format("2006-01-02")
	}

	return l + "|" + home + "|" + away + "|" + d
}

func normalizeKeyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	// Key parts must not contain the separator or path-ish characters.
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ReplaceAll(s, "\\", " ")
	s = strings.ReplaceAll(s, "|", " ")
	s = strings.Join(strings.Fields(s), " ")
	return s
}
