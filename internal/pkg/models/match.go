package models

import (
	"time"
)

// Score is one side-by-side scoreline. Values are only meaningful when
// Known is true (a 0-0 half-time score is not the same as no score).
type Score struct {
	Home  int  `json:"home"`
	Away  int  `json:"away"`
	Known bool `json:"known"`
}

// Total returns home+away goals.
func (s Score) Total() int {
	return s.Home + s.Away
}

// Match is an internally stored fixture: identity, the odds snapshot it
// was ingested with, and (eventually) its scores. Created at ingestion,
// mutated only to attach scores once known.
type Match struct {
	ID        string             `json:"id"`
	HomeTeam  string             `json:"home_team"`
	AwayTeam  string             `json:"away_team"`
	League    string             `json:"league"`
	MatchDate time.Time          `json:"match_date"`
	MatchTime string             `json:"match_time,omitempty"` // "HH:MM", optional
	Odds      map[string]float64 `json:"opening_odds,omitempty"` // canonical market key -> decimal odds
	FullTime  Score              `json:"fulltime"`
	HalfTime  Score              `json:"halftime"`
}

// HasOdds reports whether the fixture carries an odds snapshot.
func (m *Match) HasOdds() bool {
	return len(m.Odds) > 0
}
