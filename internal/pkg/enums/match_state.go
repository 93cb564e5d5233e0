package enums

// MatchState is the semantic state of an externally reported fixture.
// The mapping from feed status codes to these states lives at the
// scorefeed boundary, not in business logic.
type MatchState string

const (
	StateNotStarted  MatchState = "not_started"
	StateLive        MatchState = "live"
	StateHalftime    MatchState = "halftime"
	StateFinished    MatchState = "finished"
	StateSuspended   MatchState = "suspended"
	StateInterrupted MatchState = "interrupted"
	StatePostponed   MatchState = "postponed"
	StateCancelled   MatchState = "cancelled"
	StateAbandoned   MatchState = "abandoned"
	StateAwarded     MatchState = "awarded"
	StateWalkover    MatchState = "walkover"
	StateUnknown     MatchState = "unknown"
)

// Finished reports whether the fixture has a final score.
func (s MatchState) Finished() bool {
	return s == StateFinished
}

// String returns string representation
func (s MatchState) String() string {
	return string(s)
}

// SkipReason records why the tracker could not grade a pending
// prediction. Assigned at the point the skip decision is made.
type SkipReason string

const (
	SkipFixtureUnresolved SkipReason = "fixture_unresolved"
	SkipMatchNotFinished  SkipReason = "match_not_finished"
	SkipIndeterminate     SkipReason = "indeterminate_grammar"
	SkipFeedError         SkipReason = "feed_error"
)

// String returns string representation
func (r SkipReason) String() string {
	return string(r)
}
