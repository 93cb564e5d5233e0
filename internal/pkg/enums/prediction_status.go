package enums

// PredictionStatus is the lifecycle state of a stored prediction.
// Transitions: active predictions start with ResultPending and move to
// ResultWon or ResultLost exactly once; terminal states never regress.
type PredictionStatus string

const (
	StatusPending PredictionStatus = "pending"
	StatusActive  PredictionStatus = "active"
	StatusWon     PredictionStatus = "won"
	StatusLost    PredictionStatus = "lost"
)

// Terminal reports whether the status admits no further transition.
func (s PredictionStatus) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// CanTransitionTo reports whether the pending→{won,lost} single-shot
// transition allows moving from s to next.
func (s PredictionStatus) CanTransitionTo(next PredictionStatus) bool {
	if s.Terminal() {
		return false
	}
	switch next {
	case StatusWon, StatusLost:
		return true
	}
	return false
}

// String returns string representation
func (s PredictionStatus) String() string {
	return string(s)
}

// Outcome is the graded result of a single prediction text against scores.
type Outcome string

const (
	OutcomeWon           Outcome = "won"
	OutcomeLost          Outcome = "lost"
	OutcomeIndeterminate Outcome = "indeterminate"
)

// String returns string representation
func (o Outcome) String() string {
	return string(o)
}
