package results

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

// betKind classifies a parsed prediction text.
type betKind int

const (
	kindOverUnder betKind = iota
	kindBothScore
	kindMatchResult
)

// betSide selects whose goals an over/under counts.
type betSide int

const (
	sideTotal betSide = iota
	sideHome
	sideAway
)

// Bet is one parsed prediction text. The grammar covers the whole rule
// table: goal totals ("MS 2.5 ÜST"), team totals ("MS DEP 0.5 ÜST"),
// both-teams-scored ("KG VAR", "İY KG VAR"), and 1X2 ("1", "X", "2"),
// each in full-time or half-time scope.
type Bet struct {
	Halftime  bool
	Kind      betKind
	Side      betSide
	Threshold float64
	Over      bool   // over/under direction
	BothYes   bool   // KG VAR vs KG YOK
	Result    string // "1", "X" or "2"
}

// ErrUnsupportedBet marks prediction texts outside the grammar, e.g.
// exact-score bets like "İY SKOR 1-1".
type ErrUnsupportedBet struct {
	Text string
}

func (e *ErrUnsupportedBet) Error() string {
	return fmt.Sprintf("unsupported prediction text %q", e.Text)
}

// ParseBet parses a prediction text. Token order is free ("MS EV 0.5
// ÜST" and "EV MS 0.5 ÜST" are the same bet); ascii spellings IY/UST
// are accepted alongside İY/ÜST.
func ParseBet(text string) (Bet, error) {
	tokens := strings.Fields(strings.TrimSpace(text))
	if len(tokens) == 0 {
		return Bet{}, &ErrUnsupportedBet{Text: text}
	}

	// Bare 1X2 bets ("0" is an alias for the draw).
	if len(tokens) == 1 {
		switch tokens[0] {
		case "1", "X", "2":
			return Bet{Kind: kindMatchResult, Result: tokens[0]}, nil
		case "0":
			return Bet{Kind: kindMatchResult, Result: "X"}, nil
		}
	}

	var bet Bet
	var hasDirection, hasThreshold, hasKG, hasBothWord bool

	for _, token := range tokens {
		switch token {
		case "MS", "MAÇ", "MAC":
			// Full-time is the default scope.
		case "İY", "IY":
			bet.Halftime = true
		case "EV":
			bet.Side = sideHome
		case "DEP":
			bet.Side = sideAway
		case "ÜST", "UST":
			bet.Over = true
			hasDirection = true
		case "ALT":
			bet.Over = false
			hasDirection = true
		case "KG":
			hasKG = true
		case "VAR":
			bet.BothYes = true
			hasBothWord = true
		case "YOK":
			bet.BothYes = false
			hasBothWord = true
		default:
			if v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64); err == nil {
				bet.Threshold = v
				hasThreshold = true
				continue
			}
			return Bet{}, &ErrUnsupportedBet{Text: text}
		}
	}

	switch {
	case hasKG && hasBothWord:
		bet.Kind = kindBothScore
		return bet, nil
	case hasThreshold && hasDirection:
		bet.Kind = kindOverUnder
		return bet, nil
	}
	return Bet{}, &ErrUnsupportedBet{Text: text}
}

// Grade evaluates the bet against final scores. Half-time scoped bets
// without a known half-time score are indeterminate, never guessed from
// the full-time score.
func (b Bet) Grade(fullTime, halfTime models.Score) enums.Outcome {
	score := fullTime
	if b.Halftime {
		if !halfTime.Known {
			return enums.OutcomeIndeterminate
		}
		score = halfTime
	}

	switch b.Kind {
	case kindOverUnder:
		var value int
		switch b.Side {
		case sideHome:
			value = score.Home
		case sideAway:
			value = score.Away
		default:
			value = score.Total()
		}
		if b.Over {
			return outcomeOf(float64(value) > b.Threshold)
		}
		return outcomeOf(float64(value) < b.Threshold)

	case kindBothScore:
		both := score.Home > 0 && score.Away > 0
		return outcomeOf(both == b.BothYes)

	case kindMatchResult:
		switch b.Result {
		case "1":
			return outcomeOf(score.Home > score.Away)
		case "X":
			return outcomeOf(score.Home == score.Away)
		case "2":
			return outcomeOf(score.Home < score.Away)
		}
	}
	return enums.OutcomeIndeterminate
}

// GradeBet parses and grades a prediction text in one step.
func GradeBet(text string, fullTime, halfTime models.Score) (enums.Outcome, error) {
	bet, err := ParseBet(text)
	if err != nil {
		return enums.OutcomeIndeterminate, err
	}
	return bet.Grade(fullTime, halfTime), nil
}

func outcomeOf(won bool) enums.Outcome {
	if won {
		return enums.OutcomeWon
	}
	return enums.OutcomeLost
}
