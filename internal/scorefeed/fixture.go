package scorefeed

import (
	"github.com/westbet/westbetpro/internal/pkg/enums"
	"github.com/westbet/westbetpro/internal/pkg/models"
)

// Fixture is one feed fixture reduced to what grading needs.
type Fixture struct {
	FixtureID int64           `json:"fixture_id"`
	HomeTeam  string          `json:"home_team"`
	AwayTeam  string          `json:"away_team"`
	League    string          `json:"league"`
	State     enums.MatchState `json:"state"`
	Elapsed   int             `json:"elapsed"`
	FullTime  models.Score    `json:"fulltime"`
	HalfTime  models.Score    `json:"halftime"`
}

// statusStates maps the feed's short status codes to match states.
// Unlisted codes map to MatchStateUnknown.
var statusStates = map[string]enums.MatchState{
	"TBD":  enums.StateNotStarted, // time to be defined
	"NS":   enums.StateNotStarted,
	"1H":   enums.StateLive,
	"HT":   enums.StateHalftime,
	"2H":   enums.StateLive,
	"ET":   enums.StateLive, // extra time
	"P":    enums.StateLive, // penalties in progress
	"LIVE": enums.StateLive,
	"FT":   enums.StateFinished,
	"AET":  enums.StateFinished,
	"PEN":  enums.StateFinished,
	"BT":   enums.StateFinished, // break before extra time, scores final enough to grade
	"SUSP": enums.StateSuspended,
	"INT":  enums.StateInterrupted,
	"PST":  enums.StatePostponed,
	"CANC": enums.StateCancelled,
	"ABD":  enums.StateAbandoned,
	"AWD":  enums.StateAwarded,
	"WO":   enums.StateWalkover,
}

// StateForStatus translates a feed status code.
func StateForStatus(code string) enums.MatchState {
	if state, ok := statusStates[code]; ok {
		return state
	}
	return enums.StateUnknown
}

// Wire types for the feed's fixtures endpoint.

type apiEnvelope struct {
	Response []apiFixture `json:"response"`
}

type apiFixture struct {
	Fixture struct {
		ID     int64 `json:"id"`
		Status struct {
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Teams struct {
		Home struct {
			Name string `json:"name"`
		} `json:"home"`
		Away struct {
			Name string `json:"name"`
		} `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
	Score struct {
		Halftime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"halftime"`
	} `json:"score"`
}

func (f *apiFixture) toFixture() Fixture {
	fixture := Fixture{
		FixtureID: f.Fixture.ID,
		HomeTeam:  f.Teams.Home.Name,
		AwayTeam:  f.Teams.Away.Name,
		League:    f.League.Name,
		State:     StateForStatus(f.Fixture.Status.Short),
	}
	if f.Fixture.Status.Elapsed != nil {
		fixture.Elapsed = *f.Fixture.Status.Elapsed
	}
	if f.Goals.Home != nil && f.Goals.Away != nil {
		fixture.FullTime = models.Score{Home: *f.Goals.Home, Away: *f.Goals.Away, Known: true}
	}
	if f.Score.Halftime.Home != nil && f.Score.Halftime.Away != nil {
		fixture.HalfTime = models.Score{Home: *f.Score.Halftime.Home, Away: *f.Score.Halftime.Away, Known: true}
	}
	return fixture
}
