package scorefeed

import (
	"encoding/json"
	"testing"

	"github.com/westbet/westbetpro/internal/pkg/enums"
)

func TestStateForStatus(t *testing.T) {
	tests := []struct {
		code string
		want enums.MatchState
	}{
		{"NS", enums.StateNotStarted},
		{"1H", enums.StateLive},
		{"HT", enums.StateHalftime},
		{"FT", enums.StateFinished},
		{"AET", enums.StateFinished},
		{"PEN", enums.StateFinished},
		{"PST", enums.StatePostponed},
		{"WO", enums.StateWalkover},
		{"???", enums.StateUnknown},
	}
	for _, tt := range tests {
		if got := StateForStatus(tt.code); got != tt.want {
			t.Errorf("StateForStatus(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFixtureDecoding(t *testing.T) {
	payload := `{
		"response": [{
			"fixture": {"id": 12345, "status": {"short": "FT", "elapsed": 90}},
			"league": {"name": "Süper Lig"},
			"teams": {"home": {"name": "Galatasaray"}, "away": {"name": "Fenerbahçe"}},
			"goals": {"home": 2, "away": 1},
			"score": {"halftime": {"home": 1, "away": 0}}
		}]
	}`

	var envelope apiEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(envelope.Response) != 1 {
		t.Fatalf("fixtures = %d, want 1", len(envelope.Response))
	}

	f := envelope.Response[0].toFixture()
	if f.FixtureID != 12345 || f.HomeTeam != "Galatasaray" || f.AwayTeam != "Fenerbahçe" {
		t.Errorf("identity fields wrong: %+v", f)
	}
	if f.State != enums.StateFinished {
		t.Errorf("state = %q, want finished", f.State)
	}
	if !f.FullTime.Known || f.FullTime.Home != 2 || f.FullTime.Away != 1 {
		t.Errorf("fulltime = %+v, want known 2-1", f.FullTime)
	}
	if !f.HalfTime.Known || f.HalfTime.Home != 1 || f.HalfTime.Away != 0 {
		t.Errorf("halftime = %+v, want known 1-0", f.HalfTime)
	}
}

func TestFixtureDecoding_NullScores(t *testing.T) {
	payload := `{
		"response": [{
			"fixture": {"id": 7, "status": {"short": "NS", "elapsed": null}},
			"league": {"name": "Premier League"},
			"teams": {"home": {"name": "Arsenal"}, "away": {"name": "Chelsea"}},
			"goals": {"home": null, "away": null},
			"score": {"halftime": {"home": null, "away": null}}
		}]
	}`

	var envelope apiEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	f := envelope.Response[0].toFixture()
	if f.FullTime.Known || f.HalfTime.Known {
		t.Errorf("null feed scores must stay unknown: %+v", f)
	}
	if f.State != enums.StateNotStarted {
		t.Errorf("state = %q, want not_started", f.State)
	}
}
