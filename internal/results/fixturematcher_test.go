package results

import (
	"testing"

	"github.com/westbet/westbetpro/internal/scorefeed"
)

func fixture(home, away string) scorefeed.Fixture {
	return scorefeed.Fixture{HomeTeam: home, AwayTeam: away}
}

func TestNormalizeTeamName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Galatasaray SK", "galatasaraysk"},
		{"Fenerbahçe", "fenerbahce"},
		{"Beşiktaş JK", "besiktasjk"},
		{"Başakşehir", "basaksehir"},
		{"Manchester United", "manchester"},
		{"FC Köln", "fckoln"}, // only suffix positions are stripped
		{"Arsenal FC", "arsenal"},
		{"Saint-Étienne", "saintetienne"},
	}
	for _, tt := range tests {
		if got := normalizeTeamName(tt.in); got != tt.want {
			t.Errorf("normalizeTeamName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchFixture_ExactAfterNormalization(t *testing.T) {
	fixtures := []scorefeed.Fixture{
		fixture("Galatasaray", "Fenerbahce"),
		fixture("Besiktas", "Trabzonspor"),
	}
	got := MatchFixture(fixtures, "Galatasaray", "Fenerbahçe")
	if got == nil || got.HomeTeam != "Galatasaray" {
		t.Fatalf("expected the Galatasaray fixture, got %+v", got)
	}
}

func TestMatchFixture_Containment(t *testing.T) {
	fixtures := []scorefeed.Fixture{
		fixture("Galatasaray SK", "Fenerbahce SK"),
	}
	got := MatchFixture(fixtures, "Galatasaray", "Fenerbahçe")
	if got == nil {
		t.Fatal("containment on both sides should resolve the fixture")
	}
}

func TestMatchFixture_BothSidesMustScore(t *testing.T) {
	// The home side matches perfectly, but the away side is a different
	// team entirely. A one-sided match must not resolve.
	fixtures := []scorefeed.Fixture{
		fixture("Galatasaray", "Antalyaspor"),
	}
	if got := MatchFixture(fixtures, "Galatasaray", "Fenerbahçe"); got != nil {
		t.Errorf("one-sided match resolved to %+v, want nil", got)
	}
}

func TestMatchFixture_WordOverlap(t *testing.T) {
	fixtures := []scorefeed.Fixture{
		fixture("Borussia Dortmund", "Bayern Munich"),
		fixture("Borussia Monchengladbach", "Bayer Leverkusen"),
	}
	got := MatchFixture(fixtures, "Dortmund", "Bayern München")
	if got == nil || got.AwayTeam != "Bayern Munich" {
		t.Fatalf("expected the Dortmund-Bayern fixture, got %+v", got)
	}
}

func TestMatchFixture_NoCandidates(t *testing.T) {
	if got := MatchFixture(nil, "Galatasaray", "Fenerbahçe"); got != nil {
		t.Errorf("empty fixture list must resolve to nil, got %+v", got)
	}
}

func TestMatchFixture_TieKeepsFirst(t *testing.T) {
	fixtures := []scorefeed.Fixture{
		{HomeTeam: "United A", AwayTeam: "City B", FixtureID: 1},
		{HomeTeam: "United A", AwayTeam: "City B", FixtureID: 2},
	}
	got := MatchFixture(fixtures, "United A", "City B")
	if got == nil || got.FixtureID != 1 {
		t.Fatalf("tie must keep the first candidate, got %+v", got)
	}
}
