// Package results correlates stored predictions with real fixtures and
// grades them. Team names on the two sides never agree exactly
// ("Galatasaray SK" vs "Galatasaray"), so correlation is fuzzy but
// conservative: no candidate is ever preferred over a plausible
// mismatch, an unresolved fixture is just skipped until the next pass.
package results

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/westbet/westbetpro/internal/scorefeed"
)

// asciiFold strips diacritics: ü→u, ş→s, ö→o, ç→c, ğ→g, İ→I.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Dotless ı has no combining mark to strip.
var dotlessI = strings.NewReplacer("ı", "i", "I", "i")

func foldName(name string) string {
	folded, _, err := transform.String(asciiFold, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(dotlessI.Replace(folded))
}

var suffixTokens = []string{" fc", " cf", " sc", " ac", " club", " united", " city", " f.", " f "}

// normalizeTeamName reduces a team name to a compact comparable form:
// folded to ascii, club suffixes removed, punctuation and spaces
// stripped.
func normalizeTeamName(name string) string {
	name = foldName(strings.TrimSpace(name))
	for _, token := range suffixTokens {
		name = strings.ReplaceAll(name, token, "")
	}
	return strings.NewReplacer("-", "", ".", "", " ", "").Replace(name)
}

var stopWords = map[string]bool{
	"the": true, "fc": true, "cf": true, "sc": true, "ac": true, "f": true,
}

// keyWords extracts the distinguishing words of a team name.
func keyWords(name string) map[string]bool {
	folded := foldName(strings.TrimSpace(name))
	folded = strings.NewReplacer("-", " ", ".", " ").Replace(folded)

	words := make(map[string]bool)
	for _, w := range strings.Fields(folded) {
		if len(w) > 2 && !stopWords[w] {
			words[w] = true
		}
	}
	return words
}

func overlap(a, b map[string]bool) int {
	n := 0
	for w := range a {
		if b[w] {
			n++
		}
	}
	return n
}

// MatchFixture finds the feed fixture for a stored (home, away) pair.
//
// An exact match of both normalized names wins outright. Otherwise each
// side scores +2 for substantial name containment and +1 per shared key
// word; a candidate only qualifies when BOTH sides score at least 1,
// which stops a one-sided name collision from matching unrelated games.
// The highest total wins; on a tie the first candidate is kept. Returns
// nil when nothing qualifies.
func MatchFixture(fixtures []scorefeed.Fixture, homeTeam, awayTeam string) *scorefeed.Fixture {
	homeNorm := normalizeTeamName(homeTeam)
	awayNorm := normalizeTeamName(awayTeam)
	homeWords := keyWords(homeTeam)
	awayWords := keyWords(awayTeam)

	var best *scorefeed.Fixture
	bestScore := 0

	for i := range fixtures {
		fixture := &fixtures[i]
		feedHomeNorm := normalizeTeamName(fixture.HomeTeam)
		feedAwayNorm := normalizeTeamName(fixture.AwayTeam)

		if homeNorm == feedHomeNorm && awayNorm == feedAwayNorm {
			return fixture
		}

		homeScore := sideScore(homeNorm, feedHomeNorm, homeWords, keyWords(fixture.HomeTeam))
		awayScore := sideScore(awayNorm, feedAwayNorm, awayWords, keyWords(fixture.AwayTeam))

		if homeScore < 1 || awayScore < 1 {
			continue
		}
		if total := homeScore + awayScore; total > bestScore {
			bestScore = total
			best = fixture
		}
	}
	return best
}

func sideScore(name, feedName string, words, feedWords map[string]bool) int {
	score := 0
	// Containment only counts when the stored name is long enough to be
	// distinctive; "ac" is contained in half the league.
	if len(name) >= 4 && (strings.Contains(feedName, name) || strings.Contains(name, feedName)) {
		score += 2
	}
	score += overlap(words, feedWords)
	return score
}
