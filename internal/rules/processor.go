package rules

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/westbet/westbetpro/internal/pkg/models"
)

// Processor evaluates fixtures against the catalog and emits ranked
// opportunities. Stateless after construction; safe for concurrent use.
type Processor struct {
	catalog       *Catalog
	minConfidence int
	tolerance     float64
	workers       int
}

func NewProcessor(catalog *Catalog, minConfidence int, tolerance float64, workers int) *Processor {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Processor{
		catalog:       catalog,
		minConfidence: minConfidence,
		tolerance:     tolerance,
		workers:       workers,
	}
}

// Process evaluates all fixtures in parallel. Output order follows input
// order; fixtures without a qualifying opportunity are dropped. A single
// odd fixture never fails the batch.
func (p *Processor) Process(ctx context.Context, matches []models.Match) ([]models.Opportunity, error) {
	results := make([]*models.Opportunity, len(matches))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range matches {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = p.Evaluate(&matches[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opportunities := make([]models.Opportunity, 0, len(matches))
	for _, opp := range results {
		if opp != nil {
			opportunities = append(opportunities, *opp)
		}
	}
	return opportunities, nil
}

// Evaluate runs one fixture through the full catalog. Returns nil when
// no rule fires or the best prediction stays below the confidence gate.
func (p *Processor) Evaluate(match *models.Match) *models.Opportunity {
	if !match.HasOdds() {
		slog.Debug("fixture has no odds snapshot, skipping",
			"match_id", match.ID)
		return nil
	}

	var matched []models.MatchedRule
	var predictions []models.ScoredPrediction
	for _, rule := range p.catalog.Rules() {
		if !RuleMatches(&rule, match.Odds, p.tolerance) {
			continue
		}
		matched = append(matched, models.MatchedRule{RuleID: rule.ID, RuleName: rule.Name})
		for i, bet := range rule.Predictions {
			predictions = append(predictions, models.ScoredPrediction{
				Bet:        bet,
				Confidence: Confidence(&rule, i),
				RuleID:     rule.ID,
				RuleName:   rule.Name,
			})
		}
	}
	if len(predictions) == 0 {
		return nil
	}

	// Stable keeps catalog order among equal confidences, which makes
	// repeated runs over the same data byte-identical.
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})

	if predictions[0].Confidence < p.minConfidence {
		return nil
	}

	return &models.Opportunity{
		MatchID:      match.ID,
		HomeTeam:     match.HomeTeam,
		AwayTeam:     match.AwayTeam,
		League:       match.League,
		MatchDate:    match.MatchDate,
		MatchTime:    match.MatchTime,
		Prediction:   predictions[0],
		Alternatives: predictions[1:],
		MatchedRules: matched,
		Note:         fmt.Sprintf("%d predictions from %d rules", len(predictions), len(matched)),
	}
}
