// Package score assigns role- and priority-weighted utility scores to
// items and builds.
package score

import (
	"math"

	"github.com/avessi/godforge/internal/game/stats"
	"github.com/avessi/godforge/internal/model"
)

// percentScale normalizes percent values into the log domain: a +15%
// property scores as log10(150), comparable to a mid-sized flat stat.
const percentScale = 1000

// Item scores a single item under the weight table.
//
// Each present property contributes weight * log10(value): logarithmic
// weighting encodes the diminishing marginal value of stacking one stat.
// The item's properties are merged through the aggregator first so the
// type-affinity and redirection rules apply before weighting.
func Item(ch *model.Character, it *model.Item, w Weights) float64 {
	agg := stats.Aggregate(ch, []*model.Item{it})
	return scoreAggregated(agg, w)
}

// Build scores an item list as the sum of its per-item scores.
// Additive by construction: swapping one item re-scores in O(1).
func Build(ch *model.Character, items []*model.Item, w Weights) float64 {
	total := 0.0
	for _, it := range items {
		total += Item(ch, it, w)
	}
	return total
}

func scoreAggregated(agg *model.AggregatedStats, w Weights) float64 {
	total := 0.0
	for attr, flat := range agg.Flat {
		if flat > 0 {
			total += w[attr] * math.Log10(flat)
		}
	}
	for attr, pct := range agg.Percent {
		if pct > 0 {
			total += w[attr] * math.Log10(pct*percentScale)
		}
	}
	return total
}
