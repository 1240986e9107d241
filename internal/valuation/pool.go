package valuation

import (
	"math"
	"sort"
)

// BuildPool implements the Pool Builder (spec.md 4.2). It is the single
// implementation behind both "BUILD_POSITION_POOLS" (hitters, one call
// per position) and "BUILD_SINGLE_POOL" (pitchers, one call per role) —
// the spec's Open Question about BUILD_SINGLE_POOL's replacement-tier
// sizing is resolved by using identical percentage-band logic for both
// (see DESIGN.md).
//
// players must already be filtered to the pool's (position, role);
// BuildPool ranks them by composite metric itself, so callers only need
// to filter.
func BuildPool(position Position, role Role, players []*Player, rosterSlots int, cfg BudgetConfig, leagueCategories []Category) *PositionPool {
	ranked := append([]*Player(nil), players...)
	sort.Slice(ranked, func(i, j int) bool {
		mi, mj := ranked[i].CompositeMetric(), ranked[j].CompositeMetric()
		if mi != mj {
			return mi > mj
		}
		return ranked[i].ID < ranked[j].ID
	})

	pool := &PositionPool{
		Position:           position,
		Role:                role,
		RosterSlots:         rosterSlots,
		Categories:          CategorySet(role, leagueCategories),
		RosteredTierMeans:   map[Category]float64{},
		RosteredTierStdevs:  map[Category]float64{},
		RLPRawZAvg:          map[Category]float64{},
		CategoryBudgets:     map[Category]float64{},
		DollarsPerZ:         map[Category]float64{},
		TotalPoolZ:          map[Category]float64{},
	}

	rosterCount := rosterSlots
	if rosterCount > len(ranked) {
		pool.Deficit = rosterCount - len(ranked)
		rosterCount = len(ranked)
	}

	pool.RosteredPlayers = append([]*Player(nil), ranked[:rosterCount]...)
	rest := ranked[rosterCount:]

	if rosterCount == 0 {
		pool.BelowReplacementPlayers = rest
		return pool
	}

	lastRosteredMetric := ranked[rosterCount-1].CompositeMetric()
	replacement, belowReplacement := splitByPercentageBand(rest, lastRosteredMetric, cfg.ReplacementTierPct, cfg.MinReplacementTierSize, (*Player).CompositeMetric)
	pool.ReplacementPlayers = replacement
	pool.BelowReplacementPlayers = belowReplacement

	for _, p := range pool.RosteredPlayers {
		p.Computed.Tier = TierRostered
	}
	for _, p := range pool.ReplacementPlayers {
		p.Computed.Tier = TierReplacement
	}
	for _, p := range pool.BelowReplacementPlayers {
		p.Computed.Tier = TierBelowReplacement
	}

	return pool
}

// splitByPercentageBand partitions rest (already sorted descending by
// metric) into a replacement tier and a below-replacement tier, using
// the percentage-band threshold computed from the last rostered metric
// (spec.md 4.2). The threshold preserves direction via the
// metric-|metric|*pct form so an inverted (negative-for-better) metric
// still bands correctly.
func splitByPercentageBand(rest []*Player, anchorMetric, pct float64, minSize int, metric func(*Player) float64) (replacement, belowReplacement []*Player) {
	threshold := anchorMetric - math.Abs(anchorMetric)*pct

	cut := 0
	for cut < len(rest) && metric(rest[cut]) >= threshold {
		cut++
	}
	if cut < minSize && len(rest) > 0 {
		cut = minSize
		if cut > len(rest) {
			cut = len(rest)
		}
	}
	return rest[:cut], rest[cut:]
}
