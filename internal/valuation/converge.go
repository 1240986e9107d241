package valuation

import (
	"context"
	"math"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// ConvergenceResult reports what happened in the fixed-point loop, for
// the caller (the CLI warns when a run hit the iteration cap) and for
// logging.
type ConvergenceResult struct {
	Iterations int
	Converged  bool // true if it stopped because changes <= threshold, false if it hit the iteration cap
}

// RunConvergence implements the Convergence Engine (spec.md 4.3) over a
// list of pools. Pools are independent within one iteration — spec.md 5
// explicitly allows parallelizing per-pool work within an iteration — so
// each pool's recomputation runs in its own goroutine via errgroup,
// joined before the next iteration's changed-count check.
func RunConvergence(ctx context.Context, pools []*PositionPool, cfg BudgetConfig, logger *log.Logger) (ConvergenceResult, error) {
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		prevRostered := make([]map[PlayerID]struct{}, len(pools))
		for i, pool := range pools {
			prevRostered[i] = pool.RosteredIDSet()
		}

		g, _ := errgroup.WithContext(ctx)
		for _, pool := range pools {
			pool := pool
			g.Go(func() error {
				return convergeOnePool(pool, cfg)
			})
		}
		if err := g.Wait(); err != nil {
			return ConvergenceResult{Iterations: iter}, err
		}

		changed := 0
		for i, pool := range pools {
			if !sameIDSet(prevRostered[i], pool.RosteredIDSet()) {
				changed++
			}
		}

		if logger != nil {
			logger.Debug("convergence iteration", "iteration", iter, "pools_changed", changed)
		}

		if changed <= cfg.ConvergenceThreshold {
			return ConvergenceResult{Iterations: iter, Converged: true}, nil
		}
	}
	if logger != nil {
		logger.Warn("convergence exhausted iteration cap without settling", "max_iterations", cfg.MaxIterations)
	}
	return ConvergenceResult{Iterations: cfg.MaxIterations, Converged: false}, nil
}

// convergeOnePool runs one pool through a single iteration's six steps
// (spec.md 4.3).
func convergeOnePool(pool *PositionPool, cfg BudgetConfig) error {
	// Step 1: rostered-tier means/stdevs per category.
	for _, cat := range pool.Categories {
		values := make([]float64, 0, len(pool.RosteredPlayers))
		for _, p := range pool.RosteredPlayers {
			if v, ok := p.CategoryValue(cat); ok {
				values = append(values, v)
			}
		}
		mean, stdev := populationMeanStdev(values)
		pool.RosteredTierMeans[cat] = mean
		pool.RosteredTierStdevs[cat] = stdev
	}

	all := pool.AllPlayers()

	// Step 2: raw Z for every player in the pool's union of tiers.
	for _, p := range all {
		if p.Computed.RawZ == nil {
			p.Computed.RawZ = ZVector{}
		}
		for _, cat := range pool.Categories {
			value, ok := p.CategoryValue(cat)
			if !ok {
				continue
			}
			stdev := pool.RosteredTierStdevs[cat]
			if stdev == 0 {
				p.Computed.RawZ[cat] = 0
				continue
			}
			mean := pool.RosteredTierMeans[cat]
			var z float64
			if cfg.IsInverted(cat) {
				z = (mean - value) / stdev
			} else {
				z = (value - mean) / stdev
			}
			if math.IsNaN(z) || math.IsInf(z, 0) {
				return NewNumericalFailureError(p.ID, pool.Position, cat)
			}
			p.Computed.RawZ[cat] = z
		}
	}

	// Step 3: RLP baseline — mean raw Z over the replacement tier.
	for _, cat := range pool.Categories {
		if len(pool.ReplacementPlayers) == 0 {
			pool.RLPRawZAvg[cat] = 0
			continue
		}
		sum := 0.0
		for _, p := range pool.ReplacementPlayers {
			sum += p.Computed.RawZ[cat]
		}
		pool.RLPRawZAvg[cat] = sum / float64(len(pool.ReplacementPlayers))
	}

	// Step 4: normalized Z and total Z for every player.
	for _, p := range all {
		if p.Computed.NormalizedZ == nil {
			p.Computed.NormalizedZ = ZVector{}
		}
		total := 0.0
		for _, cat := range pool.Categories {
			nz := p.Computed.RawZ[cat] - pool.RLPRawZAvg[cat]
			p.Computed.NormalizedZ[cat] = nz
			total += nz
		}
		p.Computed.TotalZ = total
	}

	// Step 5: re-rank by total Z desc, id asc, and reassign tiers.
	sort.Slice(all, func(i, j int) bool {
		if all[i].Computed.TotalZ != all[j].Computed.TotalZ {
			return all[i].Computed.TotalZ > all[j].Computed.TotalZ
		}
		return all[i].ID < all[j].ID
	})

	rosterCount := pool.RosterSlots
	if rosterCount > len(all) {
		pool.Deficit = rosterCount - len(all)
		rosterCount = len(all)
	} else {
		pool.Deficit = 0
	}

	pool.RosteredPlayers = append([]*Player(nil), all[:rosterCount]...)
	rest := all[rosterCount:]

	if rosterCount > 0 {
		anchor := all[rosterCount-1].Computed.TotalZ
		replacement, below := splitByPercentageBand(rest, anchor, cfg.ReplacementTierPct, cfg.MinReplacementTierSize,
			func(p *Player) float64 { return p.Computed.TotalZ })
		pool.ReplacementPlayers = replacement
		pool.BelowReplacementPlayers = below
	} else {
		pool.ReplacementPlayers = nil
		pool.BelowReplacementPlayers = rest
	}

	for _, p := range pool.RosteredPlayers {
		p.Computed.Tier = TierRostered
	}
	for _, p := range pool.ReplacementPlayers {
		p.Computed.Tier = TierReplacement
	}
	for _, p := range pool.BelowReplacementPlayers {
		p.Computed.Tier = TierBelowReplacement
	}

	return nil
}

func sameIDSet(a, b map[PlayerID]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}
