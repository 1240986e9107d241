package valuation

import "context"

// computedSnapshot captures a Player's Computed sub-record so UTIL's
// scratch convergence can run "as if" on a normal pool and then be
// reverted for every candidate who didn't actually earn a UTIL roster
// spot (spec.md 4.4: non-elevated candidates keep their primary-position
// pool membership for diagnostics). Maps are copied so later mutation of
// the live Computed.RawZ/NormalizedZ doesn't alias the snapshot.
type computedSnapshot struct {
	id     PlayerID
	values Computed
}

func snapshotComputed(players []*Player) map[PlayerID]computedSnapshot {
	snap := make(map[PlayerID]computedSnapshot, len(players))
	for _, p := range players {
		snap[p.ID] = computedSnapshot{id: p.ID, values: cloneComputed(p.Computed)}
	}
	return snap
}

func cloneComputed(c Computed) Computed {
	clone := c
	if c.RawZ != nil {
		clone.RawZ = make(ZVector, len(c.RawZ))
		for k, v := range c.RawZ {
			clone.RawZ[k] = v
		}
	}
	if c.NormalizedZ != nil {
		clone.NormalizedZ = make(ZVector, len(c.NormalizedZ))
		for k, v := range c.NormalizedZ {
			clone.NormalizedZ[k] = v
		}
	}
	if c.DollarValues != nil {
		clone.DollarValues = make(ZVector, len(c.DollarValues))
		for k, v := range c.DollarValues {
			clone.DollarValues[k] = v
		}
	}
	return clone
}

// BuildUtilPool implements the UTIL Pool Builder (spec.md 4.4). It must
// run after every hitter position pool has converged: it unions each
// hitter pool's replacement and below-replacement players, adds pure-DH
// players (eligibility exactly {DH}), deduplicates by id, builds tiers
// with UTIL's own roster slots, and runs the convergence engine on the
// resulting singleton pool list.
//
// allHitters is needed (not just the pools) to find pure-DH players who
// may never have landed in any position pool's tiers (a player eligible
// only at DH has no position pool at all, since DH is never a primary
// position in slotsPerTeam).
//
// The returned snapshot must be passed to RestoreNonElevated after Stage
// F/G have run on the UTIL pool, so candidates who did not make UTIL's
// rostered tier get their primary-position valuation back instead of a
// UTIL-pool-scoped one.
func BuildUtilPool(ctx context.Context, hitterPools []*PositionPool, allHitters []*Player, rosterSlots int, cfg BudgetConfig, leagueCategories []Category) (*PositionPool, map[PlayerID]computedSnapshot, ConvergenceResult, error) {
	seen := make(map[PlayerID]bool)
	candidates := make([]*Player, 0)

	for _, pool := range hitterPools {
		for _, p := range pool.ReplacementPlayers {
			if !seen[p.ID] {
				seen[p.ID] = true
				candidates = append(candidates, p)
			}
		}
		for _, p := range pool.BelowReplacementPlayers {
			if !seen[p.ID] {
				seen[p.ID] = true
				candidates = append(candidates, p)
			}
		}
	}

	for _, p := range allHitters {
		if isPureDH(p) && !seen[p.ID] {
			seen[p.ID] = true
			candidates = append(candidates, p)
		}
	}

	snapshot := snapshotComputed(candidates)

	utilPool := BuildPool(cfg.UtilPositionName, RoleHitter, candidates, rosterSlots, cfg, leagueCategories)

	result, err := RunConvergence(ctx, []*PositionPool{utilPool}, cfg, nil)
	if err != nil {
		return nil, snapshot, result, err
	}

	for _, p := range utilPool.RosteredPlayers {
		p.Computed.UtilElevated = true
		p.Computed.Tier = TierRostered
	}

	return utilPool, snapshot, result, nil
}

// RestoreNonElevated reverts every UTIL candidate who did not make
// UTIL's rostered tier back to the Computed state captured before UTIL's
// scratch convergence ran, so their primary-position pool's tier and
// dollar values remain their final valuation.
func RestoreNonElevated(utilPool *PositionPool, snapshot map[PlayerID]computedSnapshot) {
	elevated := make(map[PlayerID]bool, len(utilPool.RosteredPlayers))
	for _, p := range utilPool.RosteredPlayers {
		elevated[p.ID] = true
	}
	for _, p := range utilPool.AllPlayers() {
		if elevated[p.ID] {
			continue
		}
		if snap, ok := snapshot[p.ID]; ok {
			p.Computed = snap.values
		}
	}
}

func isPureDH(p *Player) bool {
	return len(p.Positions) == 1 && p.Positions[0] == "DH"
}
