package valuation

import (
	"math"
	"strconv"
)

// ValidationResult carries non-fatal findings (spec.md 4.7 rules 4-5 are
// warnings, not errors) plus whether a budget-balance rescale happened.
type ValidationResult struct {
	Warnings []string
	Rescaled bool
	ScaleFactor float64
}

// Validate implements the Validator/Normalizer (spec.md 4.7). It returns
// a fatal error for an orphaned player or a failed budget-balance
// rescale, and a ValidationResult carrying warnings for everything else.
func Validate(pools []*PositionPool, allPlayers []*Player, lb *LeagueBudget) (ValidationResult, error) {
	result := ValidationResult{}

	// Rule 2: no orphan players — every player must have landed in some
	// pool's tier (Tier is non-empty once Stage C/D/E has run).
	for _, p := range allPlayers {
		if p.Computed.Tier == "" {
			return result, NewOrphanPlayerError(p.ID)
		}
	}

	// Rule 3: tier size — exactly roster_slots ROSTERED entries, unless a
	// recorded deficit explains the shortfall.
	for _, pool := range pools {
		want := pool.RosterSlots - pool.Deficit
		if len(pool.RosteredPlayers) != want {
			result.Warnings = append(result.Warnings, poolTierSizeWarning(pool, want))
		}
	}

	// Rule 4: RLP Z sanity — mean total_z across replacement players
	// should be near 0.
	for _, pool := range pools {
		if len(pool.ReplacementPlayers) == 0 {
			continue
		}
		sum := 0.0
		for _, p := range pool.ReplacementPlayers {
			sum += p.Computed.TotalZ
		}
		mean := sum / float64(len(pool.ReplacementPlayers))
		if math.Abs(mean) >= 0.5 {
			result.Warnings = append(result.Warnings, rlpSanityWarning(pool, mean))
		}
	}

	// Rule 5: dollar sanity — warn per rostered player with negative
	// total dollars.
	for _, pool := range pools {
		for _, p := range pool.RosteredPlayers {
			if p.Computed.TotalDollars < 0 {
				result.Warnings = append(result.Warnings, negativeDollarWarning(p, pool))
			}
		}
	}

	// Rule 1: budget balance.
	rosteredSum := 0.0
	for _, pool := range pools {
		for _, p := range pool.RosteredPlayers {
			rosteredSum += p.Computed.TotalDollars
		}
	}
	if math.Abs(rosteredSum-lb.Total) > 1.0 {
		if rosteredSum == 0 {
			return result, NewBadConfigError("cannot rescale: rostered dollar total is zero")
		}
		factor := lb.Total / rosteredSum
		for _, pool := range pools {
			for _, p := range pool.RosteredPlayers {
				p.Computed.TotalDollars *= factor
			}
		}
		result.Rescaled = true
		result.ScaleFactor = factor
	}

	return result, nil
}

func poolTierSizeWarning(pool *PositionPool, want int) string {
	return "pool " + string(pool.Position) + " (" + string(pool.Role) + "): expected " +
		strconv.Itoa(want) + " rostered, got " + strconv.Itoa(len(pool.RosteredPlayers))
}

func rlpSanityWarning(pool *PositionPool, mean float64) string {
	return "pool " + string(pool.Position) + " (" + string(pool.Role) + "): replacement-tier mean total_z " +
		strconv.FormatFloat(mean, 'f', 3, 64) + " deviates from 0"
}

func negativeDollarWarning(p *Player, pool *PositionPool) string {
	return "player " + string(p.ID) + " in pool " + string(pool.Position) + ": negative total_dollars " +
		strconv.FormatFloat(p.Computed.TotalDollars, 'f', 2, 64)
}
