package valuation

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func runFixturePipeline(t *testing.T) *PipelineResult {
	t.Helper()
	hitters, pitchers, rosterSlots, pitcherSlots := fixtureLeague()
	cfg := fixtureBudgetConfig(rosterSlots, pitcherSlots)
	players := Normalize(hitters, pitchers)

	input := PipelineInput{
		Players:            players,
		RosterSlots:        rosterSlots,
		PitcherRosterSlots: pitcherSlots,
	}

	result, err := Run(context.Background(), input, cfg, silentLogger())
	require.NoError(t, err)
	return result
}

func TestRunProducesNoOrphans(t *testing.T) {
	result := runFixturePipeline(t)
	for _, p := range result.Players {
		assert.NotEmpty(t, p.Computed.Tier, "player %s was never assigned a tier", p.ID)
	}
}

func TestRunBalancesBudget(t *testing.T) {
	result := runFixturePipeline(t)

	var rosteredSum float64
	allPools := append(append([]*PositionPool(nil), result.HitterPools...), result.UtilPool, result.SPPool, result.RPPool)
	for _, pool := range allPools {
		for _, p := range pool.RosteredPlayers {
			rosteredSum += p.Computed.TotalDollars
		}
	}

	assert.InDelta(t, result.LeagueBudget.Total, rosteredSum, 1.0, "rostered dollar total should balance against league budget")
}

func TestRunConverges(t *testing.T) {
	result := runFixturePipeline(t)
	assert.True(t, result.HitterConvergence.Converged, "hitter convergence should settle within the iteration cap")
	assert.True(t, result.PitcherConvergence.Converged, "pitcher convergence should settle within the iteration cap")
	assert.True(t, result.UtilConvergence.Converged, "util convergence should settle within the iteration cap")
	assert.GreaterOrEqual(t, result.HitterConvergence.Iterations, 1)
}

func TestRunAssignsEveryPositionPool(t *testing.T) {
	result := runFixturePipeline(t)
	require.Len(t, result.HitterPools, 6, "one pool per non-UTIL hitter position in the fixture league")

	seen := map[Position]bool{}
	for _, pool := range result.HitterPools {
		seen[pool.Position] = true
		assert.NotEmpty(t, pool.Categories)
	}
	for _, pos := range []Position{"C", "1B", "2B", "3B", "SS", "OF"} {
		assert.True(t, seen[pos], "expected a pool for position %s", pos)
	}
}

func TestRunUtilPoolElevatesOnlyFromReplacementOrBelow(t *testing.T) {
	result := runFixturePipeline(t)

	primaryRostered := map[PlayerID]bool{}
	for _, pool := range result.HitterPools {
		for _, p := range pool.RosteredPlayers {
			primaryRostered[p.ID] = true
		}
	}

	for _, p := range result.UtilPool.RosteredPlayers {
		if p.Computed.UtilElevated {
			assert.False(t, primaryRostered[p.ID], "player %s was rostered at a primary position and should not also be UTIL-elevated", p.ID)
		}
	}
}

func TestRunPitchersSplitByRole(t *testing.T) {
	result := runFixturePipeline(t)
	assert.Equal(t, RoleSP, result.SPPool.Role)
	assert.Equal(t, RoleRP, result.RPPool.Role)
	for _, p := range result.SPPool.AllPlayers() {
		assert.Equal(t, RoleSP, p.Role)
	}
	for _, p := range result.RPPool.AllPlayers() {
		assert.Equal(t, RoleRP, p.Role)
	}
}

func TestRunValidationRescalesWithinTolerance(t *testing.T) {
	result := runFixturePipeline(t)
	if result.Validation.Rescaled {
		assert.Greater(t, result.Validation.ScaleFactor, 0.0)
	}
	for _, w := range result.Validation.Warnings {
		assert.NotContains(t, w, "orphan")
	}
}

func TestRunNonElevatedReplacementHittersGetPrimaryPoolDollars(t *testing.T) {
	result := runFixturePipeline(t)

	elevated := map[PlayerID]bool{}
	for _, p := range result.UtilPool.RosteredPlayers {
		if p.Computed.UtilElevated {
			elevated[p.ID] = true
		}
	}

	checked := 0
	for _, pool := range result.HitterPools {
		for _, p := range append(append([]*Player(nil), pool.ReplacementPlayers...), pool.BelowReplacementPlayers...) {
			if elevated[p.ID] {
				continue
			}
			checked++
			require.NotNil(t, p.Computed.DollarValues, "player %s should carry dollar values from its own primary pool %s", p.ID, pool.Position)

			var want float64
			for _, cat := range pool.Categories {
				want += p.Computed.NormalizedZ[cat] * pool.DollarsPerZ[cat]
			}
			assert.InDelta(t, want, p.Computed.TotalDollars, 1e-9, "player %s total dollars should match its own pool's $/Z rate, not UTIL's", p.ID)
		}
	}
	require.Greater(t, checked, 0, "fixture league should have non-elevated replacement/below-replacement hitters to check")
}

func TestRunDeterministic(t *testing.T) {
	a := runFixturePipeline(t)
	b := runFixturePipeline(t)

	for i := range a.Players {
		assert.Equal(t, a.Players[i].ID, b.Players[i].ID)
		assert.InDelta(t, a.Players[i].Computed.TotalDollars, b.Players[i].Computed.TotalDollars, 1e-9)
		assert.Equal(t, a.Players[i].Computed.Tier, b.Players[i].Computed.Tier)
	}
}
