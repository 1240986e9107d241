package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hitterPlayer(id PlayerID, wrcPlus float64) *Player {
	return &Player{
		ID:   id,
		Role: RoleHitter,
		Hitter: &HitterStats{
			WRCPlus: wrcPlus,
		},
	}
}

func TestSplitByPercentageBandKeepsPlayersWithinBand(t *testing.T) {
	rest := []*Player{
		hitterPlayer("a", 95),
		hitterPlayer("b", 90),
		hitterPlayer("c", 80),
		hitterPlayer("d", 50),
	}
	// anchor 100, pct 0.1 -> threshold 90: a(95) and b(90) clear it, c/d don't.
	replacement, below := splitByPercentageBand(rest, 100, 0.10, 1, (*Player).CompositeMetric)
	require.Len(t, replacement, 2)
	assert.Equal(t, PlayerID("a"), replacement[0].ID)
	assert.Equal(t, PlayerID("b"), replacement[1].ID)
	require.Len(t, below, 2)
	assert.Equal(t, PlayerID("c"), below[0].ID)
}

func TestSplitByPercentageBandEnforcesMinimumSize(t *testing.T) {
	rest := []*Player{
		hitterPlayer("a", 10),
		hitterPlayer("b", 9),
		hitterPlayer("c", 8),
	}
	// threshold from anchor 100 and pct 0.1 is 90, far above any of these,
	// so the natural band would be empty; min size should force 2 in.
	replacement, below := splitByPercentageBand(rest, 100, 0.10, 2, (*Player).CompositeMetric)
	require.Len(t, replacement, 2)
	require.Len(t, below, 1)
}

func TestSplitByPercentageBandPreservesDirectionForNegativeAnchor(t *testing.T) {
	// Simulates an inverted composite metric (e.g. -FIP): anchor is
	// negative, and "better" values are less negative. rest is already
	// sorted descending (best-to-worst) as BuildPool guarantees.
	rest := []*Player{
		hitterPlayer("a", -3.1),
		hitterPlayer("b", -3.4),
		hitterPlayer("c", -6.0),
	}
	// anchor -3.0, pct 0.1 -> threshold -3.0 - |(-3.0)|*0.1 = -3.3
	replacement, below := splitByPercentageBand(rest, -3.0, 0.10, 1, (*Player).CompositeMetric)
	require.Len(t, replacement, 1)
	assert.Equal(t, PlayerID("a"), replacement[0].ID)
	require.Len(t, below, 2)
}

func TestBuildPoolAssignsTiersAndDeficit(t *testing.T) {
	players := []*Player{
		hitterPlayer("a", 140),
		hitterPlayer("b", 120),
		hitterPlayer("c", 100),
		hitterPlayer("d", 95),
		hitterPlayer("e", 90),
		hitterPlayer("f", 40),
	}
	cfg := DefaultBudgetConfig()
	pool := BuildPool("1B", RoleHitter, players, 2, cfg, nil)

	require.Len(t, pool.RosteredPlayers, 2)
	assert.Equal(t, PlayerID("a"), pool.RosteredPlayers[0].ID)
	assert.Equal(t, PlayerID("b"), pool.RosteredPlayers[1].ID)
	assert.Zero(t, pool.Deficit)

	for _, p := range pool.RosteredPlayers {
		assert.Equal(t, TierRostered, p.Computed.Tier)
	}
	for _, p := range pool.ReplacementPlayers {
		assert.Equal(t, TierReplacement, p.Computed.Tier)
	}
	for _, p := range pool.BelowReplacementPlayers {
		assert.Equal(t, TierBelowReplacement, p.Computed.Tier)
	}
	assert.Len(t, pool.AllPlayers(), len(players))
}

func TestBuildPoolRecordsDeficitWhenUnderfilled(t *testing.T) {
	players := []*Player{
		hitterPlayer("a", 140),
		hitterPlayer("b", 120),
	}
	cfg := DefaultBudgetConfig()
	pool := BuildPool("1B", RoleHitter, players, 5, cfg, nil)

	assert.Len(t, pool.RosteredPlayers, 2)
	assert.Equal(t, 3, pool.Deficit)
	assert.Empty(t, pool.ReplacementPlayers)
	assert.Empty(t, pool.BelowReplacementPlayers)
}
