package valuation

// countingCategories are additive across positions; their budget share
// follows each position's share of league-wide production (spec.md 4.5
// rationale).
var countingCategories = map[Category]bool{
	CatR:   true,
	CatHR:  true,
	CatRBI: true,
	CatSBN: true,
}

// rateCategories are PA-weighted because a roster slot's influence on a
// rate stat depends on how many plate appearances it supplies.
var rateCategories = map[Category]bool{
	CatOBP: true,
	CatSLG: true,
}

// BuildLeagueBudget computes the league-wide, role, and category budgets
// (spec.md 4.5). It returns a BadConfigError if any category-weight map
// doesn't sum to 1.0.
func BuildLeagueBudget(cfg BudgetConfig) (*LeagueBudget, error) {
	if err := mustSumToOne(cfg.HitterCategoryWeights, "hitter_category_weights"); err != nil {
		return nil, err
	}
	if err := mustSumToOne(cfg.SPCategoryWeights, "sp_category_weights"); err != nil {
		return nil, err
	}
	if err := mustSumToOne(cfg.RPCategoryWeights, "rp_category_weights"); err != nil {
		return nil, err
	}

	total := float64(cfg.NumTeams) * (cfg.BudgetPerTeam - cfg.BenchReserve)
	hitterBudget := total * cfg.HitterPitcherSplit
	pitcherBudget := total * (1 - cfg.HitterPitcherSplit)
	spBudget := pitcherBudget * cfg.SPRPSplit
	rpBudget := pitcherBudget * (1 - cfg.SPRPSplit)

	lb := &LeagueBudget{
		Total:                 total,
		HitterBudget:          hitterBudget,
		PitcherBudget:         pitcherBudget,
		SPBudget:              spBudget,
		RPBudget:              rpBudget,
		HitterCategoryBudgets: map[Category]float64{},
		SPCategoryBudgets:     map[Category]float64{},
		RPCategoryBudgets:     map[Category]float64{},
	}
	for cat, w := range cfg.HitterCategoryWeights {
		lb.HitterCategoryBudgets[cat] = hitterBudget * w
	}
	for cat, w := range cfg.SPCategoryWeights {
		lb.SPCategoryBudgets[cat] = spBudget * w
	}
	for cat, w := range cfg.RPCategoryWeights {
		lb.RPCategoryBudgets[cat] = rpBudget * w
	}
	return lb, nil
}

func mustSumToOne(weights map[Category]float64, name string) error {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		return NewBadConfigError(name + " must sum to 1.0")
	}
	return nil
}

// AllocateHitterBudgets implements the per-position hitter allocation
// (spec.md 4.5): counting stats by production share, rate stats by
// weighted-PA share.
func AllocateHitterBudgets(pools []*PositionPool, lb *LeagueBudget, cfg BudgetConfig) {
	leagueCountingTotals := map[Category]float64{}
	for cat := range countingCategories {
		for _, pool := range pools {
			leagueCountingTotals[cat] += sumRosteredCategory(pool, cat)
		}
	}

	totalWeightedPA := 0.0
	weightedPAByPool := make(map[Position]float64, len(pools))
	for _, pool := range pools {
		wpa := float64(len(pool.RosteredPlayers)) * cfg.PAWeight(pool.Position)
		weightedPAByPool[pool.Position] = wpa
		totalWeightedPA += wpa
	}

	for _, pool := range pools {
		for cat, leagueCatBudget := range lb.HitterCategoryBudgets {
			switch {
			case countingCategories[cat]:
				leagueTotal := leagueCountingTotals[cat]
				share := 0.0
				if leagueTotal != 0 {
					share = sumRosteredCategory(pool, cat) / leagueTotal
				}
				pool.CategoryBudgets[cat] = leagueCatBudget * share
			case rateCategories[cat]:
				share := 0.0
				if totalWeightedPA != 0 {
					share = weightedPAByPool[pool.Position] / totalWeightedPA
				}
				pool.CategoryBudgets[cat] = leagueCatBudget * share
			default:
				pool.CategoryBudgets[cat] = 0
			}
		}
		if leagueCountingTotals[CatHR] != 0 {
			pool.ProductionShare = sumRosteredCategory(pool, CatHR) / leagueCountingTotals[CatHR]
		}
	}
}

// AllocatePitcherBudgets implements the per-pool pitcher allocation
// (spec.md 4.5): role_budget * role_category_weights[c] directly, which
// is also the spec's assumed resolution for the unspecified
// ALLOCATE_POOL_BUDGET helper (spec.md 9).
func AllocatePitcherBudgets(pool *PositionPool, roleBudget float64, roleWeights map[Category]float64) {
	for cat, w := range roleWeights {
		pool.CategoryBudgets[cat] = roleBudget * w
	}
}

func sumRosteredCategory(pool *PositionPool, cat Category) float64 {
	sum := 0.0
	for _, p := range pool.RosteredPlayers {
		if v, ok := p.CategoryValue(cat); ok {
			sum += v
		}
	}
	return sum
}
