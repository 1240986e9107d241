package valuation

// TranslateDollars implements the Dollar Translator (spec.md 4.6): per
// pool and category, $/Z is category budget divided by the sum of
// positive normalized Z among rostered players; every player's dollar
// value is their (signed) normalized Z times that rate.
func TranslateDollars(pool *PositionPool) {
	for _, cat := range pool.Categories {
		total := 0.0
		for _, p := range pool.RosteredPlayers {
			if z := p.Computed.NormalizedZ[cat]; z > 0 {
				total += z
			}
		}
		pool.TotalPoolZ[cat] = total

		rate := 0.0
		if total > 0 {
			rate = pool.CategoryBudgets[cat] / total
		}
		pool.DollarsPerZ[cat] = rate
	}

	for _, p := range pool.AllPlayers() {
		if p.Computed.DollarValues == nil {
			p.Computed.DollarValues = ZVector{}
		}
		total := 0.0
		for _, cat := range pool.Categories {
			dv := p.Computed.NormalizedZ[cat] * pool.DollarsPerZ[cat]
			p.Computed.DollarValues[cat] = dv
			total += dv
		}
		p.Computed.TotalDollars = total
	}
}
