package valuation

// BudgetConfig is the single immutable configuration object threaded
// through the Budget Allocator and Convergence Engine (spec.md 9:
// "rather than scattering defaults, pass one immutable BudgetConfig
// struct"). Values here are the spec's defaults; internal/config loads
// overrides from the league settings file or environment.
type BudgetConfig struct {
	NumTeams      int
	BudgetPerTeam float64
	BenchReserve  float64

	HitterPitcherSplit float64 // hitter share of league budget; default 0.70
	SPRPSplit          float64 // SP share of pitching budget; default 0.50

	HitterCategoryWeights map[Category]float64
	SPCategoryWeights     map[Category]float64
	RPCategoryWeights     map[Category]float64

	PAWeights map[Position]float64 // default: C=500, everyone else 600

	ReplacementTierPct     float64 // default 0.03
	MinReplacementTierSize int     // default 3
	MaxIterations          int     // default 10
	ConvergenceThreshold   int     // default 0

	UtilPositionName Position // default PositionUTIL

	RosterSlots       map[Position]int // slots_per_team for hitter positions + UTIL
	PitcherRosterSlots map[Role]int    // slots_per_team for RoleSP and RoleRP

	Inverted map[Category]bool // from league scoring.reverse; default {ERA, WHIP}
}

// DefaultBudgetConfig returns the spec's documented defaults. Callers
// override NumTeams/BudgetPerTeam from the league summary file and
// RosterSlots from their own configuration; everything else is a
// reasonable standalone default for tests.
func DefaultBudgetConfig() BudgetConfig {
	return BudgetConfig{
		NumTeams:           12,
		BudgetPerTeam:      260,
		BenchReserve:       10,
		HitterPitcherSplit: 0.70,
		SPRPSplit:          0.50,
		HitterCategoryWeights: map[Category]float64{
			CatR:   0.125,
			CatHR:  0.125,
			CatRBI: 0.125,
			CatSBN: 0.125,
			CatOBP: 0.25,
			CatSLG: 0.25,
		},
		SPCategoryWeights: map[Category]float64{
			CatK9:   0.40,
			CatERA:  0.15,
			CatWHIP: 0.15,
			CatOuts: 0.15,
			CatQS:   0.15,
		},
		RPCategoryWeights: map[Category]float64{
			CatK9:   0.40,
			CatERA:  0.15,
			CatWHIP: 0.15,
			CatOuts: 0.15,
			CatSVHD: 0.15,
		},
		PAWeights: map[Position]float64{
			"C": 500,
		},
		ReplacementTierPct:     0.03,
		MinReplacementTierSize: 3,
		MaxIterations:          10,
		ConvergenceThreshold:   0,
		UtilPositionName:       PositionUTIL,
		Inverted: map[Category]bool{
			CatERA:  true,
			CatWHIP: true,
		},
	}
}

// PAWeight returns the plate-appearance weight for a position, falling
// back to the default of 600 for any position not explicitly listed
// (spec.md 4.5: "default: C = 500, all others = 600").
func (c BudgetConfig) PAWeight(pos Position) float64 {
	if w, ok := c.PAWeights[pos]; ok {
		return w
	}
	return 600
}

// IsInverted reports whether lower values are better for a category
// (ERA, WHIP by default). The league's scoring.reverse list is the
// source of truth (spec.md 4.3).
func (c BudgetConfig) IsInverted(cat Category) bool {
	return c.Inverted[cat]
}
