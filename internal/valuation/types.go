// Package valuation implements the True Replacement Price auction
// valuation kernel: position assignment under scarcity, percentage-band
// replacement tiering, fixed-point Z-score convergence, production-share
// budget allocation, and Z-to-dollar translation.
package valuation

// Role partitions players into the three valuation populations. Category
// sets and composite metrics are resolved per role, never mixed.
type Role string

const (
	RoleHitter Role = "HITTER"
	RoleSP     Role = "SP"
	RoleRP     Role = "RP"
)

// Tier is the outcome of pool construction and convergence.
type Tier string

const (
	TierRostered        Tier = "ROSTERED"
	TierReplacement      Tier = "REPLACEMENT"
	TierBelowReplacement Tier = "BELOW_REPLACEMENT"
)

// Position is a valuation slot, not a defensive position in the
// fielding-percentage sense. UTIL is synthetic: no player is eligible at
// UTIL directly except pure DH; everyone else arrives via elevation.
type Position string

const (
	PositionUTIL Position = "UTIL"
)

// Category is a scoring dimension. The set in play varies by role and by
// league configuration (spec.md 9, "dynamic category dispatch") so each
// pool carries its category set as data, resolved by CategorySet in
// category.go, and per-category work ranges over that set.
type Category string

const (
	CatR    Category = "R"
	CatHR   Category = "HR"
	CatRBI  Category = "RBI"
	CatSBN  Category = "SBN"
	CatOBP  Category = "OBP"
	CatSLG  Category = "SLG"
	CatERA  Category = "ERA"
	CatWHIP Category = "WHIP"
	CatK9   Category = "K9"
	CatQS   Category = "QS"
	CatSVHD Category = "SVHD"
	CatOuts Category = "OUTS"
)

// PlayerID is a stable identity string from the upstream data provider
// (ESPN id, FanGraphs id, or any other stable key the ingest layer chose).
type PlayerID string

// ZVector maps a category to a Z-score or dollar amount. Pools never
// assume a fixed category list; every consumer ranges over the pool's own
// category set.
type ZVector map[Category]float64

// HitterStats carries the engine-facing batting projection for one
// player, after Stage A (Normalizer). SBN arrives already derived by the
// ingest layer; Normalize copies the fields as given.
type HitterStats struct {
	PA      float64
	AB      float64
	R       float64
	HR      float64
	RBI     float64
	SBN     float64 // SB - CS
	OBP     float64
	SLG     float64
	WRCPlus float64 // composite metric for initial ranking
}

// PitcherStats carries the engine-facing pitching projection for one
// player. Role-foreign categories are zero (spec.md 3): an SP record
// carries SVHD=0, an RP record carries QS=0.
type PitcherStats struct {
	Outs float64 // canonical innings representation; IP = Outs/3
	ERA  float64
	WHIP float64
	K9   float64
	QS   float64
	SVHD float64 // SV + HLD
	FIP  float64 // composite metric; lower is better
}

// Computed is the engine's output sub-record. A Player's identity fields
// are set once by the Normalizer; only Computed is mutated by later
// stages.
type Computed struct {
	PrimaryPosition Position
	RawZ            ZVector
	NormalizedZ     ZVector
	TotalZ          float64
	DollarValues    ZVector
	TotalDollars    float64
	Tier            Tier
	UtilElevated    bool // true if UTIL's convergence rostered this player out of their primary pool's replacement/below tier
}

// Player is the shared identity record threaded through every stage.
type Player struct {
	ID        PlayerID
	Name      string
	Team      string
	Positions []Position // ordered eligibility, first is the fallback assignment
	Role      Role

	Hitter  *HitterStats  // non-nil iff Role == RoleHitter
	Pitcher *PitcherStats // non-nil iff Role == RoleSP || Role == RoleRP

	Computed Computed
}

// CompositeMetric returns the single scalar used for initial ranking:
// wRC+ for hitters, -FIP for pitchers (lower FIP is better, so negating
// makes "higher is better" uniform across roles).
func (p *Player) CompositeMetric() float64 {
	switch p.Role {
	case RoleHitter:
		return p.Hitter.WRCPlus
	default:
		return -p.Pitcher.FIP
	}
}

// CategoryValue returns the raw stat value for a category, used by the
// convergence engine to compute Z-scores. Returns 0, false for a
// category foreign to the player's role.
func (p *Player) CategoryValue(c Category) (float64, bool) {
	if p.Role == RoleHitter {
		if p.Hitter == nil {
			return 0, false
		}
		switch c {
		case CatR:
			return p.Hitter.R, true
		case CatHR:
			return p.Hitter.HR, true
		case CatRBI:
			return p.Hitter.RBI, true
		case CatSBN:
			return p.Hitter.SBN, true
		case CatOBP:
			return p.Hitter.OBP, true
		case CatSLG:
			return p.Hitter.SLG, true
		}
		return 0, false
	}
	if p.Pitcher == nil {
		return 0, false
	}
	switch c {
	case CatERA:
		return p.Pitcher.ERA, true
	case CatWHIP:
		return p.Pitcher.WHIP, true
	case CatK9:
		return p.Pitcher.K9, true
	case CatQS:
		return p.Pitcher.QS, true
	case CatSVHD:
		return p.Pitcher.SVHD, true
	case CatOuts:
		return p.Pitcher.Outs, true
	}
	return 0, false
}

// PositionPool is keyed by (position, role) and holds the three disjoint
// tiers plus the statistics and budget fields derived from them.
type PositionPool struct {
	Position Position
	Role     Role

	RosterSlots int // total league-wide slots at this position

	RosteredPlayers       []*Player
	ReplacementPlayers    []*Player
	BelowReplacementPlayers []*Player

	Categories []Category // this pool's category set, resolved once at construction

	RosteredTierMeans  map[Category]float64
	RosteredTierStdevs map[Category]float64
	RLPRawZAvg         map[Category]float64 // baseline shift vector

	CategoryBudgets map[Category]float64
	DollarsPerZ     map[Category]float64
	TotalPoolZ      map[Category]float64

	ProductionShare float64 // diagnostic: this pool's share of league-wide production
	Deficit         int     // roster_slots - available players, when positive
}

// AllPlayers returns the union of the three tiers, in no particular
// order. Callers that need a stable order must sort explicitly (the
// convergence engine sorts by total_z desc, id asc before reassigning
// tiers).
func (p *PositionPool) AllPlayers() []*Player {
	all := make([]*Player, 0, len(p.RosteredPlayers)+len(p.ReplacementPlayers)+len(p.BelowReplacementPlayers))
	all = append(all, p.RosteredPlayers...)
	all = append(all, p.ReplacementPlayers...)
	all = append(all, p.BelowReplacementPlayers...)
	return all
}

// RosteredIDSet returns the set of rostered player ids, used by the
// convergence engine to detect whether a pool "changed" between
// iterations.
func (p *PositionPool) RosteredIDSet() map[PlayerID]struct{} {
	set := make(map[PlayerID]struct{}, len(p.RosteredPlayers))
	for _, pl := range p.RosteredPlayers {
		set[pl.ID] = struct{}{}
	}
	return set
}

// LeagueBudget is immutable after construction (spec.md 3).
type LeagueBudget struct {
	Total         float64
	HitterBudget  float64
	PitcherBudget float64
	SPBudget      float64
	RPBudget      float64

	HitterCategoryBudgets map[Category]float64
	SPCategoryBudgets     map[Category]float64
	RPCategoryBudgets     map[Category]float64
}
