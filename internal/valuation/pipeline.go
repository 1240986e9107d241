package valuation

import (
	"context"
	"sort"

	"github.com/charmbracelet/log"
)

// PipelineInput is the Stage A (Normalizer) output plus the league shape
// the later stages need: roster slots per hitter position and per
// pitching role, and the league's own category lists (spec.md 6,
// scoring.batting[] / scoring.pitching[]), which narrow the default
// category sets in category.go.
type PipelineInput struct {
	Players            []*Player
	RosterSlots        map[Position]int // hitter positions, slots per team; include PositionUTIL
	PitcherRosterSlots map[Role]int     // RoleSP, RoleRP, slots per team
	BattingCategories  []Category       // narrows the hitter category set; nil uses the spec default
	PitchingCategories []Category       // narrows the SP/RP category sets; nil uses the spec default
}

// PipelineResult is every stage's output, kept together for the report
// writers and the CLI.
type PipelineResult struct {
	HitterPools []*PositionPool
	UtilPool    *PositionPool
	SPPool      *PositionPool
	RPPool      *PositionPool

	LeagueBudget *LeagueBudget

	HitterConvergence  ConvergenceResult
	PitcherConvergence ConvergenceResult
	UtilConvergence    ConvergenceResult

	Validation ValidationResult
	Players    []*Player
}

// Run executes the full staged pipeline (spec.md 2 and 5):
// B -> C -> D(hitters) -> E -> D(pitchers) -> F -> G -> H. Stage A
// (Normalizer) is the caller's responsibility — Run expects
// input.Players to already be normalized HitterStats/PitcherStats
// records, since the Normalizer is a pure function of the upstream
// ingest format, not of league shape.
func Run(ctx context.Context, input PipelineInput, cfg BudgetConfig, logger *log.Logger) (*PipelineResult, error) {
	result := &PipelineResult{Players: input.Players}

	logger.Info("stage B: assigning primary positions", "players", len(input.Players))
	hitterSlotsPerTeam := make(map[Position]int, len(input.RosterSlots))
	for pos, slots := range input.RosterSlots {
		if pos == cfg.UtilPositionName {
			continue
		}
		hitterSlotsPerTeam[pos] = slots
	}
	AssignPrimaryPositions(input.Players, hitterSlotsPerTeam, cfg.NumTeams)

	logger.Info("stage C: building hitter position pools")
	positions := make([]Position, 0, len(hitterSlotsPerTeam))
	for pos := range hitterSlotsPerTeam {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })

	var allHitters []*Player
	for _, p := range input.Players {
		if p.Role == RoleHitter {
			allHitters = append(allHitters, p)
		}
	}

	for _, pos := range positions {
		var members []*Player
		for _, p := range allHitters {
			if p.Computed.PrimaryPosition == pos {
				members = append(members, p)
			}
		}
		totalSlots := hitterSlotsPerTeam[pos] * cfg.NumTeams
		pool := BuildPool(pos, RoleHitter, members, totalSlots, cfg, input.BattingCategories)
		result.HitterPools = append(result.HitterPools, pool)
	}

	logger.Info("stage D: converging hitter pools", "pools", len(result.HitterPools))
	hitterConv, err := RunConvergence(ctx, result.HitterPools, cfg, logger)
	if err != nil {
		return nil, err
	}
	result.HitterConvergence = hitterConv

	logger.Info("stage E: building UTIL pool")
	utilSlots := input.RosterSlots[cfg.UtilPositionName] * cfg.NumTeams
	utilPool, utilSnapshot, utilConv, err := BuildUtilPool(ctx, result.HitterPools, allHitters, utilSlots, cfg, input.BattingCategories)
	if err != nil {
		return nil, err
	}
	result.UtilPool = utilPool
	result.UtilConvergence = utilConv

	logger.Info("stage C: building pitcher pools")
	var spMembers, rpMembers []*Player
	for _, p := range input.Players {
		switch p.Role {
		case RoleSP:
			spMembers = append(spMembers, p)
		case RoleRP:
			rpMembers = append(rpMembers, p)
		}
	}
	spSlots := input.PitcherRosterSlots[RoleSP] * cfg.NumTeams
	rpSlots := input.PitcherRosterSlots[RoleRP] * cfg.NumTeams
	spPool := BuildPool(Position(RoleSP), RoleSP, spMembers, spSlots, cfg, input.PitchingCategories)
	rpPool := BuildPool(Position(RoleRP), RoleRP, rpMembers, rpSlots, cfg, input.PitchingCategories)
	result.SPPool = spPool
	result.RPPool = rpPool

	logger.Info("stage D: converging pitcher pools")
	pitcherConv, err := RunConvergence(ctx, []*PositionPool{spPool, rpPool}, cfg, logger)
	if err != nil {
		return nil, err
	}
	result.PitcherConvergence = pitcherConv

	logger.Info("stage F: allocating budgets")
	lb, err := BuildLeagueBudget(cfg)
	if err != nil {
		return nil, err
	}
	result.LeagueBudget = lb

	hitterPoolsWithUtil := append(append([]*PositionPool(nil), result.HitterPools...), utilPool)
	AllocateHitterBudgets(hitterPoolsWithUtil, lb, cfg)
	AllocatePitcherBudgets(spPool, lb.SPBudget, cfg.SPCategoryWeights)
	AllocatePitcherBudgets(rpPool, lb.RPBudget, cfg.RPCategoryWeights)

	logger.Info("stage G: translating Z to dollars")
	// UTIL must be translated, and its non-elevated candidates restored to
	// their primary pool's pre-Stage-G state, before any primary pool is
	// translated. Every hitter who isn't UTIL-elevated still sits in a
	// primary pool's ReplacementPlayers/BelowReplacementPlayers slice by
	// pointer, so if a primary pool's TranslateDollars ran first it would
	// stamp that player's DollarValues from UTIL's Z-scores at the
	// primary pool's $/Z rate instead of its own.
	TranslateDollars(utilPool)
	RestoreNonElevated(utilPool, utilSnapshot)
	for _, pool := range result.HitterPools {
		TranslateDollars(pool)
	}
	TranslateDollars(spPool)
	TranslateDollars(rpPool)

	logger.Info("stage H: validating")
	allPools := append(append([]*PositionPool(nil), result.HitterPools...), utilPool, spPool, rpPool)
	validation, err := Validate(allPools, input.Players, lb)
	if err != nil {
		return nil, err
	}
	for _, w := range validation.Warnings {
		logger.Warn(w)
	}
	result.Validation = validation

	return result, nil
}
