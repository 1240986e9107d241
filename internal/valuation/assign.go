package valuation

import (
	"math"
	"sort"
)

// AssignPrimaryPositions implements the Primary-Position Assigner
// (spec.md 4.1). slotsPerTeam maps each hitter position to its
// slots-per-team count; numTeams scales that into total league-wide
// scarcity. Pitchers are not eligibility-multiplexed in this model (a
// pitcher's role, SP or RP, is already fixed by the Normalizer) so only
// hitters are processed here.
func AssignPrimaryPositions(players []*Player, slotsPerTeam map[Position]int, numTeams int) {
	hitters := make([]*Player, 0, len(players))
	for _, p := range players {
		if p.Role == RoleHitter {
			hitters = append(hitters, p)
		} else {
			// Pitchers have exactly one valuation position: their role.
			p.Computed.PrimaryPosition = Position(p.Role)
		}
	}

	type scarcityEntry struct {
		position  Position
		scarcity  int
		slots     int
	}
	order := make([]scarcityEntry, 0, len(slotsPerTeam))
	for pos, slots := range slotsPerTeam {
		order = append(order, scarcityEntry{position: pos, scarcity: slots * numTeams, slots: slots})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].scarcity != order[j].scarcity {
			return order[i].scarcity < order[j].scarcity
		}
		return order[i].position < order[j].position
	})

	assigned := make(map[PlayerID]bool, len(hitters))

	for _, entry := range order {
		totalSlots := entry.slots * numTeams
		candidates := make([]*Player, 0)
		for _, p := range hitters {
			if assigned[p.ID] {
				continue
			}
			if eligibleAt(p, entry.position) {
				candidates = append(candidates, p)
			}
		}
		sort.Slice(candidates, func(i, j int) bool {
			mi, mj := candidates[i].CompositeMetric(), candidates[j].CompositeMetric()
			if mi != mj {
				return mi > mj
			}
			return candidates[i].ID < candidates[j].ID
		})

		take := int(math.Ceil(1.5 * float64(totalSlots)))
		if take > len(candidates) {
			take = len(candidates)
		}
		for i := 0; i < take; i++ {
			candidates[i].Computed.PrimaryPosition = entry.position
			assigned[candidates[i].ID] = true
		}
	}

	// Fallback: anyone still unassigned goes to their first-listed
	// eligible position (spec.md 4.1).
	for _, p := range hitters {
		if assigned[p.ID] {
			continue
		}
		if len(p.Positions) > 0 {
			p.Computed.PrimaryPosition = p.Positions[0]
		}
		assigned[p.ID] = true
	}
}

func eligibleAt(p *Player, pos Position) bool {
	for _, e := range p.Positions {
		if e == pos {
			return true
		}
	}
	return false
}
