package valuation

import "sort"

// RawHitter is the upstream hitter record shape the ingest layer hands to
// the Normalizer (spec.md 6: FanGraphs schema keys PA, AB, R, HR, RBI,
// OBP, SLG, SBN, wRC+). Deriving SBN from SB-CS when absent is the
// ingest layer's job, not this one's; by the time a RawHitter reaches
// Normalize, SBN is expected to already be populated.
type RawHitter struct {
	ID        PlayerID
	Name      string
	Team      string
	Positions []Position

	PA      float64
	AB      float64
	R       float64
	HR      float64
	RBI     float64
	SBN     float64
	OBP     float64
	SLG     float64
	WRCPlus float64
}

// RawPitcher is the upstream pitcher record shape (spec.md 6: IP, ERA,
// WHIP, K/9, QS, SV, HLD, SVHD, FIP). IP is retained so Normalize can
// derive Outs when the ingest layer didn't already compute it.
type RawPitcher struct {
	ID        PlayerID
	Name      string
	Team      string
	Positions []Position
	IsSP      bool // role discriminator: SP vs RP

	IP   float64 // innings pitched, fallback source for Outs
	Outs float64 // canonical; IP*3 when zero and IP is set
	ERA  float64
	WHIP float64
	K9   float64
	QS   float64
	SV   float64
	HLD  float64
	SVHD float64 // SV+HLD when zero
	FIP  float64
}

// Normalize projects raw hitter and pitcher records into engine-facing
// Players, deriving outs and svhd where the upstream feed omitted them
// (spec.md 2, Stage A); sbn is taken as given, already derived by the
// ingest layer. Players are emitted in a stable order (by
// id) so downstream stages that sum in player order get deterministic
// floating-point accumulation (spec.md 9).
func Normalize(hitters []RawHitter, pitchers []RawPitcher) []*Player {
	players := make([]*Player, 0, len(hitters)+len(pitchers))

	for i := range hitters {
		h := hitters[i]
		players = append(players, &Player{
			ID:        h.ID,
			Name:      h.Name,
			Team:      h.Team,
			Positions: h.Positions,
			Role:      RoleHitter,
			Hitter: &HitterStats{
				PA:      h.PA,
				AB:      h.AB,
				R:       h.R,
				HR:      h.HR,
				RBI:     h.RBI,
				SBN:     h.SBN,
				OBP:     h.OBP,
				SLG:     h.SLG,
				WRCPlus: h.WRCPlus,
			},
		})
	}

	for i := range pitchers {
		p := pitchers[i]
		outs := p.Outs
		if outs == 0 && p.IP != 0 {
			outs = p.IP * 3
		}
		svhd := p.SVHD
		if svhd == 0 {
			svhd = p.SV + p.HLD
		}
		role := RoleRP
		qs, sv := p.QS, svhd
		if p.IsSP {
			role = RoleSP
			sv = 0 // SP records carry svhd=0 (spec.md 3)
		} else {
			qs = 0 // RP records carry qs=0 (spec.md 3)
		}
		players = append(players, &Player{
			ID:        p.ID,
			Name:      p.Name,
			Team:      p.Team,
			Positions: p.Positions,
			Role:      role,
			Pitcher: &PitcherStats{
				Outs: outs,
				ERA:  p.ERA,
				WHIP: p.WHIP,
				K9:   p.K9,
				QS:   qs,
				SVHD: sv,
				FIP:  p.FIP,
			},
		})
	}

	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players
}
