package valuation

// fixtureLeague returns a small, deterministic 2-team league with enough
// hitters/pitchers to exercise every pool, UTIL elevation, and the
// convergence loop without needing real projection data.
func fixtureLeague() ([]RawHitter, []RawPitcher, map[Position]int, map[Role]int) {
	rosterSlots := map[Position]int{
		"C":          1,
		"1B":         1,
		"2B":         1,
		"3B":         1,
		"SS":         1,
		"OF":         2,
		PositionUTIL: 1,
	}
	pitcherSlots := map[Role]int{
		RoleSP: 2,
		RoleRP: 2,
	}

	hitters := []RawHitter{
		{ID: "h01", Name: "Catcher One", Positions: []Position{"C"}, PA: 550, AB: 480, R: 60, HR: 18, RBI: 70, SBN: 2, OBP: 0.330, SLG: 0.440, WRCPlus: 115},
		{ID: "h02", Name: "Catcher Two", Positions: []Position{"C"}, PA: 500, AB: 440, R: 45, HR: 10, RBI: 50, SBN: 1, OBP: 0.300, SLG: 0.380, WRCPlus: 90},
		{ID: "h03", Name: "Catcher Three", Positions: []Position{"C"}, PA: 400, AB: 360, R: 35, HR: 6, RBI: 35, SBN: 0, OBP: 0.290, SLG: 0.350, WRCPlus: 75},
		{ID: "h04", Name: "First Base One", Positions: []Position{"1B"}, PA: 620, AB: 550, R: 85, HR: 32, RBI: 95, SBN: 3, OBP: 0.360, SLG: 0.520, WRCPlus: 140},
		{ID: "h05", Name: "First Base Two", Positions: []Position{"1B"}, PA: 600, AB: 530, R: 70, HR: 24, RBI: 80, SBN: 2, OBP: 0.340, SLG: 0.470, WRCPlus: 118},
		{ID: "h06", Name: "First Base Three", Positions: []Position{"1B"}, PA: 580, AB: 520, R: 60, HR: 18, RBI: 65, SBN: 1, OBP: 0.320, SLG: 0.430, WRCPlus: 100},
		{ID: "h07", Name: "Second Base One", Positions: []Position{"2B"}, PA: 600, AB: 540, R: 80, HR: 15, RBI: 60, SBN: 18, OBP: 0.345, SLG: 0.420, WRCPlus: 112},
		{ID: "h08", Name: "Second Base Two", Positions: []Position{"2B"}, PA: 580, AB: 520, R: 65, HR: 10, RBI: 50, SBN: 12, OBP: 0.320, SLG: 0.380, WRCPlus: 95},
		{ID: "h09", Name: "Second Base Three", Positions: []Position{"2B"}, PA: 500, AB: 460, R: 50, HR: 6, RBI: 40, SBN: 8, OBP: 0.300, SLG: 0.350, WRCPlus: 80},
		{ID: "h10", Name: "Third Base One", Positions: []Position{"3B"}, PA: 610, AB: 540, R: 75, HR: 28, RBI: 88, SBN: 2, OBP: 0.350, SLG: 0.500, WRCPlus: 130},
		{ID: "h11", Name: "Third Base Two", Positions: []Position{"3B"}, PA: 590, AB: 530, R: 60, HR: 18, RBI: 70, SBN: 1, OBP: 0.325, SLG: 0.440, WRCPlus: 105},
		{ID: "h12", Name: "Third Base Three", Positions: []Position{"3B"}, PA: 500, AB: 460, R: 45, HR: 10, RBI: 50, SBN: 0, OBP: 0.300, SLG: 0.390, WRCPlus: 85},
		{ID: "h13", Name: "Shortstop One", Positions: []Position{"SS"}, PA: 620, AB: 560, R: 90, HR: 20, RBI: 75, SBN: 22, OBP: 0.355, SLG: 0.460, WRCPlus: 125},
		{ID: "h14", Name: "Shortstop Two", Positions: []Position{"SS"}, PA: 580, AB: 530, R: 65, HR: 12, RBI: 55, SBN: 15, OBP: 0.320, SLG: 0.400, WRCPlus: 98},
		{ID: "h15", Name: "Shortstop Three", Positions: []Position{"SS"}, PA: 500, AB: 460, R: 50, HR: 8, RBI: 45, SBN: 6, OBP: 0.300, SLG: 0.370, WRCPlus: 82},
		{ID: "h16", Name: "Outfield One", Positions: []Position{"OF"}, PA: 640, AB: 570, R: 95, HR: 30, RBI: 90, SBN: 20, OBP: 0.365, SLG: 0.510, WRCPlus: 135},
		{ID: "h17", Name: "Outfield Two", Positions: []Position{"OF"}, PA: 620, AB: 560, R: 85, HR: 26, RBI: 80, SBN: 15, OBP: 0.350, SLG: 0.480, WRCPlus: 122},
		{ID: "h18", Name: "Outfield Three", Positions: []Position{"OF"}, PA: 600, AB: 540, R: 70, HR: 20, RBI: 70, SBN: 10, OBP: 0.330, SLG: 0.440, WRCPlus: 108},
		{ID: "h19", Name: "Outfield Four", Positions: []Position{"OF"}, PA: 580, AB: 520, R: 60, HR: 15, RBI: 60, SBN: 8, OBP: 0.315, SLG: 0.410, WRCPlus: 96},
		{ID: "h20", Name: "Outfield Five", Positions: []Position{"OF"}, PA: 500, AB: 460, R: 45, HR: 8, RBI: 45, SBN: 4, OBP: 0.295, SLG: 0.370, WRCPlus: 80},
		{ID: "h21", Name: "Outfield Six", Positions: []Position{"OF"}, PA: 450, AB: 410, R: 35, HR: 5, RBI: 35, SBN: 3, OBP: 0.285, SLG: 0.350, WRCPlus: 70},
		{ID: "h22", Name: "Utility Infielder", Positions: []Position{"2B", "SS"}, PA: 480, AB: 440, R: 48, HR: 7, RBI: 42, SBN: 10, OBP: 0.305, SLG: 0.370, WRCPlus: 88},
		{ID: "h23", Name: "Designated Hitter", Positions: []Position{"DH"}, PA: 560, AB: 500, R: 65, HR: 25, RBI: 80, SBN: 0, OBP: 0.335, SLG: 0.480, WRCPlus: 120},
	}

	pitchers := []RawPitcher{
		{ID: "p01", Name: "Starter One", Positions: []Position{"SP"}, IsSP: true, IP: 190, ERA: 3.10, WHIP: 1.05, K9: 10.2, QS: 22, FIP: 3.20},
		{ID: "p02", Name: "Starter Two", Positions: []Position{"SP"}, IsSP: true, IP: 180, ERA: 3.40, WHIP: 1.10, K9: 9.5, QS: 19, FIP: 3.45},
		{ID: "p03", Name: "Starter Three", Positions: []Position{"SP"}, IsSP: true, IP: 170, ERA: 3.80, WHIP: 1.18, K9: 8.8, QS: 16, FIP: 3.85},
		{ID: "p04", Name: "Starter Four", Positions: []Position{"SP"}, IsSP: true, IP: 160, ERA: 4.10, WHIP: 1.25, K9: 8.0, QS: 13, FIP: 4.15},
		{ID: "p05", Name: "Starter Five", Positions: []Position{"SP"}, IsSP: true, IP: 150, ERA: 4.40, WHIP: 1.32, K9: 7.5, QS: 10, FIP: 4.45},
		{ID: "p06", Name: "Starter Six", Positions: []Position{"SP"}, IsSP: true, IP: 130, ERA: 4.80, WHIP: 1.40, K9: 7.0, QS: 7, FIP: 4.90},
		{ID: "p07", Name: "Closer One", Positions: []Position{"RP"}, IsSP: false, IP: 65, ERA: 2.40, WHIP: 0.95, K9: 11.5, SV: 35, HLD: 0, FIP: 2.55},
		{ID: "p08", Name: "Closer Two", Positions: []Position{"RP"}, IsSP: false, IP: 62, ERA: 2.80, WHIP: 1.00, K9: 10.8, SV: 28, HLD: 0, FIP: 2.90},
		{ID: "p09", Name: "Setup One", Positions: []Position{"RP"}, IsSP: false, IP: 60, ERA: 3.20, WHIP: 1.08, K9: 10.0, SV: 2, HLD: 18, FIP: 3.25},
		{ID: "p10", Name: "Setup Two", Positions: []Position{"RP"}, IsSP: false, IP: 58, ERA: 3.60, WHIP: 1.15, K9: 9.2, SV: 0, HLD: 12, FIP: 3.70},
		{ID: "p11", Name: "Middle Relief One", Positions: []Position{"RP"}, IsSP: false, IP: 55, ERA: 4.00, WHIP: 1.25, K9: 8.5, SV: 0, HLD: 5, FIP: 4.10},
		{ID: "p12", Name: "Middle Relief Two", Positions: []Position{"RP"}, IsSP: false, IP: 50, ERA: 4.50, WHIP: 1.35, K9: 7.8, SV: 0, HLD: 2, FIP: 4.60},
	}

	return hitters, pitchers, rosterSlots, pitcherSlots
}

func fixtureBudgetConfig(rosterSlots map[Position]int, pitcherSlots map[Role]int) BudgetConfig {
	cfg := DefaultBudgetConfig()
	cfg.NumTeams = 2
	cfg.BudgetPerTeam = 260
	cfg.RosterSlots = rosterSlots
	cfg.PitcherRosterSlots = pitcherSlots
	return cfg
}
