// Package ingest reads the three upstream artifacts the valuation kernel
// consumes (hitter projections, pitcher projections, league settings)
// and maps them into the kernel's input shapes. Source-specific column
// quirks, file I/O plumbing, and JSON deserialization are this
// package's job, not the kernel's (spec.md 1, "out of scope, treated as
// external collaborators").
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"stormlightlabs.org/baseball/internal/valuation"
)

// HitterRecord is the on-disk shape of one entry in batters_matched.json
// / batters_merged.json (spec.md 6).
type HitterRecord struct {
	IDESPN          string             `json:"id_espn"`
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	ProTeam         string             `json:"pro_team"`
	PrimaryPosition string             `json:"primary_position"`
	EligibleSlots   []string           `json:"eligible_slots"`
	Stats           HitterStatsEnvelope `json:"stats"`
}

// HitterStatsEnvelope wraps the FanGraphs-schema projection map.
type HitterStatsEnvelope struct {
	Projections map[string]float64 `json:"projections"`
}

// PitcherRecord is the on-disk shape of one entry in pitchers_matched.json
// / pitchers_merged.json.
type PitcherRecord struct {
	IDESPN          string              `json:"id_espn"`
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	ProTeam         string              `json:"pro_team"`
	PrimaryPosition string              `json:"primary_position"`
	EligibleSlots   []string            `json:"eligible_slots"`
	Stats           PitcherStatsEnvelope `json:"stats"`
}

// PitcherStatsEnvelope wraps the pitching projection map.
type PitcherStatsEnvelope struct {
	Projections map[string]float64 `json:"projections"`
}

// LeagueSummary is the on-disk shape of league_<id>_summary.json.
type LeagueSummary struct {
	Teams             int           `json:"teams"`
	AuctionBudget     float64       `json:"auctionBudget"`
	AcquisitionBudget float64       `json:"acquisitionBudget"`
	Scoring           ScoringConfig `json:"scoring"`
}

// ScoringConfig carries the league's category lists and inversion flags.
type ScoringConfig struct {
	Batting  []string `json:"batting"`
	Pitching []string `json:"pitching"`
	Reverse  []string `json:"reverse"`
}

// LoadHitters reads and decodes a hitter projections file.
func LoadHitters(path string) ([]HitterRecord, error) {
	var records []HitterRecord
	if err := loadJSON(path, &records); err != nil {
		return nil, fmt.Errorf("loading hitters from %s: %w", path, err)
	}
	return records, nil
}

// LoadPitchers reads and decodes a pitcher projections file.
func LoadPitchers(path string) ([]PitcherRecord, error) {
	var records []PitcherRecord
	if err := loadJSON(path, &records); err != nil {
		return nil, fmt.Errorf("loading pitchers from %s: %w", path, err)
	}
	return records, nil
}

// LoadLeagueSummary reads and decodes a league settings file.
func LoadLeagueSummary(path string) (*LeagueSummary, error) {
	var summary LeagueSummary
	if err := loadJSON(path, &summary); err != nil {
		return nil, fmt.Errorf("loading league summary from %s: %w", path, err)
	}
	return &summary, nil
}

func loadJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// stableID resolves the record's identity field, preferring id_espn
// (spec.md 6: "reads id_espn, or any stable id field, as id") and
// falling back to the generic id field.
func stableID(idESPN, id string) string {
	if idESPN != "" {
		return idESPN
	}
	return id
}

// ToRawHitters maps decoded hitter records into the kernel's RawHitter
// shape. Per-record shape errors (missing id or missing projections) are
// collected into a MultiError rather than failing fast, per spec.md 7's
// propagation policy: the run aborts before pool construction if any
// occur, but the caller sees every bad record at once.
func ToRawHitters(records []HitterRecord) ([]valuation.RawHitter, error) {
	out := make([]valuation.RawHitter, 0, len(records))
	var errs []error

	for i, r := range records {
		id := stableID(r.IDESPN, r.ID)
		if id == "" {
			errs = append(errs, valuation.NewMalformedInputError(fmt.Sprintf("hitter[%d]", i), "id"))
			continue
		}
		proj := r.Stats.Projections
		if proj == nil {
			errs = append(errs, valuation.NewMalformedInputError(id, "stats.projections"))
			continue
		}

		positions := make([]valuation.Position, 0, len(r.EligibleSlots))
		for _, s := range r.EligibleSlots {
			positions = append(positions, valuation.Position(s))
		}
		if len(positions) == 0 && r.PrimaryPosition != "" {
			positions = append(positions, valuation.Position(r.PrimaryPosition))
		}

		sb := proj["SB"]
		cs := proj["CS"]
		sbn := proj["SBN"]
		if sbn == 0 && (sb != 0 || cs != 0) {
			sbn = sb - cs
		}

		out = append(out, valuation.RawHitter{
			ID:        valuation.PlayerID(id),
			Name:      r.Name,
			Team:      r.ProTeam,
			Positions: positions,
			PA:        proj["PA"],
			AB:        proj["AB"],
			R:         proj["R"],
			HR:        proj["HR"],
			RBI:       proj["RBI"],
			SBN:       sbn,
			OBP:       proj["OBP"],
			SLG:       proj["SLG"],
			WRCPlus:   proj["wRC+"],
		})
	}

	if len(errs) > 0 {
		return nil, &valuation.MultiError{Errors: errs}
	}
	return out, nil
}

// ToRawPitchers maps decoded pitcher records into the kernel's
// RawPitcher shape. A pitcher is treated as a starter when its primary
// position is SP; when the primary position is neither SP nor RP, it is a
// starter if any of its eligible slots is SP.
func ToRawPitchers(records []PitcherRecord) ([]valuation.RawPitcher, error) {
	out := make([]valuation.RawPitcher, 0, len(records))
	var errs []error

	for i, r := range records {
		id := stableID(r.IDESPN, r.ID)
		if id == "" {
			errs = append(errs, valuation.NewMalformedInputError(fmt.Sprintf("pitcher[%d]", i), "id"))
			continue
		}
		proj := r.Stats.Projections
		if proj == nil {
			errs = append(errs, valuation.NewMalformedInputError(id, "stats.projections"))
			continue
		}

		positions := make([]valuation.Position, 0, len(r.EligibleSlots))
		for _, s := range r.EligibleSlots {
			positions = append(positions, valuation.Position(s))
		}

		out = append(out, valuation.RawPitcher{
			ID:        valuation.PlayerID(id),
			Name:      r.Name,
			Team:      r.ProTeam,
			Positions: positions,
			IsSP:      isStarter(r.PrimaryPosition, r.EligibleSlots),
			IP:        proj["IP"],
			Outs:      proj["OUTS"],
			ERA:       proj["ERA"],
			WHIP:      proj["WHIP"],
			K9:        proj["K/9"],
			QS:        proj["QS"],
			SV:        proj["SV"],
			HLD:       proj["HLD"],
			SVHD:      proj["SVHD"],
			FIP:       proj["FIP"],
		})
	}

	if len(errs) > 0 {
		return nil, &valuation.MultiError{Errors: errs}
	}
	return out, nil
}

func isStarter(primary string, eligible []string) bool {
	if primary == "SP" {
		return true
	}
	if primary == "RP" {
		return false
	}
	for _, e := range eligible {
		if e == "SP" {
			return true
		}
	}
	return false
}

// BattingCategories maps the league's batting string list into the
// kernel's Category type; PitchingCategories does the same for the
// pitching list, and InvertedSet turns the reverse list into the Inverted
// set consumed by BudgetConfig.
func (s ScoringConfig) BattingCategories() []valuation.Category {
	return toCategories(s.Batting)
}

func (s ScoringConfig) PitchingCategories() []valuation.Category {
	return toCategories(s.Pitching)
}

func (s ScoringConfig) InvertedSet() map[valuation.Category]bool {
	out := make(map[valuation.Category]bool, len(s.Reverse))
	for _, c := range s.Reverse {
		out[valuation.Category(c)] = true
	}
	return out
}

func toCategories(names []string) []valuation.Category {
	if len(names) == 0 {
		return nil
	}
	out := make([]valuation.Category, len(names))
	for i, n := range names {
		out[i] = valuation.Category(n)
	}
	return out
}
