// Package report writes the valuation kernel's output artifacts:
// valuations.csv, position_summary.csv, and the hitters.json /
// pitchers.json echo-back files carrying the computed valuations
// alongside the original input schema (spec.md 6). CSV/JSON
// serialization is this package's job, not the kernel's.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"stormlightlabs.org/baseball/internal/ingest"
	"stormlightlabs.org/baseball/internal/valuation"
)

// AllCategories returns the deduplicated union of any number of category
// sets, in a stable order, for use as CSV column headers.
func AllCategories(sets ...[]valuation.Category) []valuation.Category {
	seen := map[valuation.Category]bool{}
	var out []valuation.Category
	for _, set := range sets {
		for _, c := range set {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WriteValuationsCSV writes one row per valued player. Role-foreign
// category columns (e.g. a hitter's ERA column) are left blank, per
// spec.md 6.
func WriteValuationsCSV(path string, players []*valuation.Player, categories []valuation.Category) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"player_id", "name", "position", "role", "total_z", "dollar_value"}
	for _, c := range categories {
		header = append(header, "z_"+string(c))
	}
	for _, c := range categories {
		header = append(header, "dollar_"+string(c))
	}
	header = append(header, "tier")
	if err := w.Write(header); err != nil {
		return err
	}

	sorted := append([]*valuation.Player(nil), players...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, p := range sorted {
		row := []string{
			string(p.ID),
			p.Name,
			string(p.Computed.PrimaryPosition),
			string(p.Role),
			formatFloat(p.Computed.TotalZ),
			formatFloat(p.Computed.TotalDollars),
		}
		for _, c := range categories {
			if v, ok := p.Computed.NormalizedZ[c]; ok {
				row = append(row, formatFloat(v))
			} else {
				row = append(row, "")
			}
		}
		for _, c := range categories {
			if v, ok := p.Computed.DollarValues[c]; ok {
				row = append(row, formatFloat(v))
			} else {
				row = append(row, "")
			}
		}
		row = append(row, string(p.Computed.Tier))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WritePositionSummaryCSV writes one row per pool with diagnostic
// per-category rates and baselines.
func WritePositionSummaryCSV(path string, pools []*valuation.PositionPool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	var allCats []valuation.Category
	for _, pool := range pools {
		allCats = AllCategories(allCats, pool.Categories)
	}

	header := []string{"position", "role", "rostered_count", "replacement_tier_count", "total_budget"}
	for _, c := range allCats {
		header = append(header, "dollars_per_z_"+string(c))
	}
	for _, c := range allCats {
		header = append(header, "replacement_baseline_"+string(c))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	sorted := append([]*valuation.PositionPool(nil), pools...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	for _, pool := range sorted {
		totalBudget := 0.0
		for _, v := range pool.CategoryBudgets {
			totalBudget += v
		}
		row := []string{
			string(pool.Position),
			string(pool.Role),
			strconv.Itoa(len(pool.RosteredPlayers)),
			strconv.Itoa(len(pool.ReplacementPlayers)),
			formatFloat(totalBudget),
		}
		for _, c := range allCats {
			if v, ok := pool.DollarsPerZ[c]; ok {
				row = append(row, formatFloat(v))
			} else {
				row = append(row, "")
			}
		}
		for _, c := range allCats {
			if v, ok := pool.RLPRawZAvg[c]; ok {
				row = append(row, formatFloat(v))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// valuationEnvelope is the "stats.valuations" block appended to each
// echoed hitter/pitcher JSON record.
type valuationEnvelope struct {
	RawZ         map[string]float64 `json:"raw_z"`
	NormalizedZ  map[string]float64 `json:"normalized_z"`
	TotalZ       float64            `json:"total_z"`
	DollarValues map[string]float64 `json:"dollar_values"`
	TotalDollars float64            `json:"total_dollars"`
	Tier         string             `json:"tier"`
	Position     string             `json:"position"`
}

func toValuationEnvelope(p *valuation.Player) valuationEnvelope {
	return valuationEnvelope{
		RawZ:         stringKeyed(p.Computed.RawZ),
		NormalizedZ:  stringKeyed(p.Computed.NormalizedZ),
		TotalZ:       p.Computed.TotalZ,
		DollarValues: stringKeyed(p.Computed.DollarValues),
		TotalDollars: p.Computed.TotalDollars,
		Tier:         string(p.Computed.Tier),
		Position:     string(p.Computed.PrimaryPosition),
	}
}

func stringKeyed(z valuation.ZVector) map[string]float64 {
	out := make(map[string]float64, len(z))
	for k, v := range z {
		out[string(k)] = v
	}
	return out
}

// WriteHittersJSON echoes the original hitter records with a
// "stats.valuations" block appended per player, keyed by the same id
// field the ingest layer resolved.
func WriteHittersJSON(path string, records []ingest.HitterRecord, players map[valuation.PlayerID]*valuation.Player) error {
	type enrichedStats struct {
		ingest.HitterStatsEnvelope
		Valuations *valuationEnvelope `json:"valuations,omitempty"`
	}
	type enriched struct {
		ingest.HitterRecord
		Stats enrichedStats `json:"stats"`
	}
	out := make([]enriched, 0, len(records))
	for _, r := range records {
		id := valuation.PlayerID(r.IDESPN)
		if id == "" {
			id = valuation.PlayerID(r.ID)
		}
		e := enriched{HitterRecord: r, Stats: enrichedStats{HitterStatsEnvelope: r.Stats}}
		if p, ok := players[id]; ok {
			v := toValuationEnvelope(p)
			e.Stats.Valuations = &v
		}
		out = append(out, e)
	}
	return writeJSON(path, out)
}

// WritePitchersJSON is the pitcher analogue of WriteHittersJSON.
func WritePitchersJSON(path string, records []ingest.PitcherRecord, players map[valuation.PlayerID]*valuation.Player) error {
	type enrichedStats struct {
		ingest.PitcherStatsEnvelope
		Valuations *valuationEnvelope `json:"valuations,omitempty"`
	}
	type enriched struct {
		ingest.PitcherRecord
		Stats enrichedStats `json:"stats"`
	}
	out := make([]enriched, 0, len(records))
	for _, r := range records {
		id := valuation.PlayerID(r.IDESPN)
		if id == "" {
			id = valuation.PlayerID(r.ID)
		}
		e := enriched{PitcherRecord: r, Stats: enrichedStats{PitcherStatsEnvelope: r.Stats}}
		if p, ok := players[id]; ok {
			v := toValuationEnvelope(p)
			e.Stats.Valuations = &v
		}
		out = append(out, e)
	}
	return writeJSON(path, out)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// PlayersByID indexes a player slice by id for the JSON writers above.
func PlayersByID(players []*valuation.Player) map[valuation.PlayerID]*valuation.Player {
	out := make(map[valuation.PlayerID]*valuation.Player, len(players))
	for _, p := range players {
		out[p.ID] = p
	}
	return out
}
