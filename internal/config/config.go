package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"stormlightlabs.org/baseball/internal/valuation"
)

// Config holds all application configuration for the valuation engine.
type Config struct {
	Paths  PathsConfig
	League LeagueConfig
	Budget valuation.BudgetConfig
}

// PathsConfig locates the upstream artifacts and output directory
// (spec.md 6's default root).
type PathsConfig struct {
	Root              string
	HittersFile       string
	PitchersFile      string
	LeagueSummaryFile string
	OutputDir         string
}

// LeagueConfig carries the league identification used to resolve the
// default league summary filename.
type LeagueConfig struct {
	ID string
}

var globalConfig *Config

// Load reads configuration from the specified file or environment
// variables. If configPath is empty, it defaults to "valuation.toml" in
// the current directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("valuation")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.baseball")
		v.AddConfigPath("/etc/baseball")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.BindEnv("paths.root", "TRP_INPUT_ROOT")
	v.BindEnv("paths.output_dir", "TRP_OUTPUT_DIR")
	v.BindEnv("league.id", "TRP_LEAGUE_ID")
	v.BindEnv("budget.num_teams", "TRP_NUM_TEAMS")
	v.BindEnv("budget.budget_per_team", "TRP_BUDGET_PER_TEAM")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "No config file found, using defaults and environment variables\n")
	}

	leagueID := v.GetString("league.id")
	root := v.GetString("paths.root")

	cfg := &Config{
		Paths: PathsConfig{
			Root:              root,
			HittersFile:       v.GetString("paths.hitters_file"),
			PitchersFile:      v.GetString("paths.pitchers_file"),
			LeagueSummaryFile: v.GetString("paths.league_summary_file"),
			OutputDir:         v.GetString("paths.output_dir"),
		},
		League: LeagueConfig{ID: leagueID},
		Budget: budgetFromViper(v),
	}

	if cfg.Paths.HittersFile == "" {
		cfg.Paths.HittersFile = root + "batters_matched.json"
	}
	if cfg.Paths.PitchersFile == "" {
		cfg.Paths.PitchersFile = root + "pitchers_matched.json"
	}
	if cfg.Paths.LeagueSummaryFile == "" {
		cfg.Paths.LeagueSummaryFile = root + "league_" + leagueID + "_summary.json"
	}
	if cfg.Paths.OutputDir == "" {
		cfg.Paths.OutputDir = "."
	}

	globalConfig = cfg
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("paths.root", "/Users/Shared/BaseballHQ/resources/transform/")
	v.SetDefault("league.id", "default")

	def := valuation.DefaultBudgetConfig()
	v.SetDefault("budget.num_teams", def.NumTeams)
	v.SetDefault("budget.budget_per_team", def.BudgetPerTeam)
	v.SetDefault("budget.bench_reserve", def.BenchReserve)
	v.SetDefault("budget.hitter_pitcher_split", def.HitterPitcherSplit)
	v.SetDefault("budget.sp_rp_split", def.SPRPSplit)
	v.SetDefault("budget.replacement_tier_pct", def.ReplacementTierPct)
	v.SetDefault("budget.min_replacement_tier_size", def.MinReplacementTierSize)
	v.SetDefault("budget.max_iterations", def.MaxIterations)
	v.SetDefault("budget.convergence_threshold", def.ConvergenceThreshold)

	v.SetDefault("budget.roster_slots.C", 1)
	v.SetDefault("budget.roster_slots.1B", 1)
	v.SetDefault("budget.roster_slots.2B", 1)
	v.SetDefault("budget.roster_slots.3B", 1)
	v.SetDefault("budget.roster_slots.SS", 1)
	v.SetDefault("budget.roster_slots.OF", 3)
	v.SetDefault("budget.roster_slots.UTIL", 1)
	v.SetDefault("budget.pitcher_roster_slots.SP", 5)
	v.SetDefault("budget.pitcher_roster_slots.RP", 5)
}

// budgetFromViper materializes a valuation.BudgetConfig from the loaded
// keys, layering the spec defaults underneath so a league file only
// needs to override what it cares about.
func budgetFromViper(v *viper.Viper) valuation.BudgetConfig {
	cfg := valuation.DefaultBudgetConfig()

	cfg.NumTeams = v.GetInt("budget.num_teams")
	cfg.BudgetPerTeam = v.GetFloat64("budget.budget_per_team")
	cfg.BenchReserve = v.GetFloat64("budget.bench_reserve")
	cfg.HitterPitcherSplit = v.GetFloat64("budget.hitter_pitcher_split")
	cfg.SPRPSplit = v.GetFloat64("budget.sp_rp_split")
	cfg.ReplacementTierPct = v.GetFloat64("budget.replacement_tier_pct")
	cfg.MinReplacementTierSize = v.GetInt("budget.min_replacement_tier_size")
	cfg.MaxIterations = v.GetInt("budget.max_iterations")
	cfg.ConvergenceThreshold = v.GetInt("budget.convergence_threshold")
	cfg.UtilPositionName = valuation.PositionUTIL

	// Viper lowercases every map key it stores (case-insensitive lookup),
	// but Position/Role/Category values are upper-case string constants
	// throughout the valuation package, so every key read back out of a
	// viper map must be upper-cased before use.
	cfg.RosterSlots = map[valuation.Position]int{}
	for pos, slots := range v.GetStringMap("budget.roster_slots") {
		cfg.RosterSlots[valuation.Position(strings.ToUpper(pos))] = toInt(slots)
	}
	cfg.PitcherRosterSlots = map[valuation.Role]int{}
	for role, slots := range v.GetStringMap("budget.pitcher_roster_slots") {
		cfg.PitcherRosterSlots[valuation.Role(strings.ToUpper(role))] = toInt(slots)
	}

	if weights := v.GetStringMap("budget.hitter_category_weights"); len(weights) > 0 {
		cfg.HitterCategoryWeights = toWeights(weights)
	}
	if weights := v.GetStringMap("budget.sp_category_weights"); len(weights) > 0 {
		cfg.SPCategoryWeights = toWeights(weights)
	}
	if weights := v.GetStringMap("budget.rp_category_weights"); len(weights) > 0 {
		cfg.RPCategoryWeights = toWeights(weights)
	}

	return cfg
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func toWeights(m map[string]any) map[valuation.Category]float64 {
	out := make(map[valuation.Category]float64, len(m))
	for k, v := range m {
		switch n := v.(type) {
		case float64:
			out[valuation.Category(strings.ToUpper(k))] = n
		case int:
			out[valuation.Category(strings.ToUpper(k))] = float64(n)
		}
	}
	return out
}

// Get returns the global configuration.
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded; call config.Load() first")
	}
	return globalConfig
}

// MustLoad loads configuration or panics.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
