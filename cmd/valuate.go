package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"stormlightlabs.org/baseball/internal/config"
	"stormlightlabs.org/baseball/internal/echo"
	"stormlightlabs.org/baseball/internal/ingest"
	"stormlightlabs.org/baseball/internal/report"
	"stormlightlabs.org/baseball/internal/valuation"
)

// ValuateCmd creates the valuate command group.
func ValuateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "valuate",
		Short: "True Replacement Price valuation engine",
		Long:  "Converts hitter/pitcher projections and league settings into auction dollar valuations.",
	}
	cmd.AddCommand(ValuateRunCmd())
	cmd.AddCommand(ValuateValidateCmd())
	return cmd
}

// ValuateRunCmd creates the "valuate run" command.
func ValuateRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the valuation pipeline and write output artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValuation(cmd, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to valuation.toml (defaults to ./valuation.toml)")
	return cmd
}

// ValuateValidateCmd creates the "valuate validate" command. It runs the
// full pipeline in memory and reports the Validator/Normalizer's findings
// without writing any output artifacts, for CI spot checks against a
// league file before committing to a real run.
func ValuateValidateCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the pipeline and report validation warnings without writing output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateValuation(cmd, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to valuation.toml (defaults to ./valuation.toml)")
	return cmd
}

// pipelineContext bundles everything loaded from disk before a run, plus
// the raw records "valuate run" needs again for the JSON report writers.
type pipelineContext struct {
	cfg            *config.Config
	hitterRecords  []ingest.HitterRecord
	pitcherRecords []ingest.PitcherRecord
	input          valuation.PipelineInput
	budgetCfg      valuation.BudgetConfig
}

// loadPipelineContext reads config and the three upstream artifacts and
// assembles the kernel's PipelineInput. Both "valuate run" and
// "valuate validate" share this path; they differ only in what they do
// with the result.
func loadPipelineContext(configPath string) (*pipelineContext, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		echo.Errorf("failed to load configuration: %v", err)
		return nil, err
	}

	hitterRecords, err := ingest.LoadHitters(cfg.Paths.HittersFile)
	if err != nil {
		echo.Errorf("failed to load hitters: %v", err)
		return nil, err
	}
	pitcherRecords, err := ingest.LoadPitchers(cfg.Paths.PitchersFile)
	if err != nil {
		echo.Errorf("failed to load pitchers: %v", err)
		return nil, err
	}
	league, err := ingest.LoadLeagueSummary(cfg.Paths.LeagueSummaryFile)
	if err != nil {
		echo.Errorf("failed to load league summary: %v", err)
		return nil, err
	}

	rawHitters, err := ingest.ToRawHitters(hitterRecords)
	if err != nil {
		echo.Errorf("malformed hitter input: %v", err)
		return nil, err
	}
	rawPitchers, err := ingest.ToRawPitchers(pitcherRecords)
	if err != nil {
		echo.Errorf("malformed pitcher input: %v", err)
		return nil, err
	}

	players := valuation.Normalize(rawHitters, rawPitchers)

	budgetCfg := cfg.Budget
	if league.Teams > 0 {
		budgetCfg.NumTeams = league.Teams
	}
	if league.AcquisitionBudget > 0 {
		budgetCfg.BudgetPerTeam = league.AcquisitionBudget
	} else if league.AuctionBudget > 0 {
		budgetCfg.BudgetPerTeam = league.AuctionBudget
	}
	if len(league.Scoring.Reverse) > 0 {
		budgetCfg.Inverted = league.Scoring.InvertedSet()
	}

	return &pipelineContext{
		cfg:            cfg,
		hitterRecords:  hitterRecords,
		pitcherRecords: pitcherRecords,
		budgetCfg:      budgetCfg,
		input: valuation.PipelineInput{
			Players:            players,
			RosterSlots:        budgetCfg.RosterSlots,
			PitcherRosterSlots: budgetCfg.PitcherRosterSlots,
			BattingCategories:  league.Scoring.BattingCategories(),
			PitchingCategories: league.Scoring.PitchingCategories(),
		},
	}, nil
}

func validateValuation(cmd *cobra.Command, configPath string) error {
	logger := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
		ReportTimestamp: true,
		Prefix:          "🔎",
	})
	echo.Header("True Replacement Price Validation Check")

	pc, err := loadPipelineContext(configPath)
	if err != nil {
		return err
	}

	result, err := valuation.Run(cmd.Context(), pc.input, pc.budgetCfg, logger)
	if err != nil {
		echo.Errorf("pipeline failed: %v", err)
		return err
	}

	if result.Validation.Rescaled {
		echo.Warnf("budget rescaled by factor %.4f to balance against league total", result.Validation.ScaleFactor)
	}
	if len(result.Validation.Warnings) == 0 {
		echo.Successf("no validation warnings across %d players", len(result.Players))
		return nil
	}
	for _, w := range result.Validation.Warnings {
		echo.Warnf("warning: %s", w)
	}
	echo.Successf("validation complete: %d warning(s)", len(result.Validation.Warnings))
	return nil
}

func runValuation(cmd *cobra.Command, configPath string) error {
	logger := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
		ReportTimestamp: true,
		Prefix:          "💰",
	})
	echo.Header("True Replacement Price Valuation Engine")

	pc, err := loadPipelineContext(configPath)
	if err != nil {
		return err
	}

	result, err := valuation.Run(cmd.Context(), pc.input, pc.budgetCfg, logger)
	if err != nil {
		echo.Errorf("pipeline failed: %v", err)
		return err
	}

	allPools := append(append([]*valuation.PositionPool(nil), result.HitterPools...), result.UtilPool, result.SPPool, result.RPPool)
	valuationsPath := pc.cfg.Paths.OutputDir + "/valuations.csv"
	summaryPath := pc.cfg.Paths.OutputDir + "/position_summary.csv"
	hittersPath := pc.cfg.Paths.OutputDir + "/hitters.json"
	pitchersPath := pc.cfg.Paths.OutputDir + "/pitchers.json"

	// Derive the CSV's columns from the categories each pool actually
	// computed rather than from the league's raw scoring lists: those
	// lists are commonly absent (the default league configuration), in
	// which case CategorySet already fell back to the spec defaults
	// inside BuildPool, and the raw lists alone would yield no columns.
	var poolCategories [][]valuation.Category
	for _, pool := range allPools {
		poolCategories = append(poolCategories, pool.Categories)
	}
	allCategories := report.AllCategories(poolCategories...)
	if err := report.WriteValuationsCSV(valuationsPath, result.Players, allCategories); err != nil {
		return fmt.Errorf("writing valuations.csv: %w", err)
	}
	if err := report.WritePositionSummaryCSV(summaryPath, allPools); err != nil {
		return fmt.Errorf("writing position_summary.csv: %w", err)
	}
	byID := report.PlayersByID(result.Players)
	if err := report.WriteHittersJSON(hittersPath, pc.hitterRecords, byID); err != nil {
		return fmt.Errorf("writing hitters.json: %w", err)
	}
	if err := report.WritePitchersJSON(pitchersPath, pc.pitcherRecords, byID); err != nil {
		return fmt.Errorf("writing pitchers.json: %w", err)
	}

	if !result.HitterConvergence.Converged || !result.PitcherConvergence.Converged || !result.UtilConvergence.Converged {
		echo.Warnf("convergence exhausted its iteration cap in at least one pool; current state was emitted")
	}
	for _, w := range result.Validation.Warnings {
		echo.Warnf("warning: %s", w)
	}

	echo.Successf("wrote %s, %s, %s, %s", valuationsPath, summaryPath, hittersPath, pitchersPath)
	return nil
}
