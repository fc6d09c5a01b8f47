package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pokemon-sandwich/suggester/internal/effect"
	"github.com/pokemon-sandwich/suggester/internal/generator"
	"github.com/pokemon-sandwich/suggester/internal/ingredientdata"
	"github.com/pokemon-sandwich/suggester/internal/sandwicherrors"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <target> [target...]",
	Short: "Search for sandwich recipes matching 1-3 target effects",
	Long: `Each target is either "egg" or "<power>,<type>", e.g. "sparkling,normal".
Up to three targets may be given; sandwich-cli searches via Monte Carlo
tree search and writes the discovered recipes, sorted by descending
score, to the configured output path (or stdout with --output -).`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().Int("num-iter", 0, "number of generator iterations (overrides config)")
	suggestCmd.Flags().String("rollout-policy", "", "uniform, stop-biased, or slot-weighted (overrides config)")
	suggestCmd.Flags().Float64("policy-probability", 0, "probability parameter for stop-biased/slot-weighted (overrides config)")
	suggestCmd.Flags().Float64("exploration-constant", 0, "UCT exploration constant (overrides config)")
	suggestCmd.Flags().Int64("max-walltime", 0, "per-search wall-time budget in milliseconds (overrides config)")
	suggestCmd.Flags().Int("min-fillings", 0, "minimum fillings per recipe (overrides config)")
	suggestCmd.Flags().Int("max-fillings", 0, "maximum fillings per recipe (overrides config)")
	suggestCmd.Flags().Int("max-condiments", 0, "maximum condiments per recipe (overrides config)")
	suggestCmd.Flags().Int("num-players", 0, "number of players sharing the recipe (overrides config)")
	suggestCmd.Flags().Bool("strict-type-sharing", false, "reject 3 same-typed non-egg, non-sparkling targets as unreachable")
	suggestCmd.Flags().StringP("output", "o", "", "output CSV path, or - for stdout (overrides config)")
	suggestCmd.Flags().String("summary-format", "", "additionally print the top recipes as json or yaml")
	suggestCmd.Flags().Int("summary-top", 10, "number of recipes included in --summary-format output")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	strictTypeSharing, _ := cmd.Flags().GetBool("strict-type-sharing")
	if !cmd.Flags().Changed("strict-type-sharing") {
		strictTypeSharing = cfg.Recipe.StrictTypeSharing
	}

	targets, err := effect.ParseTargets(args, strictTypeSharing)
	if err != nil {
		printError("invalid targets: %v", err)
		return exitWithCode(1, err)
	}

	table, err := ingredientdata.Load()
	if err != nil {
		printError("failed to load ingredient table: %v", err)
		return exitWithCode(2, err)
	}

	numIter := overrideInt(cmd, "num-iter", cfg.MCTS.NumIter)
	rolloutPolicy := overrideString(cmd, "rollout-policy", cfg.MCTS.RolloutPolicy)
	policyProbability := overrideFloat(cmd, "policy-probability", cfg.MCTS.PolicyProbability)
	explorationConstant := overrideFloat(cmd, "exploration-constant", cfg.MCTS.ExplorationConstant)
	maxWalltime := overrideInt64(cmd, "max-walltime", cfg.MCTS.MaxWalltimeMS)
	minFillings := overrideInt(cmd, "min-fillings", cfg.Recipe.MinFillings)
	maxFillings := overrideInt(cmd, "max-fillings", cfg.Recipe.MaxFillings)
	maxCondiments := overrideInt(cmd, "max-condiments", cfg.Recipe.MaxCondiments)
	numPlayers := overrideInt(cmd, "num-players", cfg.Recipe.NumPlayers)
	outputPath := overrideString(cmd, "output", cfg.Output.Path)

	driver, err := generator.NewDriver(rolloutPolicy, policyProbability, explorationConstant, maxWalltime, cfg.MCTS.Seed)
	if err != nil {
		printError("invalid MCTS configuration: %v", err)
		return exitWithCode(2, err)
	}

	gen, err := generator.New(table, targets, generator.Options{
		NumPlayers:    numPlayers,
		MinFillings:   minFillings,
		MaxFillings:   maxFillings,
		MaxCondiments: maxCondiments,
		Driver:        driver,
	}, log)
	if err != nil {
		printError("invalid generator configuration: %v", err)
		return exitWithCode(2, err)
	}

	log.Info("starting search",
		zap.Int("num_iter", numIter),
		zap.String("rollout_policy", rolloutPolicy),
		zap.Int("num_targets", len(targets.Targets)),
	)

	results, err := gen.Run(context.Background(), numIter)
	if err != nil {
		printError("search failed: %v", err)
		return exitWithCode(2, err)
	}

	rows := rowsFromResults(table, results)
	sortRows(rows)

	if err := writeCSV(outputPath, rows); err != nil {
		printError("failed to write output: %v", err)
		return exitWithCode(2, err)
	}

	summaryFormat, _ := cmd.Flags().GetString("summary-format")
	summaryTop, _ := cmd.Flags().GetInt("summary-top")
	if err := writeSummary(summaryFormat, rows, summaryTop); err != nil {
		printError("failed to write summary: %v", err)
		return exitWithCode(2, err)
	}

	printSuccess("discovered %d recipe(s)", len(rows))
	return nil
}

// exitWithCode records the intended process exit code (spec §6: 0 success,
// 1 validation failure, 2 configuration/runtime failure) without calling
// os.Exit directly, so cobra's own error reporting still runs first.
func exitWithCode(code int, cause error) error {
	return &cliExitError{code: code, cause: cause}
}

type cliExitError struct {
	code  int
	cause error
}

func (e *cliExitError) Error() string { return e.cause.Error() }

// ExitCode extracts the exit code a cliExitError carries, or 1 for any
// other error (spec §6).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ce, ok := err.(*cliExitError); ok {
		return ce.code
	}
	if _, ok := err.(sandwicherrors.Kinded); ok {
		return 1
	}
	return 1
}

func overrideInt(cmd *cobra.Command, flag string, fallback int) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	return fallback
}

func overrideInt64(cmd *cobra.Command, flag string, fallback int64) int64 {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt64(flag)
		return v
	}
	return fallback
}

func overrideFloat(cmd *cobra.Command, flag string, fallback float64) float64 {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetFloat64(flag)
		return v
	}
	return fallback
}

func overrideString(cmd *cobra.Command, flag string, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return fallback
}
