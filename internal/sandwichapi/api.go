// Package sandwichapi is the in-process library surface spec §6 asks the
// CLI to be a thin shell over: target parsing, recipe generation, and
// recipe accessors, independent of any CLI flag parsing or I/O.
package sandwichapi

import (
	"context"

	"github.com/pokemon-sandwich/suggester/internal/effect"
	"github.com/pokemon-sandwich/suggester/internal/generator"
	"github.com/pokemon-sandwich/suggester/internal/ingredient"
	"github.com/pokemon-sandwich/suggester/internal/ingredientdata"
	"github.com/pokemon-sandwich/suggester/internal/mcts"
	"github.com/pokemon-sandwich/suggester/internal/recipe"
	"github.com/pokemon-sandwich/suggester/internal/sandwichlog"
)

// ParseTargets resolves user-supplied "power,type" / "egg" strings into a
// validated TargetSet (spec §6's parse_targets).
func ParseTargets(items []string, strictSingleType bool) (*effect.TargetSet, error) {
	return effect.ParseTargets(items, strictSingleType)
}

// LoadIngredientTable loads the embedded ingredient table.
func LoadIngredientTable() (*ingredient.Table, error) {
	return ingredientdata.Load()
}

// GeneratorOptions mirrors generator.Options, re-exported so callers of
// this package never import internal/generator directly.
type GeneratorOptions = generator.Options

// NewGenerator constructs a recipe generator bound to one ingredient
// table and target set (spec §6's RecipeGenerator constructor).
func NewGenerator(table *ingredient.Table, targets *effect.TargetSet, opts GeneratorOptions, log *sandwichlog.Logger) (*generator.Generator, error) {
	return generator.New(table, targets, opts, log)
}

// NewDriver builds the MCTS driver backing a Generator from CLI-facing
// scalar parameters.
func NewDriver(policyName string, policyProbability, explorationConstant float64, maxWalltimeMS, seed int64) (*mcts.Driver, error) {
	return generator.NewDriver(policyName, policyProbability, explorationConstant, maxWalltimeMS, seed)
}

// Run executes numIter generator iterations and returns every newly
// discovered terminal recipe.
func Run(ctx context.Context, gen *generator.Generator, numIter int) ([]generator.Result, error) {
	return gen.Run(ctx, numIter)
}

// RecipeNames exposes a recipe's ingredient breakdown for CSV/table
// rendering (spec §6's recipe accessors).
func RecipeNames(r *recipe.Recipe) (fillings, condiments []string) {
	return r.FillingNames(), r.CondimentNames()
}
