// Package mcts implements the recipe-construction state machine
// (SandwichState), the search tree, the MCTS driver, and the stock
// rollout policies (spec §4.4-§4.6).
package mcts

// Action is the tagged union driving state transitions (spec §3): exactly
// four variants, each value-equal and hashable by construction (plain
// structs of comparable fields are valid Go map keys).
type Action interface {
	isAction()
}

// SelectBaseRecipe is only legal as the first action: it picks the
// starting condiment and filling simultaneously.
type SelectBaseRecipe struct {
	CondimentID int
	FillingID   int
}

// SelectCondiment adds one unit of the given condiment.
type SelectCondiment struct {
	IngredientID int
}

// SelectFilling adds one unit of the given filling.
type SelectFilling struct {
	IngredientID int
}

// FinishSandwich ends construction; the resulting state becomes terminal.
type FinishSandwich struct{}

func (SelectBaseRecipe) isAction() {}
func (SelectCondiment) isAction()  {}
func (SelectFilling) isAction()    {}
func (FinishSandwich) isAction()   {}
