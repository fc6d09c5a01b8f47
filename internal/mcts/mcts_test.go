package mcts

import (
	"github.com/pokemon-sandwich/suggester/internal/effect"
	"github.com/pokemon-sandwich/suggester/internal/enums"
	"github.com/pokemon-sandwich/suggester/internal/ingredient"
)

// testTable builds a small, fully synthetic ingredient table: two
// fillings (F1, F2), two plain condiments (C1, C2), and one Herba
// Mystica condiment (H1). Only the fields action generation and reward
// computation actually read are populated; the rest are zeroed.
func testTable() *ingredient.Table {
	names := []string{"F1", "F2", "C1", "C2", "H1"}
	pieces := []int{2, 2, 1, 1, 1}
	isCondiment := []bool{false, false, true, true, true}
	isHerba := []bool{false, false, false, false, true}

	var flavor [][enums.NumFlavors]int16
	var power [][enums.NumPowers]int16
	var typ [][enums.NumTypes]int16
	for range names {
		flavor = append(flavor, [enums.NumFlavors]int16{})
		power = append(power, [enums.NumPowers]int16{})
		typ = append(typ, [enums.NumTypes]int16{})
	}
	// F1 contributes enough Catching/Fire weight that a recipe built
	// mostly from F1 scores a high reward against a Catching,Fire target.
	power[0][enums.Catching] = 200
	typ[0][enums.Fire] = 200
	flavor[0][enums.Sweet] = 10
	flavor[0][enums.Sour] = 1

	return ingredient.New(names, pieces, isCondiment, isHerba, flavor, power, typ)
}

func eggTargetSet() *effect.TargetSet {
	ts, err := effect.NewTargetSet([]effect.Target{{Power: enums.Egg}}, false)
	if err != nil {
		panic(err)
	}
	return ts
}

func titleTargetSet() *effect.TargetSet {
	t := enums.Normal
	ts, err := effect.NewTargetSet([]effect.Target{{Power: enums.Title, Type: &t}}, false)
	if err != nil {
		panic(err)
	}
	return ts
}

func catchingFireTargetSet() *effect.TargetSet {
	t := enums.Fire
	ts, err := effect.NewTargetSet([]effect.Target{{Power: enums.Catching, Type: &t}}, false)
	if err != nil {
		panic(err)
	}
	return ts
}

func newState(table *ingredient.Table, targets *effect.TargetSet, minF, maxF, maxC int) *SandwichState {
	seen := NewDuplicateSet()
	eval := effect.NewEvaluator(table)
	return NewSandwichState(table, eval, targets, 1, minF, maxF, maxC, seen)
}
