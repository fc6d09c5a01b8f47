// Package ingredient holds the immutable, shared reference table of
// sandwich ingredients: for each ingredient its piece count, condiment /
// herba-mystica flags, and its contribution to the flavor, power, and
// type weighted sums the effect evaluator computes.
//
// The table is loaded once (see internal/ingredientdata) and never
// mutated afterward; every component that reads it does so through a
// shared *Table pointer, not a singleton accessor, per the "no runtime
// enforcement of singleton-ness is necessary" guidance this project
// follows throughout.
package ingredient

import (
	"fmt"

	"github.com/pokemon-sandwich/suggester/internal/enums"
	"github.com/pokemon-sandwich/suggester/internal/sandwicherrors"
)

// Table is the dense, read-only ingredient reference. Row i describes the
// ingredient with index i; FlavorMat, PowerMat, and TypeMat are the three
// contribution matrices step 1 of the evaluator weights and sums.
type Table struct {
	Names          []string
	Pieces         []int
	IsCondiment    []bool
	IsHerbaMystica []bool
	FlavorMat      [][enums.NumFlavors]int16
	PowerMat       [][enums.NumPowers]int16
	TypeMat        [][enums.NumTypes]int16

	byName map[string]int
}

// New builds a Table from parallel rows; all slices must share the same
// length. Callers (internal/ingredientdata) are expected to validate this
// invariant once at load time.
func New(names []string, pieces []int, isCondiment, isHerbaMystica []bool,
	flavor [][enums.NumFlavors]int16, power [][enums.NumPowers]int16, typ [][enums.NumTypes]int16) *Table {
	t := &Table{
		Names:          names,
		Pieces:         pieces,
		IsCondiment:    isCondiment,
		IsHerbaMystica: isHerbaMystica,
		FlavorMat:      flavor,
		PowerMat:       power,
		TypeMat:        typ,
		byName:         make(map[string]int, len(names)),
	}
	for i, n := range names {
		t.byName[n] = i
	}
	return t
}

// Len returns the number of ingredients in the table.
func (t *Table) Len() int { return len(t.Names) }

// IsFilling reports whether ingredient i is a filling (the complement of
// IsCondiment).
func (t *Table) IsFilling(i int) bool { return !t.IsCondiment[i] }

// IndexOf resolves an ingredient name to its dense index.
func (t *Table) IndexOf(name string) (int, error) {
	if i, ok := t.byName[name]; ok {
		return i, nil
	}
	return -1, &UnknownIngredientError{Name: name}
}

// Condiments returns the dense indices of every condiment, or only the
// herba mystica when herbaMysticaOnly is true. NonHerbaCondiments gives
// the condiments that are not herba mystica.
func (t *Table) Condiments(herbaMysticaOnly bool) []int {
	var out []int
	for i := range t.Names {
		if !t.IsCondiment[i] {
			continue
		}
		if t.IsHerbaMystica[i] != herbaMysticaOnly && herbaMysticaOnly {
			continue
		}
		out = append(out, i)
	}
	return out
}

// NonHerbaCondiments returns every condiment that is not herba mystica.
func (t *Table) NonHerbaCondiments() []int {
	var out []int
	for i := range t.Names {
		if t.IsCondiment[i] && !t.IsHerbaMystica[i] {
			out = append(out, i)
		}
	}
	return out
}

// Fillings returns the dense indices of every filling.
func (t *Table) Fillings() []int {
	var out []int
	for i := range t.Names {
		if !t.IsCondiment[i] {
			out = append(out, i)
		}
	}
	return out
}

// UnknownIngredientError is returned by IndexOf for a name the table does
// not contain (spec's UnknownIngredient lookup error).
type UnknownIngredientError struct {
	Name string
}

func (e *UnknownIngredientError) Error() string {
	return fmt.Sprintf("unknown ingredient: %q", e.Name)
}

func (e *UnknownIngredientError) ErrorKind() sandwicherrors.Kind {
	return sandwicherrors.KindLookup
}
