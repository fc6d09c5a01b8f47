package effect

import (
	"sort"

	"github.com/pokemon-sandwich/suggester/internal/enums"
	"github.com/pokemon-sandwich/suggester/internal/ingredient"
	"github.com/pokemon-sandwich/suggester/internal/recipe"
)

// flavorComboBonus is the fixed 20-entry table (spec §4.2 step 3): the two
// dominant flavors add +100 to one Power. Keys are (f1, f2) in dominance
// order; the table is directional (Sweet,Salty) != (Salty,Sweet).
var flavorComboBonus = map[[2]enums.Flavor]enums.Power{
	{enums.Sweet, enums.Salty}: enums.Egg,
	{enums.Sweet, enums.Sour}:  enums.Catching,
	{enums.Sweet, enums.Bitter}: enums.Egg,
	{enums.Sweet, enums.Hot}:   enums.Raid,

	{enums.Salty, enums.Sweet}:  enums.Encounter,
	{enums.Salty, enums.Sour}:   enums.Encounter,
	{enums.Salty, enums.Bitter}: enums.ExpPoint,
	{enums.Salty, enums.Hot}:    enums.Encounter,

	{enums.Sour, enums.Sweet}:  enums.Catching,
	{enums.Sour, enums.Salty}:  enums.Teensy,
	{enums.Sour, enums.Bitter}: enums.Teensy,
	{enums.Sour, enums.Hot}:    enums.Teensy,

	{enums.Bitter, enums.Sweet}: enums.ItemDrop,
	{enums.Bitter, enums.Salty}: enums.ExpPoint,
	{enums.Bitter, enums.Sour}:  enums.ItemDrop,
	{enums.Bitter, enums.Hot}:   enums.ItemDrop,

	{enums.Hot, enums.Sweet}:  enums.Raid,
	{enums.Hot, enums.Salty}:  enums.Humungo,
	{enums.Hot, enums.Sour}:   enums.Humungo,
	{enums.Hot, enums.Bitter}: enums.Humungo,
}

const flavorComboBonusAmount = 100

// sparklingThreshold is the minimum weighted Sparkling contribution that
// survives the gate in step 4 — two Herba Mystica, each contributing
// 1000, clear it; one alone does not.
const sparklingThreshold = 2000

// Evaluator computes effects for a recipe against a fixed ingredient
// table. It is pure and stateless; constructing one is cheap and they may
// be shared freely (spec §9's singleton note: a plain shared value, no
// runtime enforcement needed).
type Evaluator struct {
	table *ingredient.Table
}

// NewEvaluator binds an Evaluator to an ingredient table.
func NewEvaluator(table *ingredient.Table) *Evaluator {
	return &Evaluator{table: table}
}

// Evaluate computes the three ordered effects for r (spec §4.2). It never
// fails: illegal or empty recipes still produce three slots, irrelevant
// because callers gate on Recipe.IsLegal.
func (e *Evaluator) Evaluate(r *recipe.Recipe) [3]Effect {
	var flavorSum [enums.NumFlavors]int64
	var powerSum [enums.NumPowers]int64
	var typeSum [enums.NumTypes]int64

	// Step 1 — weighted sums.
	for i, count := range r.Counts {
		if count == 0 {
			continue
		}
		w := int64(count) * int64(e.table.Pieces[i])
		for f := 0; f < enums.NumFlavors; f++ {
			flavorSum[f] += w * int64(e.table.FlavorMat[i][f])
		}
		for p := 0; p < enums.NumPowers; p++ {
			powerSum[p] += w * int64(e.table.PowerMat[i][p])
		}
		for t := 0; t < enums.NumTypes; t++ {
			typeSum[t] += w * int64(e.table.TypeMat[i][t])
		}
	}

	// Step 2 — dominant flavors. A stable descending sort over an
	// ascending-ordinal-initialized index list ties ascending ordinal for
	// equal values, which also guarantees two distinct indices even when
	// every flavor is zero-weight.
	flavorOrder := stableDescendingOrder(enums.NumFlavors, func(i int) int64 { return flavorSum[i] })
	f1, f2 := enums.Flavor(flavorOrder[0]), enums.Flavor(flavorOrder[1])

	// Step 3 — flavor-combo bonus.
	if bonusPower, ok := flavorComboBonus[[2]enums.Flavor{f1, f2}]; ok {
		powerSum[bonusPower] += flavorComboBonusAmount
	}

	// Step 4 — sparkling gate.
	if powerSum[enums.Sparkling] < sparklingThreshold {
		powerSum[enums.Sparkling] = 0
	}

	// Step 5 — power ranking.
	powerOrder := stableDescendingOrder(enums.NumPowers, func(i int) int64 { return powerSum[i] })
	topPowers := [3]enums.Power{
		enums.Power(powerOrder[0]), enums.Power(powerOrder[1]), enums.Power(powerOrder[2]),
	}

	// Step 6 — type ranking and reorder.
	typeOrder := stableDescendingOrder(enums.NumTypes, func(i int) int64 { return typeSum[i] })
	t0, t1, t2 := enums.Type(typeOrder[0]), enums.Type(typeOrder[1]), enums.Type(typeOrder[2])
	v0, v1, v2 := typeSum[typeOrder[0]], typeSum[typeOrder[1]], typeSum[typeOrder[2]]
	finalTypes := reorderTypes(t0, t1, t2, v0, v1, v2)

	// Step 7 — levels.
	levels := computeLevels(v0, v1, v2)

	// Step 8 — assemble.
	var out [3]Effect
	for i := 0; i < 3; i++ {
		eff := Effect{Power: topPowers[i], Level: levels[i]}
		if eff.Power != enums.Egg {
			eff.Type = typePtr(finalTypes[i])
		}
		out[i] = eff
	}
	return out
}

// stableDescendingOrder returns indices [0, n) ordered by descending
// value(i), with ties broken by ascending original index — i.e. ascending
// ordinal, since callers always pass enum ordinals as indices.
func stableDescendingOrder(n int, value func(int) int64) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return value(idx[a]) > value(idx[b])
	})
	return idx
}

// reorderTypes implements spec §4.2 step 6's piecewise table on v0 and
// d = v0 - v1.
func reorderTypes(t0, t1, t2 enums.Type, v0, v1, v2 int64) [3]enums.Type {
	d := v0 - v1
	switch {
	case v0 > 480:
		return [3]enums.Type{t0, t0, t0}
	case v0 > 280 && v0 <= 480:
		return [3]enums.Type{t0, t0, t2}
	case v0 > 105 && v0 <= 280 && d > 105:
		return [3]enums.Type{t0, t0, t2}
	}

	split := false
	switch {
	case v0 >= 100 && v0 <= 105:
		split = d >= 80 && v1 <= 21
	case v0 >= 90 && v0 < 100:
		split = d >= 78 && v1 <= 16
	case v0 >= 80 && v0 < 90:
		split = d >= 74 && v1 <= 9
	case v0 >= 74 && v0 < 80:
		split = d >= 72 && v1 <= 5
	}
	if split {
		return [3]enums.Type{t0, t2, t0}
	}
	return [3]enums.Type{t0, t2, t1}
}

// computeLevels implements spec §4.2 step 7's piecewise table on
// (v0, v1, v2).
func computeLevels(v0, v1, v2 int64) [3]int {
	switch {
	case v0 < 180:
		return [3]int{1, 1, 1}
	case v0 <= 280:
		if v1 >= 180 && v2 >= 180 {
			return [3]int{2, 2, 1}
		}
		return [3]int{2, 1, 1}
	case v0 < 380:
		if v2 >= 180 {
			return [3]int{2, 2, 2}
		}
		return [3]int{2, 2, 1}
	case v0 < 460:
		if v1 >= 380 && v2 >= 380 {
			return [3]int{3, 3, 3}
		}
		return [3]int{3, 3, 2}
	default: // v0 >= 460
		return [3]int{3, 3, 3}
	}
}
