// Package recipe implements the dense count-vector Recipe representation
// (spec §3): an ordered multiset of ingredient indices with counts, plus
// legality predicates and derived scalars.
package recipe

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pokemon-sandwich/suggester/internal/ingredient"
)

// SingleIngredientCapSinglePlayer and its multiplayer counterpart bound how
// many pieces a single filling ingredient may contribute (spec §3).
const (
	SingleIngredientCapSinglePlayer = 12
	SingleIngredientCapMultiplayer  = 15
)

// Recipe is a dense count vector over the full ingredient table.
type Recipe struct {
	Table      *ingredient.Table
	Counts     []int
	NumPlayers int
}

// New returns an empty recipe (all counts zero) for the given table and
// player count.
func New(table *ingredient.Table, numPlayers int) *Recipe {
	return &Recipe{
		Table:      table,
		Counts:     make([]int, table.Len()),
		NumPlayers: numPlayers,
	}
}

// Clone returns a deep copy; spec §4.4 requires state transitions to
// clone rather than mutate a shared recipe.
func (r *Recipe) Clone() *Recipe {
	counts := make([]int, len(r.Counts))
	copy(counts, r.Counts)
	return &Recipe{Table: r.Table, Counts: counts, NumPlayers: r.NumPlayers}
}

// Add increments ingredient i's count by n (n may be negative, though no
// caller in this module ever removes ingredients).
func (r *Recipe) Add(i, n int) {
	r.Counts[i] += n
}

// NumCondiments returns the weighted sum of condiment counts.
func (r *Recipe) NumCondiments() int {
	total := 0
	for i, c := range r.Counts {
		if r.Table.IsCondiment[i] {
			total += c
		}
	}
	return total
}

// NumFillings returns the weighted sum of filling counts.
func (r *Recipe) NumFillings() int {
	total := 0
	for i, c := range r.Counts {
		if r.Table.IsFilling(i) {
			total += c
		}
	}
	return total
}

// NumHerbaMystica returns the weighted sum of herba mystica counts.
func (r *Recipe) NumHerbaMystica() int {
	total := 0
	for i, c := range r.Counts {
		if r.Table.IsHerbaMystica[i] {
			total += c
		}
	}
	return total
}

// TotalPieces sums count x pieces over fillings only, per spec §3.
func (r *Recipe) TotalPieces() int {
	total := 0
	for i, c := range r.Counts {
		if r.Table.IsFilling(i) {
			total += c * r.Table.Pieces[i]
		}
	}
	return total
}

// SingleIngredientCap returns the per-ingredient piece cap for this
// recipe's player count.
func (r *Recipe) SingleIngredientCap() int {
	if r.NumPlayers <= 1 {
		return SingleIngredientCapSinglePlayer
	}
	return SingleIngredientCapMultiplayer
}

// IsLegal reports whether the recipe satisfies spec §3's per-player
// bounds and the single-ingredient piece cap.
func (r *Recipe) IsLegal() bool {
	players := r.NumPlayers
	if players < 1 {
		players = 1
	}
	fillings := r.NumFillings()
	condiments := r.NumCondiments()
	if fillings < players || fillings > 6*players {
		return false
	}
	if condiments < players || condiments > 4*players {
		return false
	}
	cap := r.SingleIngredientCap()
	for i, c := range r.Counts {
		if r.Table.IsFilling(i) && c*r.Table.Pieces[i] > cap {
			return false
		}
	}
	return true
}

// Key returns a canonical string identifying the count vector — two
// recipes with identical counts produce the same key, order-independently
// (the vector is already order-independent by construction). Used for
// duplicate suppression (spec §4.4) and as a map/set key.
func (r *Recipe) Key() string {
	var b strings.Builder
	for i, c := range r.Counts {
		if c == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

// IngredientNames returns the recipe's ingredient names, each repeated by
// its count, sorted for deterministic display.
func (r *Recipe) IngredientNames() []string {
	var names []string
	for i, c := range r.Counts {
		for n := 0; n < c; n++ {
			names = append(names, r.Table.Names[i])
		}
	}
	sort.Strings(names)
	return names
}

// CondimentNames and FillingNames split IngredientNames by kind, each
// sorted, for CSV/result presentation (spec §6).
func (r *Recipe) CondimentNames() []string {
	return r.namesWhere(func(i int) bool { return r.Table.IsCondiment[i] })
}

func (r *Recipe) FillingNames() []string {
	return r.namesWhere(func(i int) bool { return r.Table.IsFilling(i) })
}

func (r *Recipe) namesWhere(pred func(int) bool) []string {
	var names []string
	for i, c := range r.Counts {
		if !pred(i) {
			continue
		}
		for n := 0; n < c; n++ {
			names = append(names, r.Table.Names[i])
		}
	}
	sort.Strings(names)
	return names
}
