package mcts

import (
	"math"

	"github.com/pokemon-sandwich/suggester/internal/effect"
	"github.com/pokemon-sandwich/suggester/internal/enums"
	"github.com/pokemon-sandwich/suggester/internal/ingredient"
	"github.com/pokemon-sandwich/suggester/internal/metrics"
	"github.com/pokemon-sandwich/suggester/internal/recipe"
)

// rewardGrowthFactor is log2(300)/2: with exponent growthFactor*(level-1)
// it anchors level 1 to reward ~1, level 2 to ~17.32, and level 3 to 300
// (spec §4.4's reward formula, Open Question 2 resolved in SPEC_FULL.md §9).
var rewardGrowthFactor = math.Log2(300) / 2

// State is the MCTS state trait spec §9 asks for: SandwichState is its
// sole implementation.
type State interface {
	IsTerminal() bool
	PossibleActions() []Action
	Move(a Action) (State, error)
	Reward() float64
}

// SandwichState wraps a partial Recipe under construction (spec §4.4).
type SandwichState struct {
	Recipe    *recipe.Recipe
	Targets   *effect.TargetSet
	Evaluator *effect.Evaluator
	Table     *ingredient.Table

	MinFillings   int
	MaxFillings   int
	MaxCondiments int

	Finished bool
	Seen     *DuplicateSet

	rewardCache *float64
}

// NewSandwichState builds an empty SandwichState (Recipe has all-zero
// counts).
func NewSandwichState(table *ingredient.Table, evaluator *effect.Evaluator, targets *effect.TargetSet,
	numPlayers, minFillings, maxFillings, maxCondiments int, seen *DuplicateSet) *SandwichState {
	return &SandwichState{
		Recipe:        recipe.New(table, numPlayers),
		Targets:       targets,
		Evaluator:     evaluator,
		Table:         table,
		MinFillings:   minFillings,
		MaxFillings:   maxFillings,
		MaxCondiments: maxCondiments,
		Seen:          seen,
	}
}

// IsTerminal reports whether no further actions are legal (spec §4.4).
func (s *SandwichState) IsTerminal() bool {
	return s.Finished || (s.Recipe.NumFillings() == s.MaxFillings && s.Recipe.NumCondiments() == s.MaxCondiments)
}

// isEmpty reports whether no ingredient has been selected yet.
func (s *SandwichState) isEmpty() bool {
	for _, c := range s.Recipe.Counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// wouldDuplicate reports whether incrementing ingredient i would produce a
// count-vector key already recorded in Seen (spec §4.4 duplicate
// suppression).
func (s *SandwichState) wouldDuplicate(i int) bool {
	s.Recipe.Counts[i]++
	key := s.Recipe.Key()
	s.Recipe.Counts[i]--
	dup := s.Seen.Contains(key)
	if dup {
		metrics.DuplicateSuppressedTotal.Inc()
	}
	return dup
}

// PossibleActions enumerates the legal actions from this state (spec
// §4.4). The caller must not call this on a terminal state.
func (s *SandwichState) PossibleActions() []Action {
	if s.isEmpty() {
		return s.baseRecipeActions()
	}

	if s.Targets.HasPower(enums.Sparkling) && s.Recipe.NumCondiments() == 1 {
		var actions []Action
		for _, h := range s.Table.Condiments(true) {
			actions = append(actions, SelectCondiment{IngredientID: h})
		}
		return actions
	}

	var actions []Action
	numFillings := s.Recipe.NumFillings()
	numCondiments := s.Recipe.NumCondiments()
	cap := s.Recipe.SingleIngredientCap()

	if numFillings < s.MaxFillings {
		for _, f := range s.Table.Fillings() {
			newPieces := (s.Recipe.Counts[f] + 1) * s.Table.Pieces[f]
			if newPieces > cap {
				continue
			}
			if s.wouldDuplicate(f) {
				continue
			}
			actions = append(actions, SelectFilling{IngredientID: f})
		}
	}

	if numFillings >= s.MinFillings {
		for _, c := range s.Table.NonHerbaCondiments() {
			if numCondiments >= s.MaxCondiments {
				break
			}
			if s.wouldDuplicate(c) {
				continue
			}
			actions = append(actions, SelectCondiment{IngredientID: c})
		}
		actions = append(actions, FinishSandwich{})
	}

	if len(actions) == 0 {
		actions = append(actions, FinishSandwich{})
	}
	return actions
}

func (s *SandwichState) baseRecipeActions() []Action {
	var condiments []int
	if s.Targets.HasPower(enums.Title) {
		condiments = s.Table.Condiments(true)
	} else {
		condiments = s.Table.NonHerbaCondiments()
	}

	var actions []Action
	for _, c := range condiments {
		for _, f := range s.Table.Fillings() {
			actions = append(actions, SelectBaseRecipe{CondimentID: c, FillingID: f})
		}
	}
	return actions
}

// Move applies an action, returning a new state (spec §4.4's
// clone-on-move semantics — the receiver is left untouched).
func (s *SandwichState) Move(a Action) (State, error) {
	next := &SandwichState{
		Recipe:        s.Recipe.Clone(),
		Targets:       s.Targets,
		Evaluator:     s.Evaluator,
		Table:         s.Table,
		MinFillings:   s.MinFillings,
		MaxFillings:   s.MaxFillings,
		MaxCondiments: s.MaxCondiments,
		Finished:      s.Finished,
		Seen:          s.Seen,
	}

	switch action := a.(type) {
	case SelectBaseRecipe:
		next.Recipe.Add(action.CondimentID, 1)
		next.Recipe.Add(action.FillingID, 1)
	case SelectCondiment:
		next.Recipe.Add(action.IngredientID, 1)
	case SelectFilling:
		next.Recipe.Add(action.IngredientID, 1)
	case FinishSandwich:
		next.Finished = true
	default:
		panic("mcts: invariant violation: unknown Action variant")
	}

	if next.IsTerminal() {
		next.Seen.Add(next.Recipe.Key())
	}
	return next, nil
}

// Reward computes the memoized reward (spec §4.4).
func (s *SandwichState) Reward() float64 {
	if s.rewardCache != nil {
		return *s.rewardCache
	}
	r := s.computeReward()
	s.rewardCache = &r
	return r
}

func (s *SandwichState) computeReward() float64 {
	if !s.Recipe.IsLegal() {
		return 0
	}

	effects := s.Evaluator.Evaluate(s.Recipe)
	matchedIdx := s.Targets.MatchedPowers(effects)
	numTargets := len(s.Targets.Targets)
	base := float64(len(matchedIdx)) / float64(numTargets)
	if base < 1 {
		return base
	}

	sumLevels := 0
	for _, i := range matchedIdx {
		sumLevels += effects[i].Level
	}
	meanLevel := float64(sumLevels) / float64(len(matchedIdx))
	return math.Pow(2, rewardGrowthFactor*(meanLevel-1))
}
