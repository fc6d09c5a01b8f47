package mcts

import (
	"fmt"
	"math/rand"

	"github.com/pokemon-sandwich/suggester/internal/sandwicherrors"
)

// InvalidProbabilityError reports a rollout-policy probability parameter
// outside its required range (spec §7).
type InvalidProbabilityError struct {
	Policy string
	P      float64
}

func (e *InvalidProbabilityError) Error() string {
	return fmt.Sprintf("%s policy: probability %v out of range", e.Policy, e.P)
}

func (e *InvalidProbabilityError) ErrorKind() sandwicherrors.Kind {
	return sandwicherrors.KindConfiguration
}

// Policy picks one action out of the legal action list for a rollout step
// (spec §4.6). Implementations must never return an action absent from
// actions.
type Policy interface {
	Select(state State, actions []Action, rng *rand.Rand) Action
}

// UniformPolicy samples uniformly at random.
type UniformPolicy struct{}

func (UniformPolicy) Select(_ State, actions []Action, rng *rand.Rand) Action {
	return actions[rng.Intn(len(actions))]
}

// StopBiasedPolicy upweights FinishSandwich, when legal, by
// p/(1-p) x (n-1) relative to every other action's weight of 1.
type StopBiasedPolicy struct {
	P float64
}

// NewStopBiasedPolicy validates p in (0, 1].
func NewStopBiasedPolicy(p float64) (*StopBiasedPolicy, error) {
	if p <= 0 || p > 1 {
		return nil, &InvalidProbabilityError{Policy: "stop-biased", P: p}
	}
	return &StopBiasedPolicy{P: p}, nil
}

func (sb *StopBiasedPolicy) Select(_ State, actions []Action, rng *rand.Rand) Action {
	finishIdx := -1
	for i, a := range actions {
		if _, ok := a.(FinishSandwich); ok {
			finishIdx = i
			break
		}
	}
	if finishIdx == -1 {
		return actions[rng.Intn(len(actions))]
	}
	if len(actions) == 1 {
		return actions[finishIdx]
	}
	if sb.P == 1 {
		return actions[finishIdx]
	}

	n := len(actions)
	finishWeight := sb.P / (1 - sb.P) * float64(n-1)
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	weights[finishIdx] = finishWeight
	return weightedSample(actions, weights, rng)
}

// SlotWeightedPolicy balances FinishSandwich against remaining filling and
// condiment slots (spec §4.6). Before the base recipe has been chosen it
// defers to uniform, since SelectBaseRecipe actions carry no filling-vs-
// condiment distinction.
type SlotWeightedPolicy struct {
	P float64
}

// NewSlotWeightedPolicy validates p in (0, 1).
func NewSlotWeightedPolicy(p float64) (*SlotWeightedPolicy, error) {
	if p <= 0 || p >= 1 {
		return nil, &InvalidProbabilityError{Policy: "slot-weighted", P: p}
	}
	return &SlotWeightedPolicy{P: p}, nil
}

func (sw *SlotWeightedPolicy) Select(state State, actions []Action, rng *rand.Rand) Action {
	ss, ok := state.(*SandwichState)
	if !ok || ss.isEmpty() {
		return actions[rng.Intn(len(actions))]
	}

	var finishIdx = -1
	var fillingIdx, condimentIdx []int
	for i, a := range actions {
		switch a.(type) {
		case FinishSandwich:
			finishIdx = i
		case SelectFilling:
			fillingIdx = append(fillingIdx, i)
		case SelectCondiment:
			condimentIdx = append(condimentIdx, i)
		}
	}

	weights := make([]float64, len(actions))

	wFinish := 0.0
	if finishIdx != -1 {
		wFinish = 100 * sw.P
		weights[finishIdx] = wFinish
	}
	remaining := 100 - wFinish

	numFillings := ss.Recipe.NumFillings()
	numCondiments := ss.Recipe.NumCondiments()
	free := (ss.MaxFillings - numFillings) + (ss.MaxCondiments - numCondiments)

	if free > 0 && remaining > 0 {
		fillingShare := remaining * float64(ss.MaxFillings-numFillings) / float64(free)
		condimentShare := remaining * float64(ss.MaxCondiments-numCondiments) / float64(free)

		if len(fillingIdx) > 0 {
			each := fillingShare / float64(len(fillingIdx))
			for _, i := range fillingIdx {
				weights[i] = each
			}
		}
		if len(condimentIdx) > 0 {
			each := condimentShare / float64(len(condimentIdx))
			for _, i := range condimentIdx {
				weights[i] = each
			}
		}
	}

	return weightedSample(actions, weights, rng)
}

// weightedSample draws one action with probability proportional to its
// weight. Zero-total weight falls back to uniform over actions.
func weightedSample(actions []Action, weights []float64, rng *rand.Rand) Action {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return actions[rng.Intn(len(actions))]
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return actions[i]
		}
	}
	return actions[len(actions)-1]
}
