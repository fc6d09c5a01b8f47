// Package effect implements the effect evaluator (spec §4.2) and the
// target model (spec §4.3): the pure scoring function that turns a recipe
// into three (Power, Type, Level) tuples, and the validated set of
// desired effects a search targets.
package effect

import "github.com/pokemon-sandwich/suggester/internal/enums"

// Effect is one of the three ordered outputs the evaluator produces for a
// recipe. Type is nil when Power is Egg (egg effects are typeless).
type Effect struct {
	Power enums.Power
	Type  *enums.Type
	Level int
}

// SameEffect reports whether two effects share the same Power and Type,
// ignoring Level — the comparison spec §4.3's target-matching uses.
func SameEffect(a, b Effect) bool {
	if a.Power != b.Power {
		return false
	}
	if (a.Type == nil) != (b.Type == nil) {
		return false
	}
	return a.Type == nil || *a.Type == *b.Type
}

func typePtr(t enums.Type) *enums.Type {
	v := t
	return &v
}
