package effect

import (
	"fmt"
	"strings"

	"github.com/pokemon-sandwich/suggester/internal/enums"
	"github.com/pokemon-sandwich/suggester/internal/sandwicherrors"
)

// Target is a single desired effect: a Power and, unless the power is
// Egg, a Type.
type Target struct {
	Power enums.Power
	Type  *enums.Type
}

// TargetSet is a validated, ordered collection of 1-3 distinct targets
// (spec §3). StrictSingleType resolves the "single-player type-sharing"
// open question (SPEC_FULL.md §9 Q1): when true, a 3-target, non-egg,
// same-type set without Sparkling is rejected as unreachable.
type TargetSet struct {
	Targets          []Target
	StrictSingleType bool
}

// InvalidTargetsError reports a TargetSet construction failure with a
// specific sub-cause (spec §7).
type InvalidTargetsError struct {
	Cause string
}

func (e *InvalidTargetsError) Error() string {
	return fmt.Sprintf("invalid targets: %s", e.Cause)
}

func (e *InvalidTargetsError) ErrorKind() sandwicherrors.Kind {
	return sandwicherrors.KindInputValidation
}

const (
	causeRepeatedPower         = "RepeatedPower: a power may not repeat"
	causeTypedEgg              = "TypedEgg: Egg is typeless"
	causeUntypedNonEgg         = "UntypedNonEgg: only Egg may omit a type"
	causeSparklingNoTitle      = "SparklingWithoutTitle: Sparkling requires Title"
	causeSparklingTypeMismatch = "SparklingTypeMismatch: Sparkling requires all non-egg targets share one type"
	causeUnreachableTypeShare  = "UnreachableTypeSharing: 3 same-typed non-egg targets without Sparkling are unreachable in strict mode"
	causeEmptyOrTooMany        = "targets must number between 1 and 3"
)

// NewTargetSet validates targets per spec §3's invariants.
func NewTargetSet(targets []Target, strictSingleType bool) (*TargetSet, error) {
	if len(targets) < 1 || len(targets) > 3 {
		return nil, &InvalidTargetsError{Cause: causeEmptyOrTooMany}
	}

	powers := make(map[enums.Power]struct{}, len(targets))
	for _, t := range targets {
		if _, dup := powers[t.Power]; dup {
			return nil, &InvalidTargetsError{Cause: causeRepeatedPower}
		}
		powers[t.Power] = struct{}{}

		if t.Power == enums.Egg && t.Type != nil {
			return nil, &InvalidTargetsError{Cause: causeTypedEgg}
		}
		if t.Power != enums.Egg && t.Type == nil {
			return nil, &InvalidTargetsError{Cause: causeUntypedNonEgg}
		}
	}

	_, hasSparkling := powers[enums.Sparkling]
	_, hasTitle := powers[enums.Title]
	_, hasEgg := powers[enums.Egg]

	if hasSparkling && !hasTitle {
		return nil, &InvalidTargetsError{Cause: causeSparklingNoTitle}
	}

	nonEggTypes := map[enums.Type]struct{}{}
	for _, t := range targets {
		if t.Power != enums.Egg {
			nonEggTypes[*t.Type] = struct{}{}
		}
	}

	if hasSparkling && len(nonEggTypes) > 1 {
		return nil, &InvalidTargetsError{Cause: causeSparklingTypeMismatch}
	}

	if strictSingleType && !hasSparkling && !hasEgg && len(targets) == 3 && len(nonEggTypes) == 1 {
		return nil, &InvalidTargetsError{Cause: causeUnreachableTypeShare}
	}

	ordered := make([]Target, len(targets))
	copy(ordered, targets)
	return &TargetSet{Targets: ordered, StrictSingleType: strictSingleType}, nil
}

// HasPower reports whether power is among the targets.
func (ts *TargetSet) HasPower(p enums.Power) bool {
	for _, t := range ts.Targets {
		if t.Power == p {
			return true
		}
	}
	return false
}

// MatchedPowers returns the indices (0, 1, 2) of effects whose Power and
// Type both match a target (spec §4.3's intersection operation; Egg
// ignores type).
func (ts *TargetSet) MatchedPowers(effects [3]Effect) []int {
	var matched []int
	for i, eff := range effects {
		for _, t := range ts.Targets {
			if t.Power != eff.Power {
				continue
			}
			if t.Power == enums.Egg {
				matched = append(matched, i)
				break
			}
			if eff.Type != nil && *eff.Type == *t.Type {
				matched = append(matched, i)
				break
			}
		}
	}
	return matched
}

// ParseTargets resolves user-supplied target strings ("power,type" or a
// bare "egg") case-insensitively, then validates the resulting set.
func ParseTargets(items []string, strictSingleType bool) (*TargetSet, error) {
	targets := make([]Target, 0, len(items))
	for _, item := range items {
		t, err := parseOneTarget(item)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return NewTargetSet(targets, strictSingleType)
}

// MalformedTargetStringError reports a target string that isn't a bare
// "egg" or a single "power,type" pair.
type MalformedTargetStringError struct {
	Input string
}

func (e *MalformedTargetStringError) Error() string {
	return fmt.Sprintf("malformed target string %q: expected \"power,type\" or \"egg\"", e.Input)
}

func (e *MalformedTargetStringError) ErrorKind() sandwicherrors.Kind {
	return sandwicherrors.KindInputValidation
}

func parseOneTarget(item string) (Target, error) {
	if strings.EqualFold(strings.TrimSpace(item), "egg") {
		return Target{Power: enums.Egg}, nil
	}
	parts := strings.Split(item, ",")
	if len(parts) != 2 {
		return Target{}, &MalformedTargetStringError{Input: item}
	}
	power, err := enums.ParsePower(strings.TrimSpace(parts[0]))
	if err != nil {
		return Target{}, err
	}
	typ, err := enums.ParseType(strings.TrimSpace(parts[1]))
	if err != nil {
		return Target{}, err
	}
	return Target{Power: power, Type: &typ}, nil
}

// String renders a target back to its "power,type" / "egg" form, used by
// round-trip tests and CSV export.
func (t Target) String() string {
	if t.Power == enums.Egg {
		return "egg"
	}
	return fmt.Sprintf("%s,%s", strings.ToLower(t.Power.String()), strings.ToLower(t.Type.String()))
}
