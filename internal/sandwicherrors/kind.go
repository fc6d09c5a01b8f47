// Package sandwicherrors defines the shared error taxonomy used across the
// sandwich suggester: every error surfaced to a caller carries a Kind so
// callers can branch on category without depending on every package's
// concrete error types.
package sandwicherrors

// Kind classifies an error by the taxonomy the evaluator, target model,
// and MCTS driver use to report failures.
type Kind int

const (
	// KindInputValidation covers malformed or inconsistent user input:
	// unknown enum names, malformed target strings, invalid target sets.
	KindInputValidation Kind = iota
	// KindConfiguration covers invalid construction parameters: rollout
	// probabilities, filling/condiment bounds, player counts.
	KindConfiguration
	// KindLookup covers references to ingredients the table doesn't have.
	KindLookup
	// KindInvariantViolation marks a bug, not a data problem; callers
	// should never need to recover from it. Code that detects one panics
	// instead of returning it, per Go convention for programmer errors.
	KindInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case KindInputValidation:
		return "input-validation"
	case KindConfiguration:
		return "configuration"
	case KindLookup:
		return "lookup"
	case KindInvariantViolation:
		return "invariant-violation"
	default:
		return "unknown"
	}
}

// Kinded is implemented by every error type in this module so callers can
// branch on category with a single type assertion instead of errors.As
// per concrete type.
type Kinded interface {
	error
	ErrorKind() Kind
}
