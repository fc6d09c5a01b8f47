package enums

import (
	"fmt"

	"github.com/pokemon-sandwich/suggester/internal/sandwicherrors"
)

// UnknownEnumError reports an unresolvable Flavor, Power, or Type name.
// It covers spec's UnknownPower and UnknownType input-validation kinds.
type UnknownEnumError struct {
	Kind  string // "Flavor", "Power", or "Type"
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Value)
}

func (e *UnknownEnumError) ErrorKind() sandwicherrors.Kind {
	return sandwicherrors.KindInputValidation
}
