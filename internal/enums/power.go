package enums

import (
	"fmt"
	"strings"
)

// Power is a category of in-game effect a sandwich can grant.
type Power int

const (
	Egg Power = iota
	Catching
	ExpPoint
	ItemDrop
	Raid
	Sparkling
	Title
	Humungo
	Teensy
	Encounter

	NumPowers = int(Encounter) + 1
)

var powerNames = [NumPowers]string{
	"Egg", "Catching", "ExpPoint", "ItemDrop", "Raid",
	"Sparkling", "Title", "Humungo", "Teensy", "Encounter",
}

func (p Power) String() string {
	if p < 0 || int(p) >= NumPowers {
		return fmt.Sprintf("Power(%d)", int(p))
	}
	return powerNames[p]
}

// ParsePower resolves a power name case-insensitively. It also accepts the
// underscored spellings used by the reference CLI ("exp_point", "item_drop").
func ParsePower(s string) (Power, error) {
	normalized := strings.ReplaceAll(s, "_", "")
	for i, name := range powerNames {
		if strings.EqualFold(name, normalized) {
			return Power(i), nil
		}
	}
	return 0, &UnknownEnumError{Kind: "Power", Value: s}
}

func AllPowers() []Power {
	out := make([]Power, NumPowers)
	for i := range out {
		out[i] = Power(i)
	}
	return out
}
