package enums

import (
	"fmt"
	"strings"
)

// Type is one of the eighteen elemental affinities, in canonical in-game
// (National Dex type-chart) order.
type Type int

const (
	Normal Type = iota
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Steel
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
	Dark
	Fairy

	NumTypes = int(Fairy) + 1
)

var typeNames = [NumTypes]string{
	"Normal", "Fighting", "Flying", "Poison", "Ground", "Rock", "Bug",
	"Ghost", "Steel", "Fire", "Water", "Grass", "Electric", "Psychic",
	"Ice", "Dragon", "Dark", "Fairy",
}

func (t Type) String() string {
	if t < 0 || int(t) >= NumTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType resolves a type name case-insensitively.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(name, s) {
			return Type(i), nil
		}
	}
	return 0, &UnknownEnumError{Kind: "Type", Value: s}
}

func AllTypes() []Type {
	out := make([]Type, NumTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}
