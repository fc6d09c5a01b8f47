package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemon-sandwich/suggester/internal/enums"
)

func newTestTable() *Table {
	names := []string{"Lettuce", "Tomato", "Ketchup", "Herba Spicy"}
	pieces := []int{2, 2, 1, 1}
	isCondiment := []bool{false, false, true, true}
	isHerba := []bool{false, false, false, true}
	var flavor [][enums.NumFlavors]int16
	var power [][enums.NumPowers]int16
	var typ [][enums.NumTypes]int16
	for range names {
		flavor = append(flavor, [enums.NumFlavors]int16{})
		power = append(power, [enums.NumPowers]int16{})
		typ = append(typ, [enums.NumTypes]int16{})
	}
	return New(names, pieces, isCondiment, isHerba, flavor, power, typ)
}

func TestTableIndexOf(t *testing.T) {
	table := newTestTable()
	i, err := table.IndexOf("Tomato")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = table.IndexOf("Unknown")
	require.Error(t, err)
	var uerr *UnknownIngredientError
	require.ErrorAs(t, err, &uerr)
}

func TestTableFillingsAndCondiments(t *testing.T) {
	table := newTestTable()
	assert.Equal(t, []int{0, 1}, table.Fillings())
	assert.Equal(t, []int{2, 3}, table.Condiments(false))
	assert.Equal(t, []int{3}, table.Condiments(true))
	assert.Equal(t, []int{2}, table.NonHerbaCondiments())
}

func TestTableIsFilling(t *testing.T) {
	table := newTestTable()
	assert.True(t, table.IsFilling(0))
	assert.False(t, table.IsFilling(2))
}

func TestTableLen(t *testing.T) {
	table := newTestTable()
	assert.Equal(t, 4, table.Len())
}
