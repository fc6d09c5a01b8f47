package ingredientdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesEmbeddedTable(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	assert.Greater(t, table.Len(), 0)

	i, err := table.IndexOf("Rice")
	require.NoError(t, err)
	assert.Equal(t, 1, table.Pieces[i])
}

const minimalCSV = `name,pieces,is_condiment,is_herba_mystica,power_egg,power_catching,power_exp_point,power_item_drop,power_raid,power_sparkling,power_title,power_humungo,power_teensy,power_encounter,flavor_sweet,flavor_salty,flavor_sour,flavor_bitter,flavor_hot,type_normal,type_fighting,type_flying,type_poison,type_ground,type_rock,type_bug,type_ghost,type_steel,type_fire,type_water,type_grass,type_electric,type_psychic,type_ice,type_dragon,type_dark,type_fairy
Rice,1,false,false,0,0,0,0,0,0,0,0,0,0,0,5,0,0,0,70,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
Ketchup,1,true,false,0,0,0,0,0,0,0,0,0,0,40,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
`

func TestParseMinimalCSV(t *testing.T) {
	table, err := Parse(strings.NewReader(minimalCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	i, err := table.IndexOf("Ketchup")
	require.NoError(t, err)
	assert.True(t, table.IsCondiment[i])
	assert.False(t, table.IsHerbaMystica[i])
}

func TestParseRejectsInvalidPieces(t *testing.T) {
	bad := strings.Replace(minimalCSV, "Rice,1,", "Rice,notanumber,", 1)
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pieces")
}

func TestParseRejectsRowWithWrongFieldCount(t *testing.T) {
	header := strings.SplitN(minimalCSV, "\n", 2)[0]
	_, err := Parse(strings.NewReader(header + "\nRice,1,false,false\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading ingredient CSV row")
}
