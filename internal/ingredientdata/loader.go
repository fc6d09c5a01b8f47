// Package ingredientdata embeds and parses the sandwich suggester's
// ingredient reference table. The table's content is an external
// collaborator (spec §1 names it out of scope); this package only
// guarantees the schema contract in spec §6 is honored and that the
// embedded CSV parses into a usable internal/ingredient.Table once, at
// startup.
package ingredientdata

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pokemon-sandwich/suggester/internal/enums"
	"github.com/pokemon-sandwich/suggester/internal/ingredient"
)

//go:embed data.csv
var embeddedFS embed.FS

var powerColumns = [enums.NumPowers]string{
	"power_egg", "power_catching", "power_exp_point", "power_item_drop",
	"power_raid", "power_sparkling", "power_title", "power_humungo",
	"power_teensy", "power_encounter",
}

var flavorColumns = [enums.NumFlavors]string{
	"flavor_sweet", "flavor_salty", "flavor_sour", "flavor_bitter", "flavor_hot",
}

var typeColumns = [enums.NumTypes]string{
	"type_normal", "type_fighting", "type_flying", "type_poison", "type_ground",
	"type_rock", "type_bug", "type_ghost", "type_steel", "type_fire", "type_water",
	"type_grass", "type_electric", "type_psychic", "type_ice", "type_dragon",
	"type_dark", "type_fairy",
}

// Load parses the embedded data.csv into an *ingredient.Table.
func Load() (*ingredient.Table, error) {
	f, err := embeddedFS.Open("data.csv")
	if err != nil {
		return nil, fmt.Errorf("opening embedded ingredient data: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse builds an *ingredient.Table from a reader holding CSV matching the
// schema in spec §6: name, pieces, is_condiment, is_herba_mystica, then
// one column per Power, one per Flavor, one per Type.
func Parse(r io.Reader) (*ingredient.Table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading ingredient CSV header: %w", err)
	}
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.TrimSpace(h)] = i
	}

	var (
		names          []string
		pieces         []int
		isCondiment    []bool
		isHerbaMystica []bool
		flavorMat      [][enums.NumFlavors]int16
		powerMat       [][enums.NumPowers]int16
		typeMat        [][enums.NumTypes]int16
	)

	lineNo := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ingredient CSV row %d: %w", lineNo, err)
		}
		lineNo++

		name := record[colIdx["name"]]
		piecesVal, err := strconv.Atoi(record[colIdx["pieces"]])
		if err != nil {
			return nil, fmt.Errorf("ingredient %q: invalid pieces: %w", name, err)
		}
		condiment, err := strconv.ParseBool(record[colIdx["is_condiment"]])
		if err != nil {
			return nil, fmt.Errorf("ingredient %q: invalid is_condiment: %w", name, err)
		}
		herba, err := strconv.ParseBool(record[colIdx["is_herba_mystica"]])
		if err != nil {
			return nil, fmt.Errorf("ingredient %q: invalid is_herba_mystica: %w", name, err)
		}

		var flavorRow [enums.NumFlavors]int16
		for i, col := range flavorColumns {
			v, err := parseInt16(record[colIdx[col]])
			if err != nil {
				return nil, fmt.Errorf("ingredient %q: column %s: %w", name, col, err)
			}
			flavorRow[i] = v
		}
		var powerRow [enums.NumPowers]int16
		for i, col := range powerColumns {
			v, err := parseInt16(record[colIdx[col]])
			if err != nil {
				return nil, fmt.Errorf("ingredient %q: column %s: %w", name, col, err)
			}
			powerRow[i] = v
		}
		var typeRow [enums.NumTypes]int16
		for i, col := range typeColumns {
			v, err := parseInt16(record[colIdx[col]])
			if err != nil {
				return nil, fmt.Errorf("ingredient %q: column %s: %w", name, col, err)
			}
			typeRow[i] = v
		}

		names = append(names, name)
		pieces = append(pieces, piecesVal)
		isCondiment = append(isCondiment, condiment)
		isHerbaMystica = append(isHerbaMystica, herba)
		flavorMat = append(flavorMat, flavorRow)
		powerMat = append(powerMat, powerRow)
		typeMat = append(typeMat, typeRow)
	}

	return ingredient.New(names, pieces, isCondiment, isHerbaMystica, flavorMat, powerMat, typeMat), nil
}

func parseInt16(s string) (int16, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}
