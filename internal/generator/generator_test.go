package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemon-sandwich/suggester/internal/effect"
	"github.com/pokemon-sandwich/suggester/internal/enums"
	"github.com/pokemon-sandwich/suggester/internal/ingredient"
	"github.com/pokemon-sandwich/suggester/internal/mcts"
)

func testTable() *ingredient.Table {
	names := []string{"F1", "F2", "C1", "C2", "H1"}
	pieces := []int{2, 2, 1, 1, 1}
	isCondiment := []bool{false, false, true, true, true}
	isHerba := []bool{false, false, false, false, true}

	var flavor [][enums.NumFlavors]int16
	var power [][enums.NumPowers]int16
	var typ [][enums.NumTypes]int16
	for range names {
		flavor = append(flavor, [enums.NumFlavors]int16{})
		power = append(power, [enums.NumPowers]int16{})
		typ = append(typ, [enums.NumTypes]int16{})
	}
	power[0][enums.Catching] = 200
	typ[0][enums.Fire] = 200
	flavor[0][enums.Sweet] = 10
	flavor[0][enums.Sour] = 1

	return ingredient.New(names, pieces, isCondiment, isHerba, flavor, power, typ)
}

func testTargets(t *testing.T) *effect.TargetSet {
	typ := enums.Fire
	ts, err := effect.NewTargetSet([]effect.Target{{Power: enums.Catching, Type: &typ}}, false)
	require.NoError(t, err)
	return ts
}

func testDriver() *mcts.Driver {
	return &mcts.Driver{
		ExplorationConstant: 1.41421356,
		MaxWalltime:         10 * time.Millisecond,
		RolloutPolicy:       mcts.UniformPolicy{},
		RNG:                 rand.New(rand.NewSource(1)),
	}
}

func TestNewRejectsInvalidFillingBounds(t *testing.T) {
	_, err := New(testTable(), testTargets(t), Options{
		NumPlayers: 1, MinFillings: 4, MaxFillings: 2, MaxCondiments: 4, Driver: testDriver(),
	}, nil)
	require.Error(t, err)
	var ferr *InvalidFillingBoundsError
	require.ErrorAs(t, err, &ferr)
}

func TestNewRejectsInvalidPlayerCount(t *testing.T) {
	_, err := New(testTable(), testTargets(t), Options{
		NumPlayers: 5, MinFillings: 1, MaxFillings: 6, MaxCondiments: 4, Driver: testDriver(),
	}, nil)
	require.Error(t, err)
	var perr *InvalidPlayerCountError
	require.ErrorAs(t, err, &perr)
}

func TestRunDiscoversAtLeastOneTerminalRecipe(t *testing.T) {
	gen, err := New(testTable(), testTargets(t), Options{
		NumPlayers: 1, MinFillings: 1, MaxFillings: 1, MaxCondiments: 1, Driver: testDriver(),
	}, nil)
	require.NoError(t, err)

	results, err := gen.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.NotEmpty(t, results)

	seen := map[string]struct{}{}
	for _, r := range results {
		key := r.State.Recipe.Key()
		_, dup := seen[key]
		assert.False(t, dup, "Run must deduplicate terminal recipes by canonical key")
		seen[key] = struct{}{}
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	gen, err := New(testTable(), testTargets(t), Options{
		NumPlayers: 1, MinFillings: 1, MaxFillings: 1, MaxCondiments: 1, Driver: testDriver(),
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = gen.Run(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDriverResolvesPolicyByName(t *testing.T) {
	_, err := NewDriver("uniform", 0, 1.4, 100, 1)
	require.NoError(t, err)

	_, err = NewDriver("stop-biased", 0.5, 1.4, 100, 1)
	require.NoError(t, err)

	_, err = NewDriver("stop-biased", 0, 1.4, 100, 1)
	require.Error(t, err)

	_, err = NewDriver("slot-weighted", 0.5, 1.4, 100, 1)
	require.NoError(t, err)

	_, err = NewDriver("bogus-policy", 0, 1.4, 100, 1)
	require.Error(t, err)
}
