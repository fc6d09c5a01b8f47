package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemon-sandwich/suggester/internal/enums"
)

func typ(t enums.Type) *enums.Type { return &t }

func TestNewTargetSetRejectsRepeatedPower(t *testing.T) {
	_, err := NewTargetSet([]Target{
		{Power: enums.Catching, Type: typ(enums.Fire)},
		{Power: enums.Catching, Type: typ(enums.Water)},
	}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RepeatedPower")
}

func TestNewTargetSetRejectsTypedEggAndUntypedNonEgg(t *testing.T) {
	_, err := NewTargetSet([]Target{{Power: enums.Egg, Type: typ(enums.Fire)}}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TypedEgg")

	_, err = NewTargetSet([]Target{{Power: enums.Catching, Type: nil}}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UntypedNonEgg")
}

func TestNewTargetSetSparklingRequiresTitle(t *testing.T) {
	_, err := NewTargetSet([]Target{{Power: enums.Sparkling, Type: typ(enums.Fire)}}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SparklingWithoutTitle")
}

func TestNewTargetSetSparklingRequiresSharedType(t *testing.T) {
	_, err := NewTargetSet([]Target{
		{Power: enums.Sparkling, Type: typ(enums.Fire)},
		{Power: enums.Title, Type: typ(enums.Water)},
	}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SparklingTypeMismatch")

	ts, err := NewTargetSet([]Target{
		{Power: enums.Sparkling, Type: typ(enums.Fire)},
		{Power: enums.Title, Type: typ(enums.Fire)},
	}, false)
	require.NoError(t, err)
	assert.True(t, ts.HasPower(enums.Sparkling))
}

func TestNewTargetSetStrictSingleTypeRejectsUnreachableTriple(t *testing.T) {
	targets := []Target{
		{Power: enums.Catching, Type: typ(enums.Fire)},
		{Power: enums.Raid, Type: typ(enums.Fire)},
		{Power: enums.Encounter, Type: typ(enums.Fire)},
	}
	_, err := NewTargetSet(targets, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UnreachableTypeSharing")

	// The same triple is accepted when strict mode is off.
	ts, err := NewTargetSet(targets, false)
	require.NoError(t, err)
	assert.Len(t, ts.Targets, 3)
}

func TestNewTargetSetRejectsEmptyAndOversized(t *testing.T) {
	_, err := NewTargetSet(nil, false)
	require.Error(t, err)

	_, err = NewTargetSet([]Target{
		{Power: enums.Catching, Type: typ(enums.Fire)},
		{Power: enums.Raid, Type: typ(enums.Water)},
		{Power: enums.Encounter, Type: typ(enums.Grass)},
		{Power: enums.Teensy, Type: typ(enums.Ice)},
	}, false)
	require.Error(t, err)
}

func TestMatchedPowersIgnoresTypeForEgg(t *testing.T) {
	ts, err := NewTargetSet([]Target{{Power: enums.Egg}}, false)
	require.NoError(t, err)

	effects := [3]Effect{
		{Power: enums.Egg, Level: 2},
		{Power: enums.Catching, Type: typ(enums.Fire), Level: 1},
		{Power: enums.Teensy, Type: typ(enums.Ice), Level: 1},
	}
	matched := ts.MatchedPowers(effects)
	assert.Equal(t, []int{0}, matched)
}

func TestParseTargetsRoundTrip(t *testing.T) {
	ts, err := ParseTargets([]string{"egg", "SPARKLING,Fire", "TITLE,fire"}, false)
	require.NoError(t, err)
	require.Len(t, ts.Targets, 3)
	assert.Equal(t, "egg", ts.Targets[0].String())
	assert.Equal(t, "sparkling,fire", ts.Targets[1].String())
}

func TestParseTargetsMalformedString(t *testing.T) {
	_, err := ParseTargets([]string{"not-valid"}, false)
	require.Error(t, err)
	var merr *MalformedTargetStringError
	require.ErrorAs(t, err, &merr)
}

func TestSameEffect(t *testing.T) {
	a := Effect{Power: enums.Catching, Type: typ(enums.Fire), Level: 1}
	b := Effect{Power: enums.Catching, Type: typ(enums.Fire), Level: 3}
	c := Effect{Power: enums.Catching, Type: typ(enums.Water), Level: 1}
	assert.True(t, SameEffect(a, b))
	assert.False(t, SameEffect(a, c))
}
