package mcts

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverSearchReturnsChildWithHighestMeanReward(t *testing.T) {
	table := testTable()
	root := NewNode(newState(table, catchingFireTargetSet(), 1, 1, 1), nil, nil)

	driver := &Driver{
		ExplorationConstant: 1.41421356,
		MaxWalltime:         50 * time.Millisecond,
		RolloutPolicy:       UniformPolicy{},
		RNG:                 rand.New(rand.NewSource(1)),
	}

	best, err := driver.Search(context.Background(), root)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Greater(t, root.Visits, 0)

	// The returned child must be the argmax of mean reward among root's
	// children, not merely the most-visited one (spec §4.5's best-child
	// rule uses reward/visits, with exploration pulled back out to 0).
	wantBest := root.BestChild(0, driver.RNG)
	assert.Same(t, wantBest, best)
}

func TestDriverSearchHonorsContextCancellation(t *testing.T) {
	table := testTable()
	root := NewNode(newState(table, eggTargetSet(), 1, 1, 1), nil, nil)

	driver := &Driver{
		ExplorationConstant: 1.41421356,
		MaxWalltime:         time.Second,
		RolloutPolicy:       UniformPolicy{},
		RNG:                 rand.New(rand.NewSource(1)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := driver.Search(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDriverSearchOnAlreadyTerminalRootReturnsRootItself(t *testing.T) {
	table := testTable()
	terminal := newState(table, eggTargetSet(), 1, 1, 1)
	terminal.Finished = true
	root := NewNode(terminal, nil, nil)

	driver := &Driver{
		ExplorationConstant: 1.41421356,
		MaxWalltime:         20 * time.Millisecond,
		RolloutPolicy:       UniformPolicy{},
		RNG:                 rand.New(rand.NewSource(1)),
	}

	best, err := driver.Search(context.Background(), root)
	require.NoError(t, err)
	assert.Same(t, root, best)
}
