package sandwichcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFillsInZeroValues(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100, cfg.MCTS.NumIter)
	assert.Equal(t, 1.41421356, cfg.MCTS.ExplorationConstant)
	assert.Equal(t, int64(1000), cfg.MCTS.MaxWalltimeMS)
	assert.Equal(t, "uniform", cfg.MCTS.RolloutPolicy)

	assert.Equal(t, 1, cfg.Recipe.NumPlayers)
	assert.Equal(t, 1, cfg.Recipe.MinFillings)
	assert.Equal(t, 6, cfg.Recipe.MaxFillings)
	assert.Equal(t, 4, cfg.Recipe.MaxCondiments)

	assert.Equal(t, "recipes.csv", cfg.Output.Path)
}

func TestValidatePreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		MCTS:   MCTSConfig{NumIter: 50, RolloutPolicy: "stop-biased", ExplorationConstant: 2, MaxWalltimeMS: 500},
		Recipe: RecipeConfig{NumPlayers: 3, MinFillings: 2, MaxFillings: 5, MaxCondiments: 3, StrictTypeSharing: true},
		Output: OutputConfig{Path: "out.csv"},
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.MCTS.NumIter)
	assert.Equal(t, "stop-biased", cfg.MCTS.RolloutPolicy)
	assert.Equal(t, 3, cfg.Recipe.NumPlayers)
	assert.True(t, cfg.Recipe.StrictTypeSharing)
	assert.Equal(t, "out.csv", cfg.Output.Path)
}

func TestGetConfigPathHonorsEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SANDWICH_CONFIG_DIR", dir)

	assert.Equal(t, filepath.Join(dir, "sandwich.yaml"), GetConfigPath())
}

func TestCreateDefaultConfigWritesFileOnce(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SANDWICH_CONFIG_DIR", dir)

	require.NoError(t, CreateDefaultConfig())

	path := filepath.Join(dir, "sandwich.yaml")
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "rollout_policy")

	err = CreateDefaultConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
