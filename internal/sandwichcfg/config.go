// Package sandwichcfg loads the suggester's configuration from defaults,
// a config file, and environment variables, via viper — grounded on the
// teacher's internal/task-cli/config package.
package sandwichcfg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the full suggester configuration.
type Config struct {
	MCTS   MCTSConfig   `mapstructure:"mcts"`
	Recipe RecipeConfig `mapstructure:"recipe"`
	Output OutputConfig `mapstructure:"output"`
}

// MCTSConfig configures the search driver (spec §6's CLI flags).
type MCTSConfig struct {
	NumIter              int     `mapstructure:"num_iter"`
	RolloutPolicy        string  `mapstructure:"rollout_policy"`
	PolicyProbability    float64 `mapstructure:"policy_probability"`
	ExplorationConstant  float64 `mapstructure:"exploration_constant"`
	MaxWalltimeMS        int64   `mapstructure:"max_walltime_ms"`
	Seed                 int64   `mapstructure:"seed"`
}

// RecipeConfig configures construction bounds (spec §3/§4.7).
type RecipeConfig struct {
	NumPlayers        int  `mapstructure:"num_players"`
	MinFillings       int  `mapstructure:"min_fillings"`
	MaxFillings       int  `mapstructure:"max_fillings"`
	MaxCondiments     int  `mapstructure:"max_condiments"`
	StrictTypeSharing bool `mapstructure:"strict_type_sharing"`
}

// OutputConfig configures the CSV writer (spec §6).
type OutputConfig struct {
	Path string `mapstructure:"path"`
}

// Load loads configuration from defaults, then a config file, then
// environment variables (SANDWICH_ prefix), mirroring the teacher's
// layered Load().
func Load() (*Config, error) {
	setDefaults()

	viper.SetConfigName("sandwich")
	viper.SetConfigType("yaml")

	configDir := getConfigDir()
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/sandwich")
	viper.AddConfigPath("/etc/sandwich")

	viper.SetEnvPrefix("SANDWICH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate normalizes out-of-range values, matching the teacher's
// forgiving Validate() behavior rather than rejecting outright.
func (c *Config) Validate() error {
	if c.MCTS.NumIter <= 0 {
		c.MCTS.NumIter = 100
	}
	if c.MCTS.ExplorationConstant <= 0 {
		c.MCTS.ExplorationConstant = 1.41421356
	}
	if c.MCTS.MaxWalltimeMS <= 0 {
		c.MCTS.MaxWalltimeMS = 1000
	}
	if c.MCTS.RolloutPolicy == "" {
		c.MCTS.RolloutPolicy = "uniform"
	}

	if c.Recipe.NumPlayers <= 0 {
		c.Recipe.NumPlayers = 1
	}
	if c.Recipe.MinFillings <= 0 {
		c.Recipe.MinFillings = 1
	}
	if c.Recipe.MaxFillings <= 0 {
		c.Recipe.MaxFillings = 6
	}
	if c.Recipe.MaxCondiments <= 0 {
		c.Recipe.MaxCondiments = 4
	}

	if c.Output.Path == "" {
		c.Output.Path = "recipes.csv"
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("mcts.num_iter", 100)
	viper.SetDefault("mcts.rollout_policy", "uniform")
	viper.SetDefault("mcts.policy_probability", 0.5)
	viper.SetDefault("mcts.exploration_constant", 1.41421356)
	viper.SetDefault("mcts.max_walltime_ms", 1000)
	viper.SetDefault("mcts.seed", 1)

	viper.SetDefault("recipe.num_players", 1)
	viper.SetDefault("recipe.min_fillings", 1)
	viper.SetDefault("recipe.max_fillings", 6)
	viper.SetDefault("recipe.max_condiments", 4)
	viper.SetDefault("recipe.strict_type_sharing", false)

	viper.SetDefault("output.path", "recipes.csv")
}

func getConfigDir() string {
	if dir := os.Getenv("SANDWICH_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "sandwich")
}

// CreateDefaultConfig writes a starter config file, mirroring the
// teacher's CreateDefaultConfig().
func CreateDefaultConfig() error {
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "sandwich.yaml")
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	defaultConfig := `# Sandwich recipe suggester configuration
mcts:
  num_iter: 100
  rollout_policy: "uniform"   # uniform, stop-biased, slot-weighted
  policy_probability: 0.5
  exploration_constant: 1.41421356
  max_walltime_ms: 1000
  seed: 1

recipe:
  num_players: 1
  min_fillings: 1
  max_fillings: 6
  max_condiments: 4
  strict_type_sharing: false

output:
  path: "recipes.csv"
`
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	fmt.Printf("Default configuration created at: %s\n", configFile)
	return nil
}

// GetConfigPath returns the path to the configuration file.
func GetConfigPath() string {
	return filepath.Join(getConfigDir(), "sandwich.yaml")
}
