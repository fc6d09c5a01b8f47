// Package commands implements the sandwich-cli cobra command tree,
// grounded on the teacher's cmd/task-cli/commands package.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pokemon-sandwich/suggester/internal/sandwichcfg"
	"github.com/pokemon-sandwich/suggester/internal/sandwichlog"
)

var (
	cfgFile string
	cfg     *sandwichcfg.Config
	log     *sandwichlog.Logger

	version   = "0.1.0"
	buildTime = "unknown"
	gitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sandwich-cli",
	Short: "Suggests Pokémon Scarlet/Violet sandwich recipes matching target effects",
	Long: `sandwich-cli searches sandwich recipes via Monte Carlo tree search and
reports the ones whose computed effects match a requested set of powers
and types.

Examples:
  sandwich-cli suggest egg sparkling,normal title,normal --num-iter 200
  sandwich-cli suggest catching,fire --rollout-policy stop-biased --policy-probability 0.7
  sandwich-cli config init`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

// Execute adds all child commands to the root command and runs it,
// exiting with the code spec §6 specifies: 0 on success, 1 on a
// validation failure, 2 on a configuration or runtime failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCode(err))
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/sandwich/sandwich.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug-level logging")
	rootCmd.PersistentFlags().Bool("dev-log", false, "use human-readable console logging instead of JSON")

	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	var err error
	cfg, err = sandwichcfg.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		fmt.Println("Run 'sandwich-cli config init' to create a default configuration file")
		os.Exit(2)
	}
}

func initializeApp() error {
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	devLog, _ := rootCmd.PersistentFlags().GetBool("dev-log")

	level := "info"
	if verbose {
		level = "debug"
	}

	var err error
	log, err = sandwichlog.New(devLog, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func printError(msg string, args ...interface{}) {
	fmt.Printf("Error: "+msg+"\n", args...)
}

func printSuccess(msg string, args ...interface{}) {
	fmt.Printf(msg+"\n", args...)
}

// SetVersionInfo sets version information from main.
func SetVersionInfo(v, bt, gc string) {
	version = v
	buildTime = bt
	gitCommit = gc
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sandwich-cli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sandwich-cli v%s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Git Commit: %s\n", gitCommit)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "Manage sandwich-cli configuration settings",
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sandwichcfg.CreateDefaultConfig(); err != nil {
				return err
			}
			fmt.Println("Default configuration created successfully")
			fmt.Printf("Config file location: %s\n", sandwichcfg.GetConfigPath())
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				return fmt.Errorf("configuration not loaded")
			}
			fmt.Printf("Configuration file: %s\n\n", sandwichcfg.GetConfigPath())
			fmt.Printf("MCTS:\n")
			fmt.Printf("  Num Iter: %d\n", cfg.MCTS.NumIter)
			fmt.Printf("  Rollout Policy: %s\n", cfg.MCTS.RolloutPolicy)
			fmt.Printf("  Policy Probability: %v\n", cfg.MCTS.PolicyProbability)
			fmt.Printf("  Exploration Constant: %v\n", cfg.MCTS.ExplorationConstant)
			fmt.Printf("  Max Walltime (ms): %d\n", cfg.MCTS.MaxWalltimeMS)
			fmt.Printf("\nRecipe:\n")
			fmt.Printf("  Num Players: %d\n", cfg.Recipe.NumPlayers)
			fmt.Printf("  Min Fillings: %d\n", cfg.Recipe.MinFillings)
			fmt.Printf("  Max Fillings: %d\n", cfg.Recipe.MaxFillings)
			fmt.Printf("  Max Condiments: %d\n", cfg.Recipe.MaxCondiments)
			fmt.Printf("  Strict Type Sharing: %t\n", cfg.Recipe.StrictTypeSharing)
			fmt.Printf("\nOutput:\n")
			fmt.Printf("  Path: %s\n", cfg.Output.Path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(sandwichcfg.GetConfigPath())
		},
	})
}
