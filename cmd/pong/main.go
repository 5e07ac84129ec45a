// pong is a terminal Pong with level progression and an admin panel.
//
// Usage:
//
//	pong                     - Play (same as pong play)
//	pong play                - Play
//	pong config              - Print the default configuration
//	pong config --check <f>  - Validate a configuration file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a rotating file
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - play Pong in your terminal",
	Long: `Pong against a CPU paddle. Every hit scores a point; at 5 and 10
points the game moves up a level, speeding up the ball and adding a moving
obstacle in the middle of the field.

Available commands:
  play     - Play the game (default)
  config   - Print or validate the game configuration

Examples:
  pong
  pong play --difficulty hard
  pong --seed 42 --log-file ~/.pong/pong.log
  pong config > my-pong.yaml
  pong config --check my-pong.yaml`,
	Args:          cobra.NoArgs,
	Run:           runPlay,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
