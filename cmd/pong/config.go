package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate the game configuration",
	Long: `Print the default configuration as YAML, or validate a file with --check.

A config file only needs the keys it changes. Without --config the game looks
for ~/.pong/configs/pong.yaml, then ./configs/pong.yaml, then uses the defaults.

Examples:
  pong config > ~/.pong/configs/pong.yaml
  pong config --check ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file and exit")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagCheck == "" {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadPong(expandHome(flagCheck))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: ok (%d levels, canvas %vx%v)\n", flagCheck, len(cfg.Levels), cfg.Canvas.Width, cfg.Canvas.Height)
	return nil
}
