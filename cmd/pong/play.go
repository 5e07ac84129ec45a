package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Pong.

Controls:
  Up/W, Down/S  - Move your paddle
  Enter         - Start, restart after game over
  F2 or ` + "`" + `     - Open/close the admin menu
  Q/Ctrl+C      - Quit

Admin menu (while open):
  L C O B       - Show/hide level, color, obstacle and ball controls
  1-9           - Set level (one key per configured level)
  c             - Next paddle color
  [ ]           - Obstacle slower/faster
  - =           - Ball slower/faster

Difficulty options:
  easy   - Slow CPU paddle
  normal - Default CPU paddle
  hard   - Fast CPU paddle
  fixed  - No level progression

Examples:
  pong play
  pong play --difficulty easy
  pong play --config ./my-pong.yaml --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	opts := logging.DefaultOptions()
	opts.Path = expandHome(flagLogFile)
	opts.Level = flagLogLevel
	logger, closer, err := logging.Open(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early; the first resize message corrects it
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(cfg, runtime, logger)

	// Close the log before potential exit
	//nolint:errcheck // Best-effort flush, the game is over either way
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.PongConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.PongConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadPong(expandHome(flagConfig))
	if err != nil {
		return config.PongConfig{}, err
	}
	config.ApplyPongPreset(&cfg, preset)
	return cfg, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
