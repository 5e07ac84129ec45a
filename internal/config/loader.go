package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// LoadPong loads the game configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// An explicit customPath must exist, parse and validate.
func LoadPong(customPath string) (PongConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

// Validate reports every inconsistency in the configuration.
func (c PongConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas: size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	check(c.Paddles.Width > 0 && c.Paddles.Height > 0, "paddles: size must be positive")
	check(c.Paddles.Height < c.Canvas.Height, "paddles: height %v must be less than canvas height %v", c.Paddles.Height, c.Canvas.Height)
	check(c.Paddles.PlayerSpeed > 0, "paddles: player_speed must be positive")
	check(c.Paddles.AISpeed > 0, "paddles: ai_speed must be positive")
	check(c.Ball.Radius > 0, "ball: radius must be positive")
	check(c.Obstacle.Width > 0 && c.Obstacle.Height > 0, "obstacle: size must be positive")
	check(c.Obstacle.Height < c.Canvas.Height, "obstacle: height %v must be less than canvas height %v", c.Obstacle.Height, c.Canvas.Height)

	check(len(c.Levels) > 0, "levels: at least one level is required")
	check(len(c.Levels) <= MaxLevels, "levels: at most %d levels are supported, got %d", MaxLevels, len(c.Levels))
	for i, l := range c.Levels {
		check(l.Level == i+1, "levels[%d]: expected level %d, got %d", i, i+1, l.Level)
		check(l.BallSpeed > 0, "levels[%d]: ball_speed must be positive", i)
		check(l.ObstacleSpeed >= 0, "levels[%d]: obstacle_speed must not be negative", i)
		if i > 0 {
			prev := c.Levels[i-1]
			check(l.ReachAt > prev.ReachAt, "levels[%d]: reach_at %d must exceed %d", i, l.ReachAt, prev.ReachAt)
		}
	}

	colors := []struct{ name, value string }{
		{"player", c.Colors.Player},
		{"ai", c.Colors.AI},
		{"ball", c.Colors.Ball},
		{"obstacle", c.Colors.Obstacle},
		{"hud", c.Colors.HUD},
	}
	for _, col := range colors {
		_, ok := core.ParseColor(col.value)
		check(ok, "colors.%s: unknown color %q", col.name, col.value)
	}

	check(c.Gameplay.NotifyMS > 0, "gameplay: notify_ms must be positive")
	check(c.Input.InitialHoldMS > 0 && c.Input.RepeatHoldMS > 0, "input: hold windows must be positive")

	for _, name := range c.Debug.PlayerColors {
		_, ok := core.ParseColor(name)
		check(ok, "debug.player_colors: unknown color %q", name)
	}
	for _, v := range c.Debug.ObstacleSpeeds {
		check(v > 0, "debug.obstacle_speeds: %v must be positive", v)
	}
	for _, v := range c.Debug.BallSpeeds {
		check(v > 0, "debug.ball_speeds: %v must be positive", v)
	}

	return errors.Join(errs...)
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// "fixed" disables level progression; the others set the AI tracking step.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Gameplay.Progression = false
		return
	}
	if speed, ok := AISpeedForPreset(preset); ok {
		cfg.Paddles.AISpeed = speed
	}
}
