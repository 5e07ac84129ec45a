package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
// It mirrors defaults/pong.yaml and is used when the embedded file cannot be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Paddles: PaddleConfig{
			Width:       10,
			Height:      100,
			PlayerSpeed: 6,
			AISpeed:     4,
		},
		Ball: BallConfig{
			Radius: 10,
		},
		Obstacle: ObstacleConfig{
			Width:  20,
			Height: 100,
		},
		Levels: []LevelConfig{
			{Level: 1, ReachAt: 0, BallSpeed: 4},
			{Level: 2, ReachAt: 5, BallSpeed: 4, ObstacleSpeed: 2},
			{Level: 3, ReachAt: 10, BallSpeed: 6, ObstacleSpeed: 3},
		},
		Colors: ColorConfig{
			Player:   "blue",
			AI:       "red",
			Ball:     "white",
			Obstacle: "purple",
			HUD:      "white",
		},
		Gameplay: GameplayConfig{
			Progression: true,
			NotifyMS:    2000,
		},
		Input: InputConfig{
			InitialHoldMS: 550,
			RepeatHoldMS:  120,
		},
		Debug: DebugConfig{
			PlayerColors:   []string{"blue", "green", "yellow", "orange", "cyan", "magenta"},
			ObstacleSpeeds: []float64{1, 2, 3, 4, 5},
			BallSpeeds:     []float64{2, 4, 6, 8},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
