// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

// PongConfig contains all configuration for the game.
// Distances and speeds are in logical canvas units per tick.
type PongConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Ball     BallConfig     `yaml:"ball"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Levels   []LevelConfig  `yaml:"levels"`
	Colors   ColorConfig    `yaml:"colors"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
	Debug    DebugConfig    `yaml:"debug"`
}

// CanvasConfig defines the logical playfield size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines both paddles.
type PaddleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"` // Velocity while a movement key is held
	AISpeed     float64 `yaml:"ai_speed"`     // Fixed tracking step of the AI paddle
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig defines the level-gated obstacle.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MaxLevels is the most levels a configuration may define, one per digit key.
const MaxLevels = 9

// LevelConfig defines a single level.
type LevelConfig struct {
	Level         int     `yaml:"level"`
	ReachAt       int     `yaml:"reach_at"`       // Exact score that enters this level from the previous one
	BallSpeed     float64 `yaml:"ball_speed"`     // Magnitude of both ball velocity components
	ObstacleSpeed float64 `yaml:"obstacle_speed"` // 0 = no obstacle at this level
}

// HasObstacle reports whether the level places an obstacle.
func (l LevelConfig) HasObstacle() bool {
	return l.ObstacleSpeed != 0
}

// ColorConfig names the color of every drawn element.
type ColorConfig struct {
	Player   string `yaml:"player"`
	AI       string `yaml:"ai"`
	Ball     string `yaml:"ball"`
	Obstacle string `yaml:"obstacle"`
	HUD      string `yaml:"hud"`
}

// GameplayConfig holds rules that are not tied to an entity.
type GameplayConfig struct {
	Progression bool `yaml:"progression"` // Score-driven level changes
	NotifyMS    int  `yaml:"notify_ms"`   // How long level notifications stay visible
}

// InputConfig tunes key-release synthesis for terminals that only report presses.
type InputConfig struct {
	InitialHoldMS int `yaml:"initial_hold_ms"` // Hold window after the first press
	RepeatHoldMS  int `yaml:"repeat_hold_ms"`  // Hold window after a key repeat
}

// DebugConfig lists the values offered by the debug panel.
type DebugConfig struct {
	PlayerColors   []string  `yaml:"player_colors"`
	ObstacleSpeeds []float64 `yaml:"obstacle_speeds"`
	BallSpeeds     []float64 `yaml:"ball_speeds"`
}

// Level returns the configuration of the given level number.
func (c PongConfig) Level(level int) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.Level == level {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// AISpeedForPreset returns the AI tracking step for a difficulty preset.
// Unknown presets and "fixed" keep the configured step (ok is false).
func AISpeedForPreset(preset DifficultyPreset) (speed float64, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 3, true
	case DifficultyNormal:
		return 4, true
	case DifficultyHard:
		return 5, true
	default:
		return 0, false
	}
}

// ParsePreset validates a preset name. Empty selects no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
