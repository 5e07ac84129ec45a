package pong

import (
	"slices"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Palette holds the resolved colors of every drawn element.
type Palette struct {
	Player   core.Color
	AI       core.Color
	Ball     core.Color
	Obstacle core.Color
	HUD      core.Color
}

// Rules are the immutable parameters of a game, resolved from configuration.
type Rules struct {
	CanvasW, CanvasH float64
	PaddleW, PaddleH float64
	PlayerSpeed      float64
	AISpeed          float64
	BallRadius       float64
	ObstacleW        float64
	ObstacleH        float64
	Levels           []config.LevelConfig
	Progression      bool
	Colors           Palette
}

// NewRules resolves a configuration into rules.
// Unknown color names fall back to the terminal default color.
func NewRules(cfg config.PongConfig) Rules {
	color := func(name string) core.Color {
		c, _ := core.ParseColor(name)
		return c
	}

	return Rules{
		CanvasW:     cfg.Canvas.Width,
		CanvasH:     cfg.Canvas.Height,
		PaddleW:     cfg.Paddles.Width,
		PaddleH:     cfg.Paddles.Height,
		PlayerSpeed: cfg.Paddles.PlayerSpeed,
		AISpeed:     cfg.Paddles.AISpeed,
		BallRadius:  cfg.Ball.Radius,
		ObstacleW:   cfg.Obstacle.Width,
		ObstacleH:   cfg.Obstacle.Height,
		Levels:      slices.Clone(cfg.Levels),
		Progression: cfg.Gameplay.Progression,
		Colors: Palette{
			Player:   color(cfg.Colors.Player),
			AI:       color(cfg.Colors.AI),
			Ball:     color(cfg.Colors.Ball),
			Obstacle: color(cfg.Colors.Obstacle),
			HUD:      color(cfg.Colors.HUD),
		},
	}
}

// DefaultRules returns rules for the default configuration.
func DefaultRules() Rules {
	return NewRules(config.DefaultPongConfig())
}

// Level returns the definition of a level number.
func (r Rules) Level(level int) (config.LevelConfig, bool) {
	for _, l := range r.Levels {
		if l.Level == level {
			return l, true
		}
	}
	return config.LevelConfig{}, false
}

// FirstLevel returns the lowest configured level number.
func (r Rules) FirstLevel() int {
	if len(r.Levels) == 0 {
		return 1
	}
	return r.Levels[0].Level
}

// BallSpeed returns the ball speed magnitude of a level.
// Unknown levels use the first level's speed.
func (r Rules) BallSpeed(level int) float64 {
	if l, ok := r.Level(level); ok {
		return l.BallSpeed
	}
	if len(r.Levels) > 0 {
		return r.Levels[0].BallSpeed
	}
	return 0
}

// maxPaddleY is the lowest top edge a paddle may have.
func (r Rules) maxPaddleY() float64 {
	return r.CanvasH - r.PaddleH
}
