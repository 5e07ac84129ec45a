package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game owns a State together with its rules and a seeded RNG.
// It is not safe for concurrent use.
type Game struct {
	rules Rules
	state State
	rng   *rand.Rand

	playerColors   []core.Color
	obstacleSpeeds []float64
	ballSpeeds     []float64
}

// New creates a game from configuration. Call Reset before playing.
func New(cfg config.PongConfig) *Game {
	g := &Game{
		rules:          NewRules(cfg),
		obstacleSpeeds: cfg.Debug.ObstacleSpeeds,
		ballSpeeds:     cfg.Debug.BallSpeeds,
	}
	for _, name := range cfg.Debug.PlayerColors {
		if c, ok := core.ParseColor(name); ok {
			g.playerColors = append(g.playerColors, c)
		}
	}
	g.state = NewState(g.rules)
	g.rng = rand.New(rand.NewSource(0))
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset returns the game to the ready phase and reseeds the RNG.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.state = NewState(g.rules)
}

// Rules returns the game's rules.
func (g *Game) Rules() Rules {
	return g.rules
}

// Current returns a copy of the full state.
func (g *Game) Current() State {
	return g.state.Clone()
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return g.state.Summary()
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return TakeSnapshot(g.state)
}

// Press applies a key press.
func (g *Game) Press(a core.Action) []Event {
	var events []Event
	g.state, events = Press(g.state, g.rules, a, g.rng)
	return events
}

// Release applies a key release.
func (g *Game) Release(a core.Action) {
	g.state = Release(g.state, a)
}

// Step advances the game by one tick.
func (g *Game) Step() []Event {
	var events []Event
	g.state, events = Tick(g.state, g.rules, g.rng)
	return events
}

// Render draws the game onto dst.
func (g *Game) Render(dst core.Surface) {
	Render(g.state, g.rules, dst)
}

// SetLevel jumps to a configured level.
func (g *Game) SetLevel(level int) []Event {
	var events []Event
	g.state, events = SetLevel(g.state, g.rules, level, g.rng)
	return events
}

// CyclePlayerColor switches the player paddle to the next configured color.
func (g *Game) CyclePlayerColor() core.Color {
	c := NextColor(g.playerColors, g.state.Player.Color)
	g.state = SetPlayerColor(g.state, c)
	return c
}

// StepObstacleSpeed moves the obstacle to the adjacent speed preset.
// It reports false when there is no obstacle.
func (g *Game) StepObstacleSpeed(dir int) (float64, bool) {
	o := g.state.Obstacle
	if o == nil {
		return 0, false
	}
	v := StepSpeed(g.obstacleSpeeds, o.DY, dir)
	g.state = SetObstacleSpeed(g.state, v)
	return v, true
}

// StepBallSpeed moves the ball to the adjacent speed preset.
func (g *Game) StepBallSpeed(dir int) float64 {
	v := StepSpeed(g.ballSpeeds, g.state.Ball.DX, dir)
	g.state = SetBallSpeed(g.state, v)
	return v
}
