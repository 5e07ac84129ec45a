// Package pong implements a single-player Pong variant with a reflexive
// CPU paddle, score-driven levels and a level-gated moving obstacle.
//
// The package is pure: State is a plain value, and Tick, the level controller,
// the input handler and the debug setters take a State and return the next one
// together with the events they produced. Game wraps a State with a seeded RNG
// for the platform layer.
package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is a vertically moving rectangle.
type Paddle struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	DY    float64 // Vertical velocity per tick
	Color core.Color
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// spans reports whether y lies strictly inside the paddle's vertical extent.
func (p Paddle) spans(y float64) bool {
	return y > p.Y && y < p.Y+p.H
}

// Ball is a circle described by its center.
type Ball struct {
	X, Y   float64 // Center
	R      float64
	DX, DY float64
	Color  core.Color
}

// Bounds returns the ball's axis-aligned bounding box.
func (b Ball) Bounds() core.RectF {
	return core.RectF{X: b.X - b.R, Y: b.Y - b.R, W: 2 * b.R, H: 2 * b.R}
}

// Obstacle is the level-gated rectangle that deflects the ball.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	DY    float64
	Color core.Color
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.RectF {
	return core.RectF{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
