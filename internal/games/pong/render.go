package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// HUD text positions in canvas units.
const (
	hudY        = 30
	scoreX      = 20
	levelInsetX = 100
)

// Render draws the state onto dst. It keeps no state of its own.
func Render(s State, r Rules, dst core.Surface) {
	dst.ClearRect(0, 0, r.CanvasW, r.CanvasH)

	for _, p := range []Paddle{s.Player, s.AI} {
		dst.SetFillColor(p.Color)
		dst.FillRect(p.X, p.Y, p.W, p.H)
	}

	dst.SetFillColor(s.Ball.Color)
	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.R)

	if o := s.Obstacle; o != nil {
		dst.SetFillColor(o.Color)
		dst.FillRect(o.X, o.Y, o.W, o.H)
	}

	dst.SetFillColor(r.Colors.HUD)
	dst.FillText(fmt.Sprintf("Score: %d", s.Score), scoreX, hudY)
	dst.FillText(fmt.Sprintf("Level: %d", s.Level), r.CanvasW-levelInsetX, hudY)
}
