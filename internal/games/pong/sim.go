package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Tick advances a running game by one frame and returns the next state with
// the events of that frame. Any other phase is returned unchanged.
//
// The collision checks run in a fixed order and are independent of each
// other, so several may fire in the same frame.
func Tick(s State, r Rules, rng Rand) (State, []Event) {
	if s.Phase != PhaseRunning {
		return s, nil
	}

	next := s.Clone()
	next.Tick++
	var events []Event

	// Paddles
	next.Player.Y = core.Clamp(next.Player.Y+next.Player.DY, 0, r.maxPaddleY())
	if next.Ball.Y < next.AI.Rect().CenterY() {
		next.AI.DY = -r.AISpeed
	} else {
		next.AI.DY = r.AISpeed
	}
	next.AI.Y = core.Clamp(next.AI.Y+next.AI.DY, 0, r.maxPaddleY())

	// Ball
	b := &next.Ball
	b.X += b.DX
	b.Y += b.DY

	if b.Y-b.R < 0 || b.Y+b.R > r.CanvasH {
		b.DY = -b.DY
	}

	if b.X-b.R < next.Player.X+next.Player.W && next.Player.spans(b.Y) {
		b.DX = -b.DX
		next.Score++
		events = append(events, next.event(EventPaddleHit))

		var levelEvents []Event
		next, levelEvents = CheckLevelUp(next, r, rng)
		events = append(events, levelEvents...)
	}

	if b.X+b.R > next.AI.X && next.AI.spans(b.Y) {
		b.DX = -b.DX
	}

	if b.X-b.R < 0 {
		next.Phase = PhaseGameOver
		events = append(events, next.event(EventGameOver))
	}

	if b.X+b.R > r.CanvasW {
		next.resetBall(r, rng)
		events = append(events, next.event(EventBallReset))
	}

	// Obstacle
	if o := next.Obstacle; o != nil {
		o.Y += o.DY
		if o.Y+o.H > r.CanvasH || o.Y < 0 {
			o.DY = -o.DY
		}
		if b.Bounds().Overlaps(o.Rect()) {
			b.DX = -b.DX
		}
	}

	return next, events
}
