package pong

import "github.com/vovakirdan/tui-pong/internal/config"

// CheckLevelUp moves to the next level when the score equals its threshold
// exactly. Progression is forward-only and disabled by Rules.Progression.
func CheckLevelUp(s State, r Rules, rng Rand) (State, []Event) {
	if !r.Progression {
		return s, nil
	}
	l, ok := r.Level(s.Level + 1)
	if !ok || s.Score != l.ReachAt {
		return s, nil
	}
	next := s.Clone()
	next.enterLevel(r, l, rng)
	return next, []Event{next.event(EventLevelChanged)}
}

// SetLevel jumps straight to any configured level, forwards or backwards,
// applying the same effects as a score-driven transition.
// Unknown levels are ignored.
func SetLevel(s State, r Rules, level int, rng Rand) (State, []Event) {
	l, ok := r.Level(level)
	if !ok {
		return s, nil
	}
	next := s.Clone()
	next.enterLevel(r, l, rng)
	return next, []Event{next.event(EventLevelChanged)}
}

// enterLevel applies a level's ball speed and obstacle. Velocity directions
// survive the change; only magnitudes are replaced.
func (s *State) enterLevel(r Rules, l config.LevelConfig, rng Rand) {
	s.Level = l.Level
	s.Ball.DX = withMagnitude(s.Ball.DX, l.BallSpeed)
	s.Ball.DY = withMagnitude(s.Ball.DY, l.BallSpeed)

	switch {
	case !l.HasObstacle():
		s.Obstacle = nil
	case s.Obstacle == nil:
		s.Obstacle = newObstacle(r, rng.Float64()*(r.CanvasH-r.ObstacleH), l.ObstacleSpeed)
	default:
		s.Obstacle.DY = withMagnitude(s.Obstacle.DY, l.ObstacleSpeed)
	}
}

// newObstacle places an obstacle on the vertical center line with its top
// edge at y.
func newObstacle(r Rules, y, speed float64) *Obstacle {
	return &Obstacle{
		X:     r.CanvasW/2 - r.ObstacleW/2,
		Y:     y,
		W:     r.ObstacleW,
		H:     r.ObstacleH,
		DY:    speed,
		Color: r.Colors.Obstacle,
	}
}

func withMagnitude(v, magnitude float64) float64 {
	if v < 0 {
		return -magnitude
	}
	return magnitude
}
