package pong

import (
	"fmt"
	"hash/fnv"
)

// Snapshot is a primitive-typed copy of a game's state.
// Velocities are scaled by 1000 to keep fractional steps.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       int
	Level       int
	PlayerY     int
	AIY         int
	BallX       int
	BallY       int
	BallVX      int
	BallVY      int
	HasObstacle bool
	ObstacleY   int
	ObstacleVY  int
}

// TakeSnapshot captures s.
func TakeSnapshot(s State) Snapshot {
	snap := Snapshot{
		Tick:    s.Tick,
		Phase:   s.Phase,
		Score:   s.Score,
		Level:   s.Level,
		PlayerY: int(s.Player.Y),
		AIY:     int(s.AI.Y),
		BallX:   int(s.Ball.X),
		BallY:   int(s.Ball.Y),
		BallVX:  int(s.Ball.DX * 1000),
		BallVY:  int(s.Ball.DY * 1000),
	}
	if o := s.Obstacle; o != nil {
		snap.HasObstacle = true
		snap.ObstacleY = int(o.Y)
		snap.ObstacleVY = int(o.DY * 1000)
	}
	return snap
}

// Hash returns an FNV-1a digest of the snapshot. Equal snapshots hash equally.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%+v", s)
	return h.Sum64()
}

// ApplySnapshot restores the game from a snapshot. Colors and the RNG are
// left as they are.
func (g *Game) ApplySnapshot(snap Snapshot) {
	s := g.state.Clone()
	s.Tick = snap.Tick
	s.Phase = snap.Phase
	s.Score = snap.Score
	s.Level = snap.Level
	s.Player.Y = float64(snap.PlayerY)
	s.AI.Y = float64(snap.AIY)
	s.Ball.X = float64(snap.BallX)
	s.Ball.Y = float64(snap.BallY)
	s.Ball.DX = float64(snap.BallVX) / 1000.0
	s.Ball.DY = float64(snap.BallVY) / 1000.0

	if !snap.HasObstacle {
		s.Obstacle = nil
	} else {
		y, dy := float64(snap.ObstacleY), float64(snap.ObstacleVY)/1000.0
		if s.Obstacle == nil {
			s.Obstacle = newObstacle(g.rules, y, dy)
		}
		s.Obstacle.Y, s.Obstacle.DY = y, dy
	}
	g.state = s
}
