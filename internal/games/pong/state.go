package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Phase is the lifecycle stage of a game. Exactly one phase holds at a time.
type Phase int

const (
	PhaseReady    Phase = iota // Waiting for the first confirm
	PhaseRunning               // Ticks advance the simulation
	PhaseGameOver              // Ball left through the player's side
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Rand is the randomness the simulation needs. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// State is the complete game state.
// Obstacle is nil when the current level has none.
type State struct {
	Player   Paddle
	AI       Paddle
	Ball     Ball
	Obstacle *Obstacle
	Score    int
	Level    int
	Phase    Phase
	Tick     uint64
}

// NewState returns the state before the first confirm: paddles centered,
// ball at the center moving down-right at the first level's speed.
func NewState(r Rules) State {
	level := r.FirstLevel()
	speed := r.BallSpeed(level)

	s := State{
		Player: Paddle{X: 0, W: r.PaddleW, H: r.PaddleH, Color: r.Colors.Player},
		AI:     Paddle{X: r.CanvasW - r.PaddleW, W: r.PaddleW, H: r.PaddleH, Color: r.Colors.AI},
		Ball: Ball{
			X:     r.CanvasW / 2,
			Y:     r.CanvasH / 2,
			R:     r.BallRadius,
			DX:    speed,
			DY:    speed,
			Color: r.Colors.Ball,
		},
		Level: level,
		Phase: PhaseReady,
	}
	s.centerPaddles(r)
	return s
}

// Clone returns a deep copy.
func (s State) Clone() State {
	if s.Obstacle != nil {
		o := *s.Obstacle
		s.Obstacle = &o
	}
	return s
}

// Summary returns the platform-facing view of the state.
func (s State) Summary() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		Started:  s.Phase != PhaseReady,
		GameOver: s.Phase == PhaseGameOver,
	}
}

func (s *State) centerPaddles(r Rules) {
	y := r.CanvasH/2 - r.PaddleH/2
	s.Player.Y = y
	s.AI.Y = y
}

// resetBall recenters the ball with a random horizontal direction and the
// current level's speed; it always leaves moving down.
func (s *State) resetBall(r Rules, rng Rand) {
	speed := r.BallSpeed(s.Level)
	s.Ball.X = r.CanvasW / 2
	s.Ball.Y = r.CanvasH / 2
	s.Ball.DX = speed
	if rng.Float64() <= 0.5 {
		s.Ball.DX = -speed
	}
	s.Ball.DY = speed
}

func (s *State) event(kind EventKind) Event {
	return Event{Kind: kind, Tick: s.Tick, Score: s.Score, Level: s.Level}
}

// Start leaves the ready phase with the player paddle at rest.
// Other phases are returned unchanged.
func Start(s State) (State, []Event) {
	if s.Phase != PhaseReady {
		return s, nil
	}
	s.Player.DY = 0
	s.Phase = PhaseRunning
	return s, []Event{s.event(EventStarted)}
}

// Restart begins a new game after game over: score and level reset, obstacle
// removed, ball and paddles recentered. Other phases are returned unchanged.
func Restart(s State, r Rules, rng Rand) (State, []Event) {
	if s.Phase != PhaseGameOver {
		return s, nil
	}
	next := s.Clone()
	next.Score = 0
	next.Level = r.FirstLevel()
	next.Obstacle = nil
	next.Tick = 0
	next.Player.DY = 0
	next.centerPaddles(r)
	next.resetBall(r, rng)
	next.Phase = PhaseRunning
	return next, []Event{next.event(EventRestarted)}
}
