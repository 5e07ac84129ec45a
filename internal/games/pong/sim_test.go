package pong

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// fixedRand always returns the same value.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func running(r Rules) State {
	s := NewState(r)
	s.Phase = PhaseRunning
	return s
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestNewState(t *testing.T) {
	r := DefaultRules()
	s := NewState(r)

	if s.Phase != PhaseReady {
		t.Errorf("Phase = %v, expected ready", s.Phase)
	}
	if s.Player.Y != 250 || s.AI.Y != 250 {
		t.Errorf("paddles should start centered at y=250, got %v and %v", s.Player.Y, s.AI.Y)
	}
	if s.Player.X != 0 || s.AI.X != 790 {
		t.Errorf("paddle x = %v and %v, expected 0 and 790", s.Player.X, s.AI.X)
	}
	if s.Ball.X != 400 || s.Ball.Y != 300 || s.Ball.DX != 4 || s.Ball.DY != 4 {
		t.Errorf("unexpected initial ball %+v", s.Ball)
	}
	if s.Obstacle != nil || s.Level != 1 || s.Score != 0 {
		t.Errorf("unexpected initial state %+v", s)
	}
}

func TestTickSkipsUnlessRunning(t *testing.T) {
	r := DefaultRules()

	for _, phase := range []Phase{PhaseReady, PhaseGameOver} {
		s := NewState(r)
		s.Phase = phase
		next, events := Tick(s, r, fixedRand(0.5))
		if !reflect.DeepEqual(next, s) {
			t.Errorf("%v: state changed", phase)
		}
		if len(events) != 0 {
			t.Errorf("%v: unexpected events %v", phase, events)
		}
	}
}

func TestPlayerPaddleMoves(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name  string
		y, dy float64
		want  float64
	}{
		{"up", 250, -6, 244},
		{"down", 250, 6, 256},
		{"still", 250, 0, 250},
		{"clamped at top", 2, -6, 0},
		{"clamped at bottom", 498, 6, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := running(r)
			s.Player.Y = tc.y
			s.Player.DY = tc.dy
			next, _ := Tick(s, r, fixedRand(0.5))
			if next.Player.Y != tc.want {
				t.Errorf("Player.Y = %v, expected %v", next.Player.Y, tc.want)
			}
		})
	}
}

func TestAITracksBall(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name  string
		aiY   float64
		ballY float64
		want  float64
	}{
		{"ball above center moves up", 250, 100, 246},
		{"ball below center moves down", 250, 500, 254},
		{"ball at center moves down", 250, 300, 254},
		{"clamped at top", 1, 20, 0},
		{"clamped at bottom", 499, 590, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := running(r)
			s.AI.Y = tc.aiY
			s.Ball.Y = tc.ballY
			s.Ball.DY = 0
			next, _ := Tick(s, r, fixedRand(0.5))
			if next.AI.Y != tc.want {
				t.Errorf("AI.Y = %v, expected %v", next.AI.Y, tc.want)
			}
		})
	}
}

func TestWallBounce(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name  string
		y, dy float64
		want  float64
	}{
		{"top", 12, -4, 4},
		{"bottom", 588, 4, -4},
		{"open field", 300, 4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := running(r)
			s.Ball.Y = tc.y
			s.Ball.DY = tc.dy
			next, _ := Tick(s, r, fixedRand(0.5))
			if next.Ball.DY != tc.want {
				t.Errorf("Ball.DY = %v, expected %v", next.Ball.DY, tc.want)
			}
		})
	}
}

func TestPlayerPaddleHitScores(t *testing.T) {
	r := DefaultRules()
	s := running(r)
	s.Ball.X, s.Ball.Y = 22, 300
	s.Ball.DX, s.Ball.DY = -4, 0

	next, events := Tick(s, r, fixedRand(0.5))

	if next.Ball.DX != 4 {
		t.Errorf("Ball.DX = %v, expected 4", next.Ball.DX)
	}
	if next.Score != 1 {
		t.Errorf("Score = %d, expected 1", next.Score)
	}
	if got := kinds(events); !reflect.DeepEqual(got, []EventKind{EventPaddleHit}) {
		t.Errorf("events = %v", got)
	}
}

func TestPlayerPaddleMissEndsGame(t *testing.T) {
	r := DefaultRules()
	s := running(r)
	s.Ball.X, s.Ball.Y = 5, 50
	s.Ball.DX, s.Ball.DY = -4, 4

	next, events := Tick(s, r, fixedRand(0.5))

	if next.Phase != PhaseGameOver {
		t.Fatalf("Phase = %v, expected game over", next.Phase)
	}
	if next.Score != 0 {
		t.Errorf("a miss should not score, got %d", next.Score)
	}
	if got := kinds(events); !reflect.DeepEqual(got, []EventKind{EventGameOver}) {
		t.Errorf("events = %v", got)
	}
	if !next.Summary().GameOver {
		t.Error("summary should report game over")
	}

	// Frozen afterwards
	after, events := Tick(next, r, fixedRand(0.5))
	if !reflect.DeepEqual(after, next) || len(events) != 0 {
		t.Error("ticks after game over should do nothing")
	}
}

func TestAIPaddleHitDoesNotScore(t *testing.T) {
	r := DefaultRules()
	s := running(r)
	s.Ball.X, s.Ball.Y = 778, 300
	s.Ball.DX, s.Ball.DY = 4, 0

	next, events := Tick(s, r, fixedRand(0.5))

	if next.Ball.DX != -4 {
		t.Errorf("Ball.DX = %v, expected -4", next.Ball.DX)
	}
	if next.Score != 0 || len(events) != 0 {
		t.Errorf("AI hit should be silent, score=%d events=%v", next.Score, events)
	}
}

func TestRightExitResetsBall(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		roll   float64
		wantDX float64
		speed  float64
	}{
		{"level 1 to the right", 1, 0.9, 4, 4},
		{"level 1 to the left", 1, 0.1, -4, 4},
		{"level 3 uses its speed", 3, 0.9, 6, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultRules()
			s := running(r)
			s.Level = tc.level
			s.Ball.X, s.Ball.Y = 795, 100
			s.Ball.DX, s.Ball.DY = 4, -4

			next, events := Tick(s, r, fixedRand(tc.roll))

			if next.Ball.X != 400 || next.Ball.Y != 300 {
				t.Errorf("ball at (%v,%v), expected center", next.Ball.X, next.Ball.Y)
			}
			if next.Ball.DX != tc.wantDX || next.Ball.DY != tc.speed {
				t.Errorf("ball velocity (%v,%v), expected (%v,%v)", next.Ball.DX, next.Ball.DY, tc.wantDX, tc.speed)
			}
			if next.Phase != PhaseRunning {
				t.Errorf("game should continue, phase %v", next.Phase)
			}
			if got := kinds(events); !reflect.DeepEqual(got, []EventKind{EventBallReset}) {
				t.Errorf("events = %v", got)
			}
		})
	}
}

func TestObstacleMovesAndBounces(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name   string
		y, dy  float64
		wantY  float64
		wantDY float64
	}{
		{"moves down", 200, 2, 202, 2},
		{"bounces off bottom", 499, 2, 501, -2},
		{"bounces off top", 1, -2, -1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := running(r)
			s.Obstacle = &Obstacle{X: 390, Y: tc.y, W: 20, H: 100, DY: tc.dy}
			next, _ := Tick(s, r, fixedRand(0.5))
			if next.Obstacle.Y != tc.wantY || next.Obstacle.DY != tc.wantDY {
				t.Errorf("obstacle y=%v dy=%v, expected y=%v dy=%v",
					next.Obstacle.Y, next.Obstacle.DY, tc.wantY, tc.wantDY)
			}
			if s.Obstacle.Y != tc.y {
				t.Error("Tick must not mutate its input")
			}
		})
	}
}

func TestObstacleDeflectsBall(t *testing.T) {
	r := DefaultRules()
	s := running(r)
	s.Obstacle = &Obstacle{X: 390, Y: 250, W: 20, H: 100}
	s.Ball.X, s.Ball.Y = 380, 300
	s.Ball.DX, s.Ball.DY = 4, 4

	next, _ := Tick(s, r, fixedRand(0.5))
	if next.Ball.DX != -4 {
		t.Errorf("Ball.DX = %v, expected -4 after hitting the obstacle", next.Ball.DX)
	}

	// Clear of the obstacle
	s.Ball.X = 300
	next, _ = Tick(s, r, fixedRand(0.5))
	if next.Ball.DX != 4 {
		t.Errorf("Ball.DX = %v, expected 4 away from the obstacle", next.Ball.DX)
	}
}

func TestPaddlesStayInBounds(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(7))
	s := running(r)

	actions := []core.Action{core.ActionUp, core.ActionDown}
	for i := range 5000 {
		if i%15 == 0 {
			s, _ = Press(s, r, actions[rng.Intn(2)], rng)
		}
		if i%40 == 0 {
			s = Release(s, core.ActionUp)
		}
		s, _ = Tick(s, r, rng)
		if s.Phase == PhaseGameOver {
			s, _ = Restart(s, r, rng)
		}

		for _, p := range []Paddle{s.Player, s.AI} {
			if p.Y < 0 || p.Y > r.CanvasH-r.PaddleH {
				t.Fatalf("tick %d: paddle y=%v out of bounds", i, p.Y)
			}
		}
	}
}
