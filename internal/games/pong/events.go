package pong

import "fmt"

// EventKind identifies what happened during a transition.
type EventKind int

const (
	EventStarted EventKind = iota
	EventRestarted
	EventPaddleHit
	EventLevelChanged
	EventBallReset
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventRestarted:
		return "restarted"
	case EventPaddleHit:
		return "paddle hit"
	case EventLevelChanged:
		return "level changed"
	case EventBallReset:
		return "ball reset"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event records a notable transition together with the score and level
// right after it.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Score int
	Level int
}

// Message returns the player-facing notification for the event, or "" when
// the event is not announced.
func (e Event) Message() string {
	switch e.Kind {
	case EventLevelChanged:
		return fmt.Sprintf("Changed to Level %d", e.Level)
	case EventGameOver:
		return "Game Over! Press Enter to Restart"
	default:
		return ""
	}
}
