package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Press applies a key press. Movement sets the player paddle's velocity;
// confirm starts a ready game and restarts a finished one.
func Press(s State, r Rules, a core.Action, rng Rand) (State, []Event) {
	switch a {
	case core.ActionUp:
		s.Player.DY = -r.PlayerSpeed
	case core.ActionDown:
		s.Player.DY = r.PlayerSpeed
	case core.ActionConfirm:
		switch s.Phase {
		case PhaseReady:
			return Start(s)
		case PhaseGameOver:
			return Restart(s, r, rng)
		}
	}
	return s, nil
}

// Release applies a key release. Releasing either movement key stops the
// player paddle.
func Release(s State, a core.Action) State {
	if a.IsMovement() {
		s.Player.DY = 0
	}
	return s
}
