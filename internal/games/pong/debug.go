package pong

import (
	"slices"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// SetPlayerColor recolors the player paddle.
func SetPlayerColor(s State, c core.Color) State {
	s.Player.Color = c
	return s
}

// SetObstacleSpeed sets the obstacle's vertical velocity to v.
// Without an obstacle the state is returned unchanged.
func SetObstacleSpeed(s State, v float64) State {
	if s.Obstacle == nil {
		return s
	}
	next := s.Clone()
	next.Obstacle.DY = v
	return next
}

// SetBallSpeed overwrites both ball velocity components with v, so the ball
// always leaves moving down-right.
func SetBallSpeed(s State, v float64) State {
	s.Ball.DX = v
	s.Ball.DY = v
	return s
}

// ControlGroup is a set of related controls in the debug panel.
type ControlGroup int

const (
	GroupLevel ControlGroup = iota
	GroupColor
	GroupObstacleSpeed
	GroupBallSpeed
	groupCount
)

// Groups lists every control group in display order.
var Groups = []ControlGroup{GroupLevel, GroupColor, GroupObstacleSpeed, GroupBallSpeed}

func (g ControlGroup) String() string {
	switch g {
	case GroupLevel:
		return "Level"
	case GroupColor:
		return "Player Color"
	case GroupObstacleSpeed:
		return "Obstacle Speed"
	case GroupBallSpeed:
		return "Ball Speed"
	default:
		return "Unknown"
	}
}

// DebugPanel tracks what the admin panel shows. The panel and every group
// start hidden.
type DebugPanel struct {
	open    bool
	visible [groupCount]bool
}

// Toggle opens or closes the panel.
func (p *DebugPanel) Toggle() {
	p.open = !p.open
}

// Open reports whether the panel is shown.
func (p *DebugPanel) Open() bool {
	return p.open
}

// ButtonLabel is the caption of the control that toggles the panel.
func (p *DebugPanel) ButtonLabel() string {
	if p.open {
		return "Close Admin Menu"
	}
	return "Admin Menu"
}

// ToggleGroup shows or hides a control group. Unknown groups are ignored.
func (p *DebugPanel) ToggleGroup(g ControlGroup) {
	if g < 0 || g >= groupCount {
		return
	}
	p.visible[g] = !p.visible[g]
}

// GroupVisible reports whether a group's controls are shown.
func (p *DebugPanel) GroupVisible(g ControlGroup) bool {
	if g < 0 || g >= groupCount {
		return false
	}
	return p.visible[g]
}

// Active reports whether a group's controls accept input: the panel must be
// open and the group shown.
func (p *DebugPanel) Active(g ControlGroup) bool {
	return p.open && p.GroupVisible(g)
}

// NextColor returns the color after cur in choices, wrapping around.
// A color not in choices is followed by the first choice.
func NextColor(choices []core.Color, cur core.Color) core.Color {
	if len(choices) == 0 {
		return cur
	}
	i := slices.Index(choices, cur)
	return choices[(i+1)%len(choices)]
}

// StepSpeed moves from cur to the adjacent preset in steps.
// dir > 0 picks the smallest preset above |cur|, dir < 0 the largest below;
// at either end the extreme preset is returned.
func StepSpeed(steps []float64, cur float64, dir int) float64 {
	if len(steps) == 0 {
		return cur
	}
	steps = slices.Sorted(slices.Values(steps))
	if cur < 0 {
		cur = -cur
	}
	if dir > 0 {
		for _, v := range steps {
			if v > cur {
				return v
			}
		}
		return steps[len(steps)-1]
	}
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < cur {
			return steps[i]
		}
	}
	return steps[0]
}
