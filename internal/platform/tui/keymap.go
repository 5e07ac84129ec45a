package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// KeyMap defines the key bindings for the game and the admin panel.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Quit    key.Binding
	Panel   key.Binding

	// Admin panel: group toggles
	ToggleLevel    key.Binding
	ToggleColor    key.Binding
	ToggleObstacle key.Binding
	ToggleBall     key.Binding

	// Admin panel: controls
	SetLevel       key.Binding
	CycleColor     key.Binding
	ObstacleSlower key.Binding
	ObstacleFaster key.Binding
	BallSlower     key.Binding
	BallFaster     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Panel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Confirm, k.Panel, k.Quit},
		{k.ToggleLevel, k.ToggleColor, k.ToggleObstacle, k.ToggleBall},
		{k.SetLevel, k.CycleColor, k.ObstacleSlower, k.ObstacleFaster, k.BallSlower, k.BallFaster},
	}
}

// DefaultKeyMap returns default key bindings for a game with the given
// number of levels. Level keys run from 1 up to 9.
func DefaultKeyMap(levels int) KeyMap {
	levels = core.Clamp(levels, 1, config.MaxLevels)
	levelKeys := make([]string, 0, levels)
	for i := 1; i <= levels; i++ {
		levelKeys = append(levelKeys, strconv.Itoa(i))
	}

	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "move down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Panel: key.NewBinding(
			key.WithKeys("f2", "`"),
			key.WithHelp("F2", "admin menu"),
		),
		ToggleLevel: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "level controls"),
		),
		ToggleColor: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "color controls"),
		),
		ToggleObstacle: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "obstacle controls"),
		),
		ToggleBall: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "ball controls"),
		),
		SetLevel: key.NewBinding(
			key.WithKeys(levelKeys...),
			key.WithHelp(fmt.Sprintf("1-%d", levels), "set level"),
		),
		CycleColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next color"),
		),
		ObstacleSlower: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "obstacle slower"),
		),
		ObstacleFaster: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "obstacle faster"),
		),
		BallSlower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "ball slower"),
		),
		BallFaster: key.NewBinding(
			key.WithKeys("=", "+"),
			key.WithHelp("=", "ball faster"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
}

// PanelCommand is an admin panel control derived from input.
type PanelCommand int

const (
	PanelNone PanelCommand = iota
	PanelToggleGroup
	PanelSetLevel
	PanelCycleColor
	PanelObstacleSpeed
	PanelBallSpeed
)

// PanelInput is a decoded admin panel key.
type PanelInput struct {
	Command PanelCommand
	Group   pong.ControlGroup // Group the key belongs to
	Level   int               // For PanelSetLevel
	Dir     int               // -1 or +1 for speed steps
}

// MapPanelKey decodes an admin panel key. Keys outside the panel's
// vocabulary return PanelNone.
func (k KeyMap) MapPanelKey(msg tea.KeyMsg) PanelInput {
	switch {
	case key.Matches(msg, k.ToggleLevel):
		return PanelInput{Command: PanelToggleGroup, Group: pong.GroupLevel}
	case key.Matches(msg, k.ToggleColor):
		return PanelInput{Command: PanelToggleGroup, Group: pong.GroupColor}
	case key.Matches(msg, k.ToggleObstacle):
		return PanelInput{Command: PanelToggleGroup, Group: pong.GroupObstacleSpeed}
	case key.Matches(msg, k.ToggleBall):
		return PanelInput{Command: PanelToggleGroup, Group: pong.GroupBallSpeed}
	case key.Matches(msg, k.SetLevel):
		level, _ := strconv.Atoi(msg.String())
		return PanelInput{Command: PanelSetLevel, Group: pong.GroupLevel, Level: level}
	case key.Matches(msg, k.CycleColor):
		return PanelInput{Command: PanelCycleColor, Group: pong.GroupColor}
	case key.Matches(msg, k.ObstacleSlower):
		return PanelInput{Command: PanelObstacleSpeed, Group: pong.GroupObstacleSpeed, Dir: -1}
	case key.Matches(msg, k.ObstacleFaster):
		return PanelInput{Command: PanelObstacleSpeed, Group: pong.GroupObstacleSpeed, Dir: 1}
	case key.Matches(msg, k.BallSlower):
		return PanelInput{Command: PanelBallSpeed, Group: pong.GroupBallSpeed, Dir: -1}
	case key.Matches(msg, k.BallFaster):
		return PanelInput{Command: PanelBallSpeed, Group: pong.GroupBallSpeed, Dir: 1}
	}
	return PanelInput{}
}
