package tui

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap(3)

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"enter", core.ActionConfirm, false},
		{"q", core.ActionQuit, true},
		{"x", core.ActionNone, false},
		{"c", core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := keys.MapKey(keyMsg(tc.key))
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = %v,%v, expected %v,%v", tc.key, action, quit, tc.action, tc.quit)
		}
	}
}

func TestMapPanelKey(t *testing.T) {
	keys := DefaultKeyMap(3)

	tests := []struct {
		key  string
		want PanelInput
	}{
		{"L", PanelInput{Command: PanelToggleGroup, Group: pong.GroupLevel}},
		{"C", PanelInput{Command: PanelToggleGroup, Group: pong.GroupColor}},
		{"O", PanelInput{Command: PanelToggleGroup, Group: pong.GroupObstacleSpeed}},
		{"B", PanelInput{Command: PanelToggleGroup, Group: pong.GroupBallSpeed}},
		{"3", PanelInput{Command: PanelSetLevel, Group: pong.GroupLevel, Level: 3}},
		{"4", PanelInput{}},
		{"c", PanelInput{Command: PanelCycleColor, Group: pong.GroupColor}},
		{"[", PanelInput{Command: PanelObstacleSpeed, Group: pong.GroupObstacleSpeed, Dir: -1}},
		{"]", PanelInput{Command: PanelObstacleSpeed, Group: pong.GroupObstacleSpeed, Dir: 1}},
		{"-", PanelInput{Command: PanelBallSpeed, Group: pong.GroupBallSpeed, Dir: -1}},
		{"=", PanelInput{Command: PanelBallSpeed, Group: pong.GroupBallSpeed, Dir: 1}},
		{"z", PanelInput{}},
	}

	for _, tc := range tests {
		if got := keys.MapPanelKey(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapPanelKey(%q) = %+v, expected %+v", tc.key, got, tc.want)
		}
	}
}

func TestLevelKeysClamped(t *testing.T) {
	tests := []struct {
		levels int
		help   string
	}{
		{0, "1-1"},
		{3, "1-3"},
		{12, "1-9"},
	}

	for _, tc := range tests {
		keys := DefaultKeyMap(tc.levels)
		if got := keys.SetLevel.Help().Key; got != tc.help {
			t.Errorf("DefaultKeyMap(%d) level help = %q, expected %q", tc.levels, got, tc.help)
		}
	}
}
