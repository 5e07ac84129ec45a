package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// panelWidth is the admin panel's outer width in cells, border included.
const panelWidth = 30

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(panelWidth - 2)
	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	panelGroupStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	panelHiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderPanel draws the admin panel for the current state.
func renderPanel(p *pong.DebugPanel, s pong.State, levels, height int) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(p.ButtonLabel()))
	b.WriteString("\n")
	b.WriteString(panelHiddenStyle.Render("F2 to close"))
	b.WriteString("\n")

	groupKeys := map[pong.ControlGroup]string{
		pong.GroupLevel:         "L",
		pong.GroupColor:         "C",
		pong.GroupObstacleSpeed: "O",
		pong.GroupBallSpeed:     "B",
	}

	for _, g := range pong.Groups {
		b.WriteString("\n")
		header := fmt.Sprintf("[%s] %s", groupKeys[g], g)
		if !p.GroupVisible(g) {
			b.WriteString(panelHiddenStyle.Render(header))
			b.WriteString("\n")
			continue
		}
		b.WriteString(panelGroupStyle.Render(header))
		b.WriteString("\n")
		b.WriteString(groupDetail(g, s, levels))
		b.WriteString("\n")
	}

	style := panelStyle
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func groupDetail(g pong.ControlGroup, s pong.State, levels int) string {
	switch g {
	case pong.GroupLevel:
		return fmt.Sprintf("  1-%d set level (now %d)", levels, s.Level)
	case pong.GroupColor:
		return fmt.Sprintf("  c next (now %s)", s.Player.Color)
	case pong.GroupObstacleSpeed:
		if s.Obstacle == nil {
			return "  [ ] step (no obstacle)"
		}
		return fmt.Sprintf("  [ ] step (now %g)", s.Obstacle.DY)
	case pong.GroupBallSpeed:
		return fmt.Sprintf("  - = step (now %g)", s.Ball.DX)
	default:
		return ""
	}
}
