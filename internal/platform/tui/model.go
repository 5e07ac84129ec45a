package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// footerHeight is the number of rows below the playfield.
const footerHeight = 1

// Model is the Bubble Tea model that drives a game of Pong.
type Model struct {
	game    *pong.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	panel   *pong.DebugPanel
	hold    *holdTracker
	logger  *log.Logger
	levels  int
	notify  time.Duration
	now     func() time.Time
	toast   string
	toastID int
	width   int
	height  int

	ticking  bool // A tick chain is in flight
	quitting bool
}

// NewModel creates a model for a game built from cfg.
// A nil logger discards everything.
func NewModel(cfg config.PongConfig, runtime core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := pong.New(cfg)
	game.Reset(runtime)

	hold := newHoldTracker(
		time.Duration(cfg.Input.InitialHoldMS)*time.Millisecond,
		time.Duration(cfg.Input.RepeatHoldMS)*time.Millisecond,
	)

	levels := core.Clamp(len(cfg.Levels), 1, config.MaxLevels)
	m := Model{
		game:   game,
		config: runtime,
		keys:   DefaultKeyMap(levels),
		help:   help.New(),
		panel:  &pong.DebugPanel{},
		hold:   &hold,
		logger: logger,
		levels: levels,
		notify: time.Duration(cfg.Gameplay.NotifyMS) * time.Millisecond,
		now:    time.Now,
		width:  runtime.ScreenW,
		height: runtime.ScreenH,
	}
	m.screen = core.NewScreen(m.playfieldSize())
	return m
}

// Init sets the window title. Ticking starts with the first confirm.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game ready", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Panel) {
		m.panel.Toggle()
		m.keys.Panel.SetHelp("F2", m.panel.ButtonLabel())
		m.screen.Resize(m.playfieldSize())
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown:
		if m.hold.Press(action, m.now()) {
			m.game.Press(action)
		}
		return m, nil
	case core.ActionConfirm:
		events := m.game.Press(action)
		if len(events) == 0 {
			return m, nil
		}
		m.hold.Reset()
		cmd := m.handleEvents(events)
		return m, tea.Batch(cmd, m.startTicking())
	}

	if m.panel.Open() {
		return m.handlePanelKey(m.keys.MapPanelKey(msg))
	}
	return m, nil
}

// handlePanelKey applies an admin panel control. Controls of hidden groups
// are ignored.
func (m Model) handlePanelKey(in PanelInput) (tea.Model, tea.Cmd) {
	if in.Command == PanelToggleGroup {
		m.panel.ToggleGroup(in.Group)
		return m, nil
	}
	if in.Command == PanelNone || !m.panel.Active(in.Group) {
		return m, nil
	}

	switch in.Command {
	case PanelSetLevel:
		return m, m.handleEvents(m.game.SetLevel(in.Level))
	case PanelCycleColor:
		c := m.game.CyclePlayerColor()
		m.logger.Debug("player color set", "color", c)
	case PanelObstacleSpeed:
		if v, ok := m.game.StepObstacleSpeed(in.Dir); ok {
			m.logger.Debug("obstacle speed set", "speed", v)
		}
	case PanelBallSpeed:
		v := m.game.StepBallSpeed(in.Dir)
		m.logger.Debug("ball speed set", "speed", v)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running; only
// the cell grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.playfieldSize())
	return m, nil
}

// handleTick runs one simulation step and schedules the next one unless the
// game is over.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.game.State().Started || m.game.State().GameOver {
		m.ticking = false
		return m, nil
	}

	if a, ok := m.hold.Expire(now); ok {
		m.game.Release(a)
	}

	cmd := m.handleEvents(m.game.Step())

	if m.game.State().GameOver {
		m.ticking = false
		return m, cmd
	}
	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// startTicking starts the tick chain unless one is already running.
func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.config.TickRate)
}

// handleEvents logs game events and raises notifications for them.
func (m *Model) handleEvents(events []pong.Event) tea.Cmd {
	var cmd tea.Cmd
	for _, e := range events {
		switch e.Kind {
		case pong.EventStarted, pong.EventRestarted:
			m.logger.Info("game "+e.Kind.String(), "level", e.Level)
		case pong.EventLevelChanged:
			m.logger.Info("level changed", "level", e.Level, "score", e.Score)
			m.toastID++
			m.toast = e.Message()
			cmd = toastCmd(m.toastID, m.notify)
		case pong.EventGameOver:
			m.logger.Info("game over",
				"score", e.Score,
				"level", e.Level,
				"tick", e.Tick,
				"snapshot", fmt.Sprintf("%016x", m.game.Snapshot().Hash()),
			)
		case pong.EventBallReset:
			m.logger.Debug("ball reset", "tick", e.Tick)
		}
	}
	return cmd
}

// playfieldSize returns the game's cell grid size for the current window.
func (m Model) playfieldSize() (int, int) {
	w := m.width
	if m.panel.Open() {
		w -= panelWidth
	}
	return max(w, 0), max(m.height-footerHeight, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	r := m.game.Rules()
	m.game.Render(core.NewScreenSurface(m.screen, r.CanvasW, r.CanvasH))

	st := m.game.State()
	switch {
	case !st.Started:
		drawMessage(m.screen, "PONG", "Press Enter to Start")
	case st.GameOver:
		drawMessage(m.screen, "Game Over!", fmt.Sprintf("Score: %d  |  Press Enter to Restart", st.Score))
	}

	view := RenderScreen(m.screen)
	if m.panel.Open() {
		panel := renderPanel(m.panel, m.game.Current(), m.levels, m.screen.Height())
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, panel)
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.toast != "" {
		footer = toastStyle.Render(m.toast)
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, footer)
}

// Run starts the Bubble Tea program.
func Run(cfg config.PongConfig, runtime core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, runtime, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
