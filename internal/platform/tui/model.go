package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/iced/internal/config"
	"github.com/vovakirdan/iced/internal/core"
	"github.com/vovakirdan/iced/internal/games/iced"
	"github.com/vovakirdan/iced/internal/platform"
)

// helpHeight is the number of terminal rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model for a play session.
type Model struct {
	game     *iced.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	frontend config.FrontendConfig
	logger   *log.Logger

	keys     KeyMap
	help     help.Model
	holds    *HoldTracker
	input    core.InputFrame
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *iced.Game, cfg core.RuntimeConfig, frontend config.FrontendConfig, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config:   cfg,
		frontend: frontend,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     h,
		holds:    NewHoldTracker(frontend.InitialHold, frontend.RepeatHold),
		input:    core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(action)
	case core.ActionJump, core.ActionRestart:
		m.input.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world keeps its own units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame using the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate, m.frontend.MaxFrameTime)
	m.lastTick = now

	m.holds.Apply(&m.input)
	ev := m.game.Step(m.input, dt)
	platform.LogEvents(m.logger, ev, m.game.World())

	m.holds.Advance(dt)
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// frameDelta returns the seconds between two ticks, capped at maxFrame.
// The first tick has no predecessor and uses the nominal tick interval.
func frameDelta(prev, now time.Time, tickRate int, maxFrame float64) float64 {
	if prev.IsZero() {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrame)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *iced.Game, cfg core.RuntimeConfig, frontend config.FrontendConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, frontend, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
