package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ropeswing/ropeswing/internal/core"
	"github.com/ropeswing/ropeswing/internal/storage"
	"github.com/ropeswing/ropeswing/internal/swing"
)

// Model is the Bubble Tea model for running the swing game.
type Model struct {
	game       *swing.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	cameraX    float64 // From the last world snapshot, for mouse translation
	runStart   time.Time
	bestScore  int
	quitting   bool
	runSaved   bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *swing.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.CellW == 0 || cfg.CellH == 0 {
		def := core.DefaultConfig()
		cfg.CellW, cfg.CellH = def.CellW, def.CellH
	}

	game.Reset(cfg)

	bestScore := 0
	if store != nil {
		if best, err := store.BestScore(); err == nil {
			bestScore = best
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		runStart:   time.Now(),
		bestScore:  bestScore,
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg, m.gameState)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionGrab:
		// Keyboard grabs aim from the player; eligibility alone decides.
		m.inputFrame.SetGrab(core.GrabAttempt{At: time.Now()})
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse processes mouse input, translating screen cells into world
// coordinates before anything reaches the simulation.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action, grab, ok := m.keys.MapMouse(msg, m.cameraX, m.config)
	if !ok {
		return m, nil
	}

	switch action {
	case core.ActionGrab:
		if m.gameState.Idle {
			m.inputFrame.Set(core.ActionStart)
		} else {
			m.inputFrame.SetGrab(grab)
		}
	case core.ActionRelease:
		m.inputFrame.Set(core.ActionRelease)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart with new dimensions unless a finished run is on screen
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart after game over gets a fresh seed so each run differs
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.inputFrame.Clear()
		m.inputFrame.Set(core.ActionStart)
	}

	wasIdle := m.gameState.Idle

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.cameraX = m.game.WorldSnapshot().CameraX

	if wasIdle && !m.gameState.Idle {
		m.runStart = time.Now()
		m.runSaved = false
	}

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved && m.gameState.Score > 0 {
		if m.store != nil {
			duration := int(time.Since(m.runStart).Seconds())
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.gameState.Score, m.gameState.Pickups, duration)
		}
		if m.gameState.Score > m.bestScore {
			m.bestScore = m.gameState.Score
		}
		m.runSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && m.bestScore > 0 {
		m.screen.DrawTextCentered(m.screen.Height()/2+4, fmt.Sprintf("Best: %d", m.bestScore))
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *swing.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks aim the grab
	)

	_, err := p.Run()
	return err
}
