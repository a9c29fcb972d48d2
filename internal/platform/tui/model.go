package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/loop"
)

// Rows taken by the HUD above the game and the help line below it.
const (
	hudRows    = 1
	footerRows = 1
)

// Model is the Bubble Tea model for playing one game.
type Model struct {
	driver *loop.Driver
	clock  core.Clock
	screen *core.Screen
	hold   *keyHold
	keys   PlayKeyMap
	help   help.Model
	logger *log.Logger

	title      string
	tickID     uint64
	tickRate   int
	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewModel creates a model around a prepared driver.
func NewModel(d *loop.Driver, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	m := Model{
		driver:   d,
		clock:    d.Clock(),
		screen:   core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		hold:     newKeyHold(DefaultHoldWindow),
		keys:     DefaultPlayKeyMap(),
		help:     help.New(),
		logger:   logger,
		title:    d.Game().Title(),
		tickID:   newTickLoop(),
		tickRate: cfg.TickRate,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	return m
}

// WithBackToMenu enables the key that leaves the game for the arcade menu.
func (m Model) WithBackToMenu() Model {
	m.keys.Back.SetEnabled(true)
	return m
}

func gameRows(height int) int {
	return max(1, height-hudRows-footerRows)
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.driver.Start(); err != nil {
		m.logger.Warn("could not start session", "error", err)
	}
	return tickCmd(m.tickID, m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.driver.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back) && !m.driver.Session().Live():
		m.backToMenu = true
		m.driver.Close()
		return m, nil
	}

	code := KeyCode(msg)
	if code == "" {
		return m, nil
	}
	now := m.clock.Now()
	if !holdable(code) {
		// Platform actions drop held controls so nothing stays pressed across them.
		for _, held := range m.hold.ReleaseAll() {
			m.driver.Push(core.KeyUpEvent(held, now))
		}
		m.driver.Push(core.KeyDownEvent(code, now))
		return m, nil
	}
	if m.hold.Press(code, now) {
		m.driver.Push(core.KeyDownEvent(code, now))
	}
	return m, nil
}

// handleMouse forwards pointer input in game-area coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := pointerEvent(msg, msg.X, msg.Y-hudRows, m.screen.Width(), m.screen.Height(), m.clock.Now())
	if ok {
		m.driver.Push(ev)
	}
	return m, nil
}

// handleTick releases expired keys and advances the driver.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	now := m.clock.Now()
	for _, code := range m.hold.Expire(now) {
		m.driver.Push(core.KeyUpEvent(code, now))
	}
	m.driver.Tick()
	return m, tickCmd(m.tickID, m.tickRate)
}

// saveScreenshot saves the current frame to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.driver.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw paints the game and its state overlay into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.driver.Render(m.screen)
	drawOverlay(m.screen, m.driver.Session().Snapshot())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.draw()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHUD(m.title, m.driver.Session().Snapshot(), m.width),
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Driver returns the hosted loop driver.
func (m Model) Driver() *loop.Driver {
	return m.driver
}

// Run plays a game in the current terminal until the user quits.
func Run(d *loop.Driver, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(d, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
