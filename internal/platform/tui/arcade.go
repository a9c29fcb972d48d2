package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/config"
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/session"
)

// ArcadeConfig configures the menu-driven arcade used for local and SSH play.
type ArcadeConfig struct {
	Runtime    core.RuntimeConfig
	ConfigPath string
	Difficulty config.DifficultyPreset
	// Store persists high scores. A nil store keeps them in memory for the
	// lifetime of the arcade.
	Store  session.HighScoreStore
	Logger *log.Logger
}

type arcadeScreen int

const (
	screenMenu arcadeScreen = iota
	screenGame
	screenScores
)

// ArcadeModel manages the full arcade flow: menu -> game or scoreboard -> menu.
type ArcadeModel struct {
	cfg      ArcadeConfig
	current  arcadeScreen
	menu     MenuModel
	game     *Model
	scores   ScoreboardModel
	quitting bool
}

// NewArcadeModel creates the top-level arcade model.
func NewArcadeModel(cfg ArcadeConfig) ArcadeModel {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Store == nil {
		cfg.Store = session.NewMemoryStore()
	}
	return ArcadeModel{
		cfg:  cfg,
		menu: NewMenuModel(cfg.Runtime, cfg.Difficulty),
	}
}

// Init initializes the arcade.
func (m ArcadeModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m ArcadeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m ArcadeModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.cfg.Store, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
		m.current = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().ID, m.menu.Difficulty())
	}

	return m, cmd
}

// startGame builds a fresh game instance for the selected entry.
func (m ArcadeModel) startGame(gameID string, difficulty config.DifficultyPreset) (tea.Model, tea.Cmd) {
	m.cfg.Difficulty = difficulty
	d, err := NewPlay(PlayOptions{
		GameID:     gameID,
		Runtime:    m.cfg.Runtime,
		ConfigPath: m.cfg.ConfigPath,
		Difficulty: difficulty,
		Store:      m.cfg.Store,
		Logger:     m.cfg.Logger,
	}, core.NewSystemClock())
	if err != nil {
		m.cfg.Logger.Error("could not start game", "game", gameID, "error", err)
		return m.backToMenu()
	}

	game := NewModel(d, m.cfg.Runtime, m.cfg.Logger).WithBackToMenu()
	m.game = &game
	m.current = screenGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m ArcadeModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = &game
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.backToMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m ArcadeModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m ArcadeModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.cfg.Runtime, m.cfg.Difficulty)
	m.current = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m ArcadeModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunArcade runs the menu-driven arcade in the current terminal.
func RunArcade(cfg ArcadeConfig) error {
	p := tea.NewProgram(
		NewArcadeModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
