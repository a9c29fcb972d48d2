package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/range-arcade/internal/config"
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/registry"
)

// presets is the order the menu cycles through difficulty presets.
var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	games          []registry.GameInfo
	cursor         int
	preset         int
	width          int
	height         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *registry.GameInfo
	openScoreboard bool
}

// NewMenuModel creates a new menu model starting at the given difficulty.
func NewMenuModel(cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	m := MenuModel{
		games:  registry.List(),
		preset: 1,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	for i, p := range presets {
		if p == difficulty {
			m.preset = i
		}
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.games)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Easier):
		if m.preset > 0 {
			m.preset--
		}

	case key.Matches(msg, m.keys.Harder):
		if m.preset < len(presets)-1 {
			m.preset++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.games) > 0 {
			selected := m.games[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("R A N G E   A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Select a game"), m.width))
	b.WriteString("\n\n")

	for i, g := range m.games {
		line := fmt.Sprintf("  %s  ", g.Title)
		if i == m.cursor {
			line = menuSelectedStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Difficulty()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// Difficulty returns the chosen difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return presets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
