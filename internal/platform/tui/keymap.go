package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/range-arcade/internal/core"
)

// keyCodes maps Bubble Tea key strings to platform key codes.
var keyCodes = map[string]string{
	"w":     core.KeyW,
	"a":     core.KeyA,
	"s":     core.KeyS,
	"d":     core.KeyD,
	"p":     core.KeyP,
	"r":     core.KeyR,
	"up":    core.KeyUp,
	"down":  core.KeyDown,
	"left":  core.KeyLeft,
	"right": core.KeyRight,
	" ":     core.KeySpace,
	"esc":   core.KeyEscape,
}

// KeyCode returns the platform key code for a key message, or "" when the key
// is not bound.
func KeyCode(msg tea.KeyMsg) string {
	return keyCodes[msg.String()]
}

// holdable reports whether a key is held down for continuous control. Other
// keys only ever produce key-down events.
func holdable(code string) bool {
	return core.ActionForKey(code) == core.ActionNone
}

// PlayKeyMap defines the platform bindings shown under a running game.
type PlayKeyMap struct {
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Screenshot, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Restart},
		{k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings. Back is only enabled when the
// game is hosted by the arcade menu.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Harder     key.Binding
	Easier     key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Easier, k.Harder, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Easier, k.Harder},
		{k.Scoreboard, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Easier: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left", "easier"),
		),
		Harder: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right", "harder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
