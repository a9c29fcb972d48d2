package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/range-arcade/internal/core"
)

// A terminal cell is treated as an 8x16 pixel box so that pointer speeds have
// the same scale as in a graphical viewport.
const (
	cellPixelsW = 8
	cellPixelsH = 16
)

// pointerEvent converts a mouse message to an input event. Coordinates are
// given in cells relative to the game area of cols x rows cells; the event is
// placed at the centre of the cell in virtual pixels. Wheel and unknown
// buttons are dropped.
func pointerEvent(msg tea.MouseMsg, col, row, cols, rows int, at time.Duration) (core.InputEvent, bool) {
	if cols <= 0 || rows <= 0 {
		return core.InputEvent{}, false
	}
	x := (float64(col) + 0.5) * cellPixelsW
	y := (float64(row) + 0.5) * cellPixelsH
	w, h := cols*cellPixelsW, rows*cellPixelsH

	var ev core.InputEvent
	switch msg.Action {
	case tea.MouseActionMotion:
		ev = core.PointerMove(x, y, at)
	case tea.MouseActionPress:
		button, ok := mouseButton(msg.Button)
		if !ok {
			return core.InputEvent{}, false
		}
		ev = core.PointerDown(button, x, y, at)
	case tea.MouseActionRelease:
		// Some terminals report releases without the button.
		button, ok := mouseButton(msg.Button)
		if !ok {
			button = core.ButtonPrimary
		}
		ev = core.PointerUp(button, x, y, at)
	default:
		return core.InputEvent{}, false
	}
	return ev.WithViewport(w, h), true
}

func mouseButton(b tea.MouseButton) (int, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle, true
	case tea.MouseButtonRight:
		return core.ButtonSecondary, true
	default:
		return 0, false
	}
}
