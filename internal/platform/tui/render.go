package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/range-arcade/internal/core"
)

// palette maps core colours to terminal colours. ColorDefault is left unstyled.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, tc := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(tc)
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a colour are emitted with a single style.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if style, ok := colorStyles[color]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
