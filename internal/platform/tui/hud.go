package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/session"
)

var (
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	hudTitleStyle = hudStyle.Bold(true)
	hudDimStyle   = hudStyle.Foreground(lipgloss.Color("250"))
	hudWarnStyle  = hudStyle.Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// lowTime is the remaining time below which the clock is highlighted.
const lowTime = 10.0

// ScoreText formats the score readout.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// TimeText formats the remaining play time.
func TimeText(seconds float64) string {
	return fmt.Sprintf("Time: %.1fs", seconds)
}

// renderHUD builds the single status line shown above the game.
func renderHUD(title string, snap session.Snapshot, width int) string {
	timeStyle := hudStyle
	if snap.State == session.StateRunning && snap.TimeRemaining < lowTime {
		timeStyle = hudWarnStyle
	}

	left := hudTitleStyle.Render(" "+title+" ") + hudDimStyle.Render(" "+snap.State.String()+" ")
	right := hudStyle.Render(ScoreText(snap.Score)+"   ") +
		timeStyle.Render(TimeText(snap.TimeRemaining)) +
		hudDimStyle.Render(fmt.Sprintf("   Best: %d ", snap.HighScore))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + hudStyle.Render(strings.Repeat(" ", gap)) + right
}

// drawOverlay draws the state message for anything but active play.
func drawOverlay(scr *core.Screen, snap session.Snapshot) {
	switch snap.State {
	case session.StateIdle:
		scr.DrawMessage("READY", "press R to start")
	case session.StateCountdown:
		sub := "get ready"
		if snap.Resuming {
			sub = "resuming"
		}
		scr.DrawMessage(strconv.Itoa(snap.CountdownRemaining), sub)
	case session.StatePaused:
		scr.DrawMessage("PAUSED", "P to resume, R to restart")
	case session.StateOver:
		title := "TIME UP"
		if snap.NewHighScore {
			title = "NEW HIGH SCORE!"
		}
		scr.DrawMessage(title, fmt.Sprintf("%s   High Score: %d   R to play again", ScoreText(snap.Score), snap.HighScore))
	}
}
