package tui

import (
	"sort"
	"time"
)

// DefaultHoldWindow is how long a key counts as held after its last press or
// auto-repeat. It must outlast the terminal's initial repeat delay.
const DefaultHoldWindow = 550 * time.Millisecond

// keyHold turns the press-only key stream of a terminal into down/up pairs.
// Terminals never report releases, so a key is released once no repeat has
// arrived within the hold window.
type keyHold struct {
	window time.Duration
	last   map[string]time.Duration
}

func newKeyHold(window time.Duration) *keyHold {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &keyHold{window: window, last: make(map[string]time.Duration)}
}

// Press records a press of code at now and reports whether it starts a new hold.
func (h *keyHold) Press(code string, now time.Duration) bool {
	_, held := h.last[code]
	h.last[code] = now
	return !held
}

// Expire releases every key whose last press is older than the window and
// returns their codes in a stable order.
func (h *keyHold) Expire(now time.Duration) []string {
	var released []string
	for code, at := range h.last {
		if now-at >= h.window {
			released = append(released, code)
			delete(h.last, code)
		}
	}
	sort.Strings(released)
	return released
}

// ReleaseAll releases every held key.
func (h *keyHold) ReleaseAll() []string {
	released := make([]string, 0, len(h.last))
	for code := range h.last {
		released = append(released, code)
	}
	clear(h.last)
	sort.Strings(released)
	return released
}
