package core

import "time"

// EventKind identifies the kind of raw input delivered by the platform.
type EventKind int

const (
	EventNone EventKind = iota
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventKeyDown
	EventKeyUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "PointerMove"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerUp:
		return "PointerUp"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "None"
	}
}

// Pointer buttons.
const (
	ButtonPrimary   = 0
	ButtonMiddle    = 1
	ButtonSecondary = 2
)

// Key codes follow the browser KeyboardEvent.code naming so that bindings read the
// same regardless of which platform produced them.
const (
	KeyW      = "KeyW"
	KeyA      = "KeyA"
	KeyS      = "KeyS"
	KeyD      = "KeyD"
	KeyP      = "KeyP"
	KeyR      = "KeyR"
	KeyUp     = "ArrowUp"
	KeyDown   = "ArrowDown"
	KeyLeft   = "ArrowLeft"
	KeyRight  = "ArrowRight"
	KeySpace  = "Space"
	KeyEscape = "Escape"
)

// InputEvent is a single raw input event. Pointer coordinates are viewport pixels
// with the origin at the top-left corner; ViewW and ViewH carry the viewport size
// in the same units.
type InputEvent struct {
	Kind         EventKind
	X, Y         float64
	ViewW, ViewH int
	Button       int
	Code         string
	At           time.Duration // monotonic timestamp
}

// WithViewport returns a copy of ev tagged with the viewport size.
func (ev InputEvent) WithViewport(w, h int) InputEvent {
	ev.ViewW, ev.ViewH = w, h
	return ev
}

// Normalized maps the pointer position to [-1, 1] with +Y up.
func (ev InputEvent) Normalized() (nx, ny float64) {
	return NormalizePointer(ev.X, ev.Y, ev.ViewW, ev.ViewH)
}

// PointerMove builds a pointer-move event.
func PointerMove(x, y float64, at time.Duration) InputEvent {
	return InputEvent{Kind: EventPointerMove, X: x, Y: y, At: at}
}

// PointerDown builds a pointer-down event.
func PointerDown(button int, x, y float64, at time.Duration) InputEvent {
	return InputEvent{Kind: EventPointerDown, Button: button, X: x, Y: y, At: at}
}

// PointerUp builds a pointer-up event.
func PointerUp(button int, x, y float64, at time.Duration) InputEvent {
	return InputEvent{Kind: EventPointerUp, Button: button, X: x, Y: y, At: at}
}

// KeyDownEvent builds a key-down event.
func KeyDownEvent(code string, at time.Duration) InputEvent {
	return InputEvent{Kind: EventKeyDown, Code: code, At: at}
}

// KeyUpEvent builds a key-up event.
func KeyUpEvent(code string, at time.Duration) InputEvent {
	return InputEvent{Kind: EventKeyUp, Code: code, At: at}
}

// NormalizePointer maps viewport coordinates to [-1, 1] on both axes with +Y up.
// A zero-sized viewport maps everything to the centre.
func NormalizePointer(x, y float64, width, height int) (nx, ny float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	nx = (x/float64(width))*2 - 1
	ny = -(y/float64(height))*2 + 1
	return nx, ny
}

// Action is a semantic platform action derived from raw key input.
// Games never see these; the loop driver consumes them.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionRestart
)

// ActionForKey returns the platform action bound to a key-down code.
func ActionForKey(code string) Action {
	switch code {
	case KeyP, KeyEscape:
		return ActionPause
	case KeyR:
		return ActionRestart
	default:
		return ActionNone
	}
}

// InputQueue buffers raw events between ticks. The platform pushes as events
// arrive and the loop driver drains once per tick, preserving arrival order.
type InputQueue struct {
	events []InputEvent
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{events: make([]InputEvent, 0, 16)}
}

// Push appends an event.
func (q *InputQueue) Push(ev InputEvent) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *InputQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *InputQueue) Drain() []InputEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]InputEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
