package core

import "testing"

func TestNormalizePointer(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		w, h   int
		nx, ny float64
	}{
		{"top-left", 0, 0, 100, 50, -1, 1},
		{"bottom-right", 100, 50, 100, 50, 1, -1},
		{"centre", 50, 25, 100, 50, 0, 0},
		{"zero viewport", 10, 10, 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nx, ny := NormalizePointer(tc.x, tc.y, tc.w, tc.h)
			if nx != tc.nx || ny != tc.ny {
				t.Errorf("NormalizePointer = (%v, %v), expected (%v, %v)", nx, ny, tc.nx, tc.ny)
			}
		})
	}
}

func TestInputQueueDrainPreservesOrder(t *testing.T) {
	q := NewInputQueue()
	q.Push(KeyDownEvent(KeyW, 1))
	q.Push(PointerDown(ButtonPrimary, 3, 4, 2))
	q.Push(KeyUpEvent(KeyW, 3))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Drain() returned %d events, expected 3", len(events))
	}
	kinds := []EventKind{EventKeyDown, EventPointerDown, EventKeyUp}
	for i, k := range kinds {
		if events[i].Kind != k {
			t.Errorf("event %d kind = %s, expected %s", i, events[i].Kind, k)
		}
	}

	if q.Len() != 0 {
		t.Errorf("queue should be empty after drain, has %d", q.Len())
	}
	if again := q.Drain(); again != nil {
		t.Errorf("second drain should return nil, got %v", again)
	}

	// Drained slice must not alias the queue's storage.
	q.Push(KeyDownEvent(KeyP, 4))
	if events[0].Code != KeyW {
		t.Errorf("drained events were overwritten: %+v", events[0])
	}
}

func TestActionForKey(t *testing.T) {
	if ActionForKey(KeyP) != ActionPause || ActionForKey(KeyEscape) != ActionPause {
		t.Error("P and Escape should map to pause")
	}
	if ActionForKey(KeyR) != ActionRestart {
		t.Error("R should map to restart")
	}
	if ActionForKey(KeyW) != ActionNone {
		t.Error("W is a game key, not a platform action")
	}
}

func TestEventNormalized(t *testing.T) {
	ev := PointerMove(600, 150, 0).WithViewport(800, 600)
	nx, ny := ev.Normalized()
	if nx != 0.5 || ny != 0.5 {
		t.Errorf("Normalized = (%v, %v), expected (0.5, 0.5)", nx, ny)
	}

	bare := PointerMove(10, 10, 0)
	if nx, ny := bare.Normalized(); nx != 0 || ny != 0 {
		t.Errorf("Normalized without viewport = (%v, %v), expected centre", nx, ny)
	}
}
