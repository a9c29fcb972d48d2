package blaster

import "github.com/vovakirdan/range-arcade/internal/core"

// respawnQueue holds the due times of targets waiting to come back, in the
// order they were hit.
type respawnQueue struct {
	due []core.Duration
}

func (q *respawnQueue) push(at core.Duration) {
	q.due = append(q.due, at)
}

// popDue removes and returns every entry due at or before now.
func (q *respawnQueue) popDue(now core.Duration) []core.Duration {
	var ready []core.Duration
	kept := q.due[:0]
	for _, at := range q.due {
		if at <= now {
			ready = append(ready, at)
		} else {
			kept = append(kept, at)
		}
	}
	q.due = kept
	return ready
}

func (q *respawnQueue) pending() int { return len(q.due) }

func (q *respawnQueue) clear() { q.due = q.due[:0] }
