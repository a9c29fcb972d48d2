package session

import "sync"

// MemoryStore is an in-process HighScoreStore. It backs sessions when no
// persistent store could be opened.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// HighScore returns the stored score, or 0 for an unknown game.
func (m *MemoryStore) HighScore(gameID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[gameID], nil
}

// SaveHighScore stores score for gameID.
func (m *MemoryStore) SaveHighScore(gameID string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[gameID] = score
	return nil
}
