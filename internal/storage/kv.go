package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

const highScoresObject = "highscores"

// KVStore keeps one high score per game in the platform's per-user data
// directory. It has no history.
type KVStore struct {
	mu sync.Mutex
	m  *gdata.Manager
}

// OpenKV opens the key-value store for appName.
func OpenKV(appName string) (*KVStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open kv store: %w", err)
	}
	return &KVStore{m: m}, nil
}

// HighScore returns the stored high score, or 0 if the slot is empty.
func (s *KVStore) HighScore(gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(gameID)
}

func (s *KVStore) load(gameID string) (int, error) {
	if !s.m.ObjectPropExists(highScoresObject, gameID) {
		return 0, nil
	}
	data, err := s.m.LoadObjectProp(highScoresObject, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score for %s: %w", gameID, err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score for %s: %w", gameID, err)
	}
	return score, nil
}

// SaveHighScore stores score unless the slot already holds a higher value.
// A corrupt slot is overwritten.
func (s *KVStore) SaveHighScore(gameID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, err := s.load(gameID); err == nil && current >= score {
		return nil
	}
	if err := s.m.SaveObjectProp(highScoresObject, gameID, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save high score for %s: %w", gameID, err)
	}
	return nil
}

// Close is a no-op; gdata writes through on every save.
func (s *KVStore) Close() error { return nil }
