package storage

import "fmt"

// Backend names accepted by OpenBackend.
const (
	BackendSQLite = "sqlite"
	BackendKV     = "kv"
)

// DefaultAppName is the gdata application name for the kv backend.
const DefaultAppName = "range_arcade"

// HighScores is the persistence surface shared by both backends.
type HighScores interface {
	HighScore(gameID string) (int, error)
	SaveHighScore(gameID string, score int) error
	Close() error
}

var (
	_ HighScores = (*Store)(nil)
	_ HighScores = (*KVStore)(nil)
)

// OpenBackend opens the named backend. dbPath is used by sqlite only.
func OpenBackend(kind, dbPath string) (HighScores, error) {
	switch kind {
	case "", BackendSQLite:
		s, err := Open(dbPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendKV:
		s, err := OpenKV(DefaultAppName)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}
