package storage

import (
	"fmt"
	"testing"
	"time"
)

func openTestKV(t *testing.T) *KVStore {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	store, err := OpenKV(fmt.Sprintf("range_arcade_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("cannot create kv store for testing: %v", err)
	}
	return store
}

func TestKVHighScore(t *testing.T) {
	store := openTestKV(t)
	defer store.Close()

	if got, err := store.HighScore("blaster"); err != nil || got != 0 {
		t.Fatalf("fresh HighScore = %d, %v", got, err)
	}

	steps := []struct {
		save int
		want int
	}{
		{100, 100},
		{40, 100},
		{250, 250},
	}
	for _, st := range steps {
		if err := store.SaveHighScore("blaster", st.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", st.save, err)
		}
		got, err := store.HighScore("blaster")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if got != st.want {
			t.Errorf("after saving %d high score = %d, want %d", st.save, got, st.want)
		}
	}

	if got, _ := store.HighScore("driving"); got != 0 {
		t.Errorf("driving high score = %d, want 0", got)
	}
}

func TestKVCorruptSlotIsReplaced(t *testing.T) {
	store := openTestKV(t)

	if err := store.m.SaveObjectProp(highScoresObject, "basketball", []byte("not a number")); err != nil {
		t.Fatalf("seed corrupt slot: %v", err)
	}
	if _, err := store.HighScore("basketball"); err == nil {
		t.Error("expected error for corrupt slot")
	}
	if err := store.SaveHighScore("basketball", 200); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if got, err := store.HighScore("basketball"); err != nil || got != 200 {
		t.Errorf("HighScore = %d, %v; want 200", got, err)
	}
}
