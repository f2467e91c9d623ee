package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Backend: "tui", Score: 40, Reason: "caught"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil || high != 40 {
		t.Errorf("HighScore() = %d, %v; want 40", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Backend: "tui", Seed: 1, Score: 100, Ticks: 600, Reason: "caught"},
		{Backend: "window", Seed: 2, Score: 50, Ticks: 300, Reason: "quit"},
		{Backend: "headless", Seed: 3, Score: 200, Ticks: 1200, Reason: "caught"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Run.Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Run.Score, w)
		}
	}

	top := scores[0].Run
	if top.Backend != "headless" || top.Seed != 3 || top.Ticks != 1200 || top.Reason != "caught" {
		t.Errorf("top run = %+v", top)
	}
	if _, err := uuid.Parse(top.RunID); err != nil {
		t.Errorf("generated run ID %q is not a UUID: %v", top.RunID, err)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	got, err := store.SaveRun(Run{RunID: id, Backend: "tui", Score: 10, Reason: "quit"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveRun() = %q, want %q", got, id)
	}

	entry, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if entry.Run.Score != 10 || entry.Run.Reason != "quit" {
		t.Errorf("RunByID() = %+v", entry.Run)
	}

	// Run IDs are unique.
	if _, err := store.SaveRun(Run{RunID: id, Backend: "tui", Reason: "quit"}); err == nil {
		t.Error("SaveRun() with duplicate run ID should fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunByID("missing")
	if !errors.Is(err, ErrNoScores) {
		t.Errorf("RunByID() error = %v, want ErrNoScores", err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Backend: "headless", Score: (i + 1) * 100, Reason: "caught"})
	}

	tests := []struct {
		limit int
		want  []int
	}{
		{3, []int{500, 400, 300}},
		{0, []int{500, 400, 300, 200, 100}},
		{-1, []int{500, 400, 300, 200, 100}},
	}

	for _, tt := range tests {
		scores, err := store.TopScores(tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tt.limit, err)
		}
		if len(scores) != len(tt.want) {
			t.Fatalf("TopScores(%d) returned %d rows, want %d", tt.limit, len(scores), len(tt.want))
		}
		for i, w := range tt.want {
			if scores[i].Run.Score != w {
				t.Errorf("TopScores(%d)[%d] = %d, want %d", tt.limit, i, scores[i].Run.Score, w)
			}
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	if _, err := store.HighScore(); !errors.Is(err, ErrNoScores) {
		t.Fatalf("HighScore() on empty store error = %v, want ErrNoScores", err)
	}

	store.SaveRun(Run{Backend: "tui", Score: 100, Reason: "caught"})
	store.SaveRun(Run{Backend: "tui", Score: 300, Reason: "caught"})
	store.SaveRun(Run{Backend: "tui", Score: 200, Reason: "quit"})

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Backend: "tui", Score: 100, Reason: "caught"})
	store.SaveRun(Run{Backend: "tui", Score: 200, Reason: "caught"})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/pacman.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "pacman.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
