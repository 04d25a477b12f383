package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dori/wille/internal/storage"
)

// TestEntriesSurviveReopen writes through one connection and reads the values
// back through a fresh one, the way the app sees them on its next start.
func TestEntriesSurviveReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	err = db.Write(map[string][]byte{
		"subjects": []byte(`[{"id":1,"title":"home"}]`),
		"todos":    []byte(`[{"id":2,"title":"dishes","done":false,"subjectId":1}]`),
	})
	if err != nil {
		t.Fatalf("Failed to write entries: %v", err)
	}
	db.Close()

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer db.Close()

	got, err := db.Read("todos")
	if err != nil {
		t.Fatalf("Failed to read todos: %v", err)
	}
	if string(got) != `[{"id":2,"title":"dishes","done":false,"subjectId":1}]` {
		t.Errorf("Unexpected todos value: %s", got)
	}
}

func TestWriteOverwritesExistingEntry(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	for _, v := range []string{`[1]`, `[1,2]`} {
		if err := db.Write(map[string][]byte{"todos": []byte(v)}); err != nil {
			t.Fatalf("Failed to write %s: %v", v, err)
		}
	}

	got, err := db.Read("todos")
	if err != nil {
		t.Fatalf("Failed to read todos: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("Expected last write to win, got %s", got)
	}
}

func TestMissingEntry(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Read("subjects"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on read, got %v", err)
	}
	if err := db.Delete("subjects"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on delete, got %v", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Write(map[string][]byte{"todos": []byte(`[]`)}); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}
	if err := db.Delete("todos"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if _, err := db.Read("todos"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected entry to be gone, got %v", err)
	}
}

// TestLocalsOverSQLite drives the JSON adapter against a real database file
func TestLocalsOverSQLite(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	type subject struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}

	locals := storage.New(db, nil)
	locals.Set("subjects", []subject{{ID: 10, Title: "work"}})

	var got []subject
	if !locals.Get("subjects", &got) {
		t.Fatal("Expected subjects to be present")
	}
	if len(got) != 1 || got[0].ID != 10 || got[0].Title != "work" {
		t.Errorf("Unexpected subjects: %+v", got)
	}
}
