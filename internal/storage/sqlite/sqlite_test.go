package sqlite

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"impactrack/internal/storage"
)

func TestStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "impactrack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	t.Run("missing slot returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get("never-written")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get = %v, want ErrNotFound", err)
		}
	})

	t.Run("set then get round trips", func(t *testing.T) {
		payload := []byte(`[{"id":"P001"}]`)
		if err := store.Set("participants", payload); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := store.Get("participants")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("Get = %q, want %q", got, payload)
		}
	})

	t.Run("set overwrites previous payload", func(t *testing.T) {
		if err := store.Set("settings", []byte(`{"theme":"light"}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := store.Set("settings", []byte(`{"theme":"dark"}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := store.Get("settings")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `{"theme":"dark"}` {
			t.Errorf("Get = %q, want dark settings", got)
		}
	})

	t.Run("reopen sees persisted payload", func(t *testing.T) {
		if err := store.Set("expenses", []byte(`[]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		reopened, err := New(dbPath)
		if err != nil {
			t.Fatalf("Failed to reopen store: %v", err)
		}
		defer reopened.Close()
		got, err := reopened.Get("expenses")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `[]` {
			t.Errorf("Get = %q, want []", got)
		}
	})
}

func TestNewCreatesParentDirectory(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "impactrack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "dir", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store in nested dir: %v", err)
	}
	store.Close()
}
