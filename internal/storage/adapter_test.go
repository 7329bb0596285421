package storage_test

import (
	"log/slog"
	"testing"

	"impactrack/internal/storage"
	"impactrack/internal/storage/memory"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestAdapterGet(t *testing.T) {
	kv := memory.New()
	a := storage.NewAdapter(kv, slog.Default())
	def := []record{{Name: "default"}}

	t.Run("missing slot returns default", func(t *testing.T) {
		got := storage.Get(a, "missing", def)
		if len(got) != 1 || got[0].Name != "default" {
			t.Errorf("Get = %v, want default", got)
		}
	})

	t.Run("round trips stored value", func(t *testing.T) {
		if ok := a.Set("records", []record{{Name: "a", Count: 2}}); !ok {
			t.Fatal("Set returned false")
		}
		got := storage.Get(a, "records", def)
		if len(got) != 1 || got[0].Name != "a" || got[0].Count != 2 {
			t.Errorf("Get = %v, want stored records", got)
		}
	})

	t.Run("corrupt payload returns default", func(t *testing.T) {
		if err := kv.Set("corrupt", []byte("{not json")); err != nil {
			t.Fatalf("raw Set failed: %v", err)
		}
		got := storage.Get(a, "corrupt", def)
		if len(got) != 1 || got[0].Name != "default" {
			t.Errorf("Get = %v, want default on corrupt payload", got)
		}
	})

	t.Run("read failure returns default", func(t *testing.T) {
		if ok := a.Set("readable", []record{{Name: "stored"}}); !ok {
			t.Fatal("Set returned false")
		}
		kv.FailReads(true)
		defer kv.FailReads(false)
		got := storage.Get(a, "readable", def)
		if len(got) != 1 || got[0].Name != "default" {
			t.Errorf("Get = %v, want default on read failure", got)
		}
	})
}

func TestAdapterSet(t *testing.T) {
	kv := memory.New()
	a := storage.NewAdapter(kv, slog.Default())

	t.Run("write failure returns false and preserves prior value", func(t *testing.T) {
		if ok := a.Set("slot", record{Name: "before"}); !ok {
			t.Fatal("Set returned false")
		}
		kv.FailWrites(true)
		if ok := a.Set("slot", record{Name: "after"}); ok {
			t.Error("Set = true, want false on write failure")
		}
		kv.FailWrites(false)
		got := storage.Get(a, "slot", record{})
		if got.Name != "before" {
			t.Errorf("prior value = %q, want %q", got.Name, "before")
		}
	})

	t.Run("unencodable value returns false", func(t *testing.T) {
		if ok := a.Set("bad", make(chan int)); ok {
			t.Error("Set = true, want false for unencodable value")
		}
	})
}
