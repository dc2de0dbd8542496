package sqlitestore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/flowdag/flowdag/cachestore"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite3: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveThenLoad(t *testing.T) {
	store, err := New(openTestDB(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	err = store.Save(ctx, "g1", "n1", cachestore.Entry{Value: 7.0, RunID: "r1", Timestamp: 100})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := store.Load(ctx, "g1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, ok := entries["n1"]
	if !ok {
		t.Fatal("expected entry n1")
	}
	if got.Value != 7.0 || got.RunID != "r1" || got.Timestamp != 100 {
		t.Errorf("entry = %+v, want Value=7 RunID=r1 Timestamp=100", got)
	}
}

func TestSaveOverwritesSameKey(t *testing.T) {
	store, err := New(openTestDB(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	store.Save(ctx, "g1", "n1", cachestore.Entry{Value: 1.0})
	store.Save(ctx, "g1", "n1", cachestore.Entry{Value: 2.0})

	entries, err := store.Load(ctx, "g1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if entries["n1"].Value != 2.0 {
		t.Errorf("Value = %v, want 2.0", entries["n1"].Value)
	}
}

func TestNewRejectsNilDB(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}
