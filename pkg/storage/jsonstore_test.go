package storage

import (
	"os"
	"path/filepath"
	"testing"

	"turf-booking/pkg/utils"
)

type record struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func TestStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	store, err := InitStore(utils.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("InitStore error: %v", err)
	}
	defer store.Close()

	in := []record{{ID: "a", Count: 1}, {ID: "b", Count: 2}}
	if err := store.Put("records", in); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	var out []record
	found, err := store.Get("records", &out)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !found {
		t.Fatal("collection not found after Put")
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].Count != 2 {
		t.Errorf("roundtrip mismatch: %+v", out)
	}
}

func TestStoreMissingCollection(t *testing.T) {
	store, err := InitStore(utils.StoreConfig{})
	if err != nil {
		t.Fatalf("InitStore error: %v", err)
	}
	defer store.Close()

	var out []record
	found, err := store.Get("absent", &out)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if found {
		t.Error("missing collection reported as found")
	}
}

// Data written by one store instance must be readable by the next, the way a
// restart reloads the file.
func TestStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	first, err := InitStore(utils.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("InitStore error: %v", err)
	}
	if err := first.Put("records", []record{{ID: "x", Count: 7}}); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	second, err := InitStore(utils.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer second.Close()

	var out []record
	found, err := second.Get("records", &out)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !found || len(out) != 1 || out[0].ID != "x" || out[0].Count != 7 {
		t.Errorf("reload mismatch: found=%v out=%+v", found, out)
	}
}

func TestStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	store, err := InitStore(utils.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("InitStore error: %v", err)
	}
	defer store.Close()

	if err := store.Put("records", []record{{ID: "a"}}); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := store.Delete("records"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	var out []record
	found, err := store.Get("records", &out)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if found {
		t.Error("deleted collection still present")
	}

	// No temp file left behind after the atomic flush
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestStoreMemoryOnly(t *testing.T) {
	store, err := InitStore(utils.StoreConfig{})
	if err != nil {
		t.Fatalf("InitStore error: %v", err)
	}

	if err := store.Put("records", []record{{ID: "m"}}); err != nil {
		t.Fatalf("Put on memory-only store error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close on memory-only store error: %v", err)
	}
}
