package kvstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "store.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if _, err := store.Get(ctx, KeyPendingBills); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get on empty store error = %v, want ErrKeyNotFound", err)
	}

	want := []byte(`[{"id":"b1"}]`)
	if err := store.Put(ctx, KeyPendingBills, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, KeyPendingBills)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Get = %s, want %s", got, want)
	}

	// A second store over the same file sees the data.
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	got, err = reopened.Get(ctx, KeyPendingBills)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Get after reopen = %s, want %s", got, want)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Put(ctx, KeyShopConfig, []byte(`{"shop_name":"A"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, KeyShopConfig, []byte(`{"shop_name":"B"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, KeyShopConfig)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"shop_name":"B"}` {
		t.Errorf("Get = %s, want overwritten value", got)
	}

	// No leftover temp file from the atomic rewrite.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind")
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte(`{"n":1}`)
	if err := store.Put(ctx, "k", value); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Mutating the returned slice must not corrupt the store.
	got[0] = 'X'
	again, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(again) != `{"n":1}` {
		t.Errorf("stored value mutated through returned slice")
	}
}
