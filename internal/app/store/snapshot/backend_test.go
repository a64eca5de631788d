package snapshot

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

// backends under test share one behavioral contract; sqlite is included
// because modernc.org/sqlite needs no cgo and runs anywhere the tests do.
func testBackends(t *testing.T) map[string]Backend {
	t.Helper()

	dir := t.TempDir()
	file, err := NewFile(filepath.Join(dir, "snap", "voltdesk.json"))
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	lite, err := NewSQLite(filepath.Join(dir, "voltdesk.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { lite.Close(context.Background()) })

	return map[string]Backend{
		"memory": NewMemory(),
		"file":   file,
		"sqlite": lite,
	}
}

func TestBackend_LoadEmpty(t *testing.T) {
	ctx := context.Background()
	for name, b := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := b.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if ok {
				t.Error("expected ok=false before first Store")
			}
		})
	}
}

func TestBackend_StoreLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	blob := []byte(`{"version":1,"users":[]}`)

	for name, b := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := b.Store(ctx, blob); err != nil {
				t.Fatalf("Store failed: %v", err)
			}
			got, ok, err := b.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !ok {
				t.Fatal("expected ok=true after Store")
			}
			if !bytes.Equal(got, blob) {
				t.Errorf("Load: got %q, want %q", got, blob)
			}
		})
	}
}

func TestBackend_StoreReplaces(t *testing.T) {
	ctx := context.Background()

	for name, b := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := b.Store(ctx, []byte("first")); err != nil {
				t.Fatalf("Store failed: %v", err)
			}
			if err := b.Store(ctx, []byte("second")); err != nil {
				t.Fatalf("second Store failed: %v", err)
			}
			got, ok, err := b.Load(ctx)
			if err != nil || !ok {
				t.Fatalf("Load failed: ok=%v err=%v", ok, err)
			}
			if string(got) != "second" {
				t.Errorf("Load after replace: got %q, want %q", got, "second")
			}
		})
	}
}

func TestMemory_LoadCopiesBlob(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.Store(ctx, []byte("abc")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	got, _, _ := m.Load(ctx)
	got[0] = 'x'

	again, _, _ := m.Load(ctx)
	if string(again) != "abc" {
		t.Errorf("mutating a loaded blob leaked into the backend: %q", again)
	}
}
