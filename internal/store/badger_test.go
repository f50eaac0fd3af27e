package store

import (
	"testing"
)

func TestBadgerKVRoundTrip(t *testing.T) {
	kv, err := NewBadgerKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewBadgerKV: %v", err)
	}
	defer kv.Close()

	if _, ok := kv.Get("missing"); ok {
		t.Error("expected missing key to report absent")
	}

	if err := kv.Set("chats", `[]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := kv.Get("chats")
	if !ok || v != `[]` {
		t.Errorf("expected stored value back, got %q ok=%v", v, ok)
	}

	// Overwrite wins.
	if err := kv.Set("chats", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := kv.Get("chats"); v != `[{"id":"1"}]` {
		t.Errorf("expected overwritten value, got %q", v)
	}
}

func TestBadgerKVPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	kv, err := NewBadgerKV(dir)
	if err != nil {
		t.Fatalf("NewBadgerKV: %v", err)
	}
	if err := kv.Set("language", "de"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewBadgerKV(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if v, ok := reopened.Get("language"); !ok || v != "de" {
		t.Errorf("expected persisted value after reopen, got %q ok=%v", v, ok)
	}
}
