package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	defer m.Stop()

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	m.Set(ctx, "k", []byte(`["a","b"]`))
	got, ok := m.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != `["a","b"]` {
		t.Fatalf("got %q", got)
	}

	// An empty value is a valid cached result, not a miss.
	m.Set(ctx, "empty", []byte(`[]`))
	if _, ok := m.Get(ctx, "empty"); !ok {
		t.Fatal("expected hit for cached empty list")
	}

	m.Delete(ctx, "k")
	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("expected miss after Delete")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)
	defer m.Stop()

	m.Set(ctx, "k", []byte("old"))
	m.Set(ctx, "k", []byte("new"))

	got, ok := m.Get(ctx, "k")
	if !ok || string(got) != "new" {
		t.Fatalf("got %q, %v; want %q, true", got, ok, "new")
	}
}

func TestCacheKeys(t *testing.T) {
	if AllSongsKey() != "all-songs" {
		t.Fatalf("AllSongsKey() = %q", AllSongsKey())
	}
	if RecordingsKey(42) != "recordings-42" {
		t.Fatalf("RecordingsKey(42) = %q", RecordingsKey(42))
	}
}
