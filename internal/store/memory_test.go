package store

import (
	"context"
	"sort"
	"testing"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key should report not found, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v1" {
		t.Fatalf("get returned %q ok=%v err=%v", got, ok, err)
	}

	// Overwrite wins.
	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, _, _ = kv.Get(ctx, "k")
	if string(got) != "v2" {
		t.Fatalf("overwrite lost, got %q", got)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("deleted key still present")
	}
	// Deleting a missing key is not an error.
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("double delete errored: %v", err)
	}
}

func TestMemoryKVGetReturnsCopy(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", []byte("original")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, _, _ := kv.Get(ctx, "k")
	got[0] = 'X'

	again, _, _ := kv.Get(ctx, "k")
	if string(again) != "original" {
		t.Fatalf("caller mutation leaked into the store: %q", again)
	}
}

func TestMemoryKVKeysByPrefix(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	for _, k := range []string{TripKey("u1", "a"), TripKey("u1", "b"), TripKey("u2", "c"), CurrentTripKey("u1")} {
		if err := kv.Set(ctx, k, []byte("x")); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}

	keys, err := kv.Keys(ctx, TripKeyPrefix("u1"))
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "trip_u1_a" || keys[1] != "trip_u1_b" {
		t.Fatalf("wrong keys: %v", keys)
	}
}
