package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey_NamespacedAndStable(t *testing.T) {
	k1 := Key("search", "the earth is flat")
	k2 := Key("search", "the earth is flat")
	k3 := Key("search", "a different query")

	if k1 != k2 {
		t.Error("same payload produced different keys")
	}
	if k1 == k3 {
		t.Error("different payloads collided")
	}
	if !strings.HasPrefix(k1, "clarion:v1:search:") {
		t.Errorf("key %q missing namespace prefix", k1)
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("hit on missing key")
	}
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found := c.Get("k")
	if !found || string(got) != "v" {
		t.Fatalf("Get = %q, %v", got, found)
	}
	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("hit after delete")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("hit after TTL expiry")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set(Key("search", "q"), []byte(`{"a":1}`), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found := c.Get(Key("search", "q"))
	if !found || string(got) != `{"a":1}` {
		t.Fatalf("Get = %q, %v", got, found)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get(Key("search", "q")); found {
		t.Error("hit after Clear")
	}
}

func TestDiskCache_ExpiredEntryRemoved(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("hit on expired disk entry")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	// First layered cache writes through to disk.
	c1 := NewLayeredCache(time.Minute, dir, time.Minute)
	if err := c1.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh layered cache over the same directory has a cold memory
	// layer and must fall through to disk and promote.
	c2 := NewLayeredCache(time.Minute, dir, time.Minute)
	got, found := c2.Get("k")
	if !found || string(got) != "v" {
		t.Fatalf("Get = %q, %v", got, found)
	}
}
