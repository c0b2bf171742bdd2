package cache

import (
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestLookupMissOnEmptyCache(t *testing.T) {
	c := openTestCache(t)
	_, ok, err := c.Lookup(Digest("1 dup"))
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if ok {
		t.Fatal("expected a miss on an empty cache")
	}
}

func TestStoreThenLookupHits(t *testing.T) {
	c := openTestCache(t)
	digest := Digest("1 dup")
	if err := c.Store(digest, "( -- Int Int)"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	result, ok, err := c.Lookup(digest)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after Store")
	}
	if result != "( -- Int Int)" {
		t.Fatalf("got %q", result)
	}
}

func TestStoreOverwritesPriorEntry(t *testing.T) {
	c := openTestCache(t)
	digest := Digest("1 dup")
	if err := c.Store(digest, "first"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := c.Store(digest, "second"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	result, _, err := c.Lookup(digest)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if result != "second" {
		t.Fatalf("got %q, want %q", result, "second")
	}
}

func TestDigestIsStableAndSensitiveToContent(t *testing.T) {
	if Digest("1 dup") != Digest("1 dup") {
		t.Fatal("expected the same source to hash identically")
	}
	if Digest("1 dup") == Digest("1 drop") {
		t.Fatal("expected different source to hash differently")
	}
}
