package cache

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

func TestSetAndLoad(t *testing.T) {
	c := InitStorage()

	k := gofakeit.UUID()
	c.SetNoExp(k, "payload")

	if v := c.Load(k); v != "payload" {
		t.Fatalf("got %v", v)
	}

	c.Del(k)
	if v := c.Load(k); v != nil {
		t.Fatalf("expected nil after delete, got %v", v)
	}
}

func TestSetExpires(t *testing.T) {
	c := InitStorage()

	c.Set("k", "v", 50*time.Millisecond)
	if v := c.Load("k"); v != "v" {
		t.Fatalf("got %v", v)
	}

	time.Sleep(200 * time.Millisecond)
	if v := c.Load("k"); v != nil {
		t.Fatalf("expected expired, got %v", v)
	}
}

func TestLoadOrSetCounts(t *testing.T) {
	c := InitStorage()

	first := c.LoadOrSet("key", 1, time.Minute)
	if first != 1 {
		t.Fatalf("got %v", first)
	}

	// second caller sees the stored value, not its own
	second := c.LoadOrSet("key", 99, time.Minute)
	if second != 1 {
		t.Fatalf("got %v", second)
	}
}
