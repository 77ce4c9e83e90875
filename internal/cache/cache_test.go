package cache

import (
	"testing"
	"time"
)

func TestTTLCache_GetMissThenSet(t *testing.T) {
	c := New[string, int](time.Minute)

	if _, ok, _ := c.Get("x"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("x", 42)
	v, ok, age := c.Get("x")
	if !ok || v != 42 {
		t.Fatalf("Get() = (%v, %v), want (42, true)", v, ok)
	}
	if age < 0 {
		t.Errorf("age = %v, want >= 0", age)
	}
}

func TestTTLCache_ExpiresAfterTTL(t *testing.T) {
	c := New[string, int](1 * time.Millisecond)
	c.Set("x", 1)
	time.Sleep(5 * time.Millisecond)

	if _, ok, _ := c.Get("x"); ok {
		t.Error("expected entry to have expired")
	}
}

func TestTTLCache_InvalidateClearsEverything(t *testing.T) {
	c := New[string, int](time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Invalidate()

	if _, ok, _ := c.Get("a"); ok {
		t.Error("expected cache to be empty after Invalidate")
	}
}

func TestPredictionKey_AllVariants(t *testing.T) {
	if k := PredictionKey(nil, nil); k != "all:all" {
		t.Errorf("PredictionKey(nil, nil) = %q, want all:all", k)
	}
	dt, dow := 3, 5
	if k := PredictionKey(&dt, &dow); k != "3:5" {
		t.Errorf("PredictionKey(3, 5) = %q, want 3:5", k)
	}
}
