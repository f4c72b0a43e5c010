package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	if _, ok, err := m.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get missing = ok=%v err=%v, want miss", ok, err)
	}

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || string(val) != "v" {
		t.Fatalf("Get = %q ok=%v err=%v, want hit with v", val, ok, err)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("expired entry must read as a miss")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("old"), time.Minute)
	m.Set(ctx, "k", []byte("new"), time.Minute)
	val, ok, _ := m.Get(ctx, "k")
	if !ok || string(val) != "new" {
		t.Errorf("Get = %q ok=%v, want the newer value", val, ok)
	}
}
