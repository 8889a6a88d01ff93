package core

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func mustViolate(t *testing.T, fn func()) ContractViolation {
	t.Helper()
	var got ContractViolation
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected contract violation panic")
			}
			err, ok := r.(error)
			if !ok || !errors.As(err, &got) {
				t.Fatalf("expected ContractViolation, got %T: %v", r, r)
			}
		}()
		fn()
	}()
	return got
}

func TestRequire(t *testing.T) {
	Require(true, "never")
	v := mustViolate(t, func() { Require(false, "index %d", 7) })
	if v.Invariant != "index 7" {
		t.Fatalf("unexpected invariant %q", v.Invariant)
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 9)
	if g.At(2, 1) != 9 || g.Cells()[g.Index(2, 1)] != 9 {
		t.Fatal("Set/At disagree with backing slice")
	}
	mustViolate(t, func() { g.At(3, 0) })
	mustViolate(t, func() { g.Set(0, -1, 1) })
	mustViolate(t, func() { NewByteGrid(0, 4) })
}

func TestPaletteDeterministic(t *testing.T) {
	a := NewRNG(42).Palette(10)
	b := NewRNG(42).Palette(10)
	if !slices.Equal(a, b) {
		t.Fatal("palette must be deterministic for a seed")
	}
	for i, p := range a {
		r, g, b, alpha := Unpack(p)
		if alpha != 255 || r == 255 || g == 255 || b == 255 {
			t.Fatalf("palette[%d] = %#x out of range", i, uint32(p))
		}
	}
	if slices.Equal(a, NewRNG(7).Palette(10)) {
		t.Fatal("different seeds should give different palettes")
	}
}

func TestFixedStepCountsWholeTicks(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if n := fs.Steps(); n != 1 {
		t.Fatalf("first poll should release the primed tick, got %d", n)
	}
	now = now.Add(250 * time.Millisecond)
	if n := fs.Steps(); n != 2 {
		t.Fatalf("expected 2 ticks after 250ms at 10 TPS, got %d", n)
	}
	now = now.Add(50 * time.Millisecond)
	if n := fs.Steps(); n != 1 {
		t.Fatalf("expected carried remainder to yield 1 tick, got %d", n)
	}
}

func TestParameterLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{Name: "a", Params: []Parameter{{Key: "fov", Value: "1.05"}}}}}
	if p, ok := s.Lookup("fov"); !ok || p.Value != "1.05" {
		t.Fatalf("lookup failed: %+v %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}
}
