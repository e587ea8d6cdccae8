package statecraft

import (
	"math"
	"testing"
)

// constRand returns the same draw every time.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }
func (c constRand) Intn(int) int     { return 0 }

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRandHelpers(t *testing.T) {
	r := NewRand(3)
	for range 1000 {
		if v := Uniform(r, 0.5, 1.5); v < 0.5 || v >= 1.5 {
			t.Fatalf("Uniform out of range: %v", v)
		}
		if v := IntBetween(r, 15, 30); v < 15 || v > 30 {
			t.Fatalf("IntBetween out of range: %v", v)
		}
	}
	if Chance(constRand(0.5), 0.5) {
		t.Fatal("Chance must be strict")
	}
	if !Chance(constRand(0), 0.01) {
		t.Fatal("zero draw should pass any positive probability")
	}
	if got := Pick(constRand(0), []string{"a", "b"}); got != "a" {
		t.Fatalf("Pick = %q", got)
	}
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(11), NewRand(11)
	for range 10 {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed, different sequences")
		}
	}
}
