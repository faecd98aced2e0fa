package vmath

import (
	"math"
	"testing"

	"github.com/lixenwraith/gunslinger/core"
)

func TestAreaIntersects(t *testing.T) {
	base := core.Area{X: 0, Y: 0, Width: 64, Height: 64}

	tests := []struct {
		name  string
		other core.Area
		want  bool
	}{
		{"identical", base, true},
		{"contained", core.Area{X: 10, Y: 10, Width: 6, Height: 6}, true},
		{"overlap corner", core.Area{X: 60, Y: 60, Width: 40, Height: 40}, true},
		{"touching right edge", core.Area{X: 64, Y: 0, Width: 10, Height: 10}, false},
		{"touching bottom edge", core.Area{X: 0, Y: 64, Width: 10, Height: 10}, false},
		{"x overlap only", core.Area{X: 10, Y: 100, Width: 10, Height: 10}, false},
		{"y overlap only", core.Area{X: 100, Y: 10, Width: 10, Height: 10}, false},
		{"negative origin overlap", core.Area{X: -3, Y: -3, Width: 6, Height: 6}, true},
		{"empty box", core.Area{X: 10, Y: 10, Width: 0, Height: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreaIntersects(base, tt.other); got != tt.want {
				t.Errorf("AreaIntersects(base, %+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Symmetry
			if got := AreaIntersects(tt.other, base); got != tt.want {
				t.Errorf("AreaIntersects(%+v, base) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestAreaOutside(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, false},
		{-50, -50, false},
		{-51, 0, true},
		{850, 600, false},
		{851, 0, true},
		{0, 651, true},
	}

	for _, tt := range tests {
		a := core.Area{X: tt.x, Y: tt.y, Width: 6, Height: 6}
		if got := AreaOutside(a, 800, 600, 50); got != tt.want {
			t.Errorf("AreaOutside(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAreaContains(t *testing.T) {
	a := core.Area{X: 0, Y: 1, Width: 80, Height: 22}

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 1, true},
		{79, 22, true},
		{80, 5, false},
		{5, 23, false},
		{5, 0, false},
		{-1, 5, false},
	}
	for _, tt := range tests {
		if got := AreaContains(a, tt.x, tt.y); got != tt.want {
			t.Errorf("AreaContains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAreaCenterDistance(t *testing.T) {
	a := core.Area{X: 0, Y: 0, Width: 10, Height: 10}
	b := core.Area{X: 30, Y: 40, Width: 10, Height: 10}

	if d := AreaCenterDistance(a, b); math.Abs(d-50) > 1e-9 {
		t.Errorf("AreaCenterDistance = %f, want 50", d)
	}
}

func TestDirection(t *testing.T) {
	vx, vy, ok := Direction(380, 260, 400, 260, 8)
	if !ok {
		t.Fatal("Direction returned !ok for distinct points")
	}
	if vx != 8 || vy != 0 {
		t.Errorf("Direction = (%f, %f), want (8, 0)", vx, vy)
	}

	vx, vy, ok = Direction(0, 0, 3, 4, 5)
	if !ok || math.Abs(vx-3) > 1e-9 || math.Abs(vy-4) > 1e-9 {
		t.Errorf("Direction 3-4-5 = (%f, %f, %v), want (3, 4, true)", vx, vy, ok)
	}

	if _, _, ok := Direction(5, 5, 5, 5, 8); ok {
		t.Error("Direction for coincident points should report !ok")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(7, 0, 10) != 7 {
		t.Error("Clamp returned a value outside the expected bounds")
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 1000; i++ {
		if v := r.IntRange(50, 750); v < 50 || v >= 750 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of bounds: %v", f)
		}
	}
	if r.IntRange(5, 5) != 5 {
		t.Error("empty range should return lo")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed diverged")
		}
	}
}
