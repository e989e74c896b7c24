package halton

import (
	"math"
	"testing"

	"github.com/df07/go-render-sampling/pkg/core"
)

func TestRadicalInverse(t *testing.T) {
	tests := []struct {
		name     string
		index    uint64
		base     uint64
		expected float64
	}{
		{"Index 0 is 0", 0, 2, 0},
		{"Base 2 index 1", 1, 2, 0.5},
		{"Base 2 index 2", 2, 2, 0.25},
		{"Base 2 index 3", 3, 2, 0.75},
		{"Base 2 index 4", 4, 2, 0.125},
		{"Base 2 index 5", 5, 2, 0.625},
		{"Base 3 index 1", 1, 3, 1.0 / 3.0},
		{"Base 3 index 2", 2, 3, 2.0 / 3.0},
		{"Base 3 index 3", 3, 3, 1.0 / 9.0},
		{"Base 5 index 7", 7, 5, 2.0/5.0 + 1.0/25.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RadicalInverse(tt.index, tt.base)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("RadicalInverse(%d, %d): got %g, expected %g", tt.index, tt.base, result, tt.expected)
			}
		})
	}
}

func TestRadicalInverseRange(t *testing.T) {
	for _, base := range []uint64{2, 3, 5, 7, 11} {
		for index := uint64(0); index < 1000; index++ {
			r := RadicalInverse(index, base)
			if r < 0 || r >= 1 {
				t.Fatalf("RadicalInverse(%d, %d) = %g out of [0,1)", index, base, r)
			}
		}
	}
}

func TestPoint2D(t *testing.T) {
	primes := [2]uint64{2, 3}

	p := Point2D(primes, core.Vec2{}, 1)
	if math.Abs(p.X-0.5) > 1e-12 || math.Abs(p.Y-1.0/3.0) > 1e-12 {
		t.Errorf("Point2D index 1: got %v", p)
	}

	// Offsets wrap back into the unit interval.
	shifted := Point2D(primes, core.NewVec2(0.5, 0.75), 1)
	if math.Abs(shifted.X) > 1e-12 {
		t.Errorf("Expected X offset to wrap to 0, got %g", shifted.X)
	}
	if shifted.Y < 0 || shifted.Y >= 1 {
		t.Errorf("Offset Y out of [0,1): %g", shifted.Y)
	}
}

func TestPoint3DRange(t *testing.T) {
	primes := [3]uint64{5, 7, 11}
	offset := core.NewVec3(0.1, 0.9, 0.5)
	for index := uint64(1); index <= 2000; index++ {
		p := Point3D(primes, offset, index)
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if v < 0 || v >= 1 {
				t.Fatalf("Point3D index %d out of [0,1): %v", index, p)
			}
		}
	}
}

// Consecutive points of a Halton stream must not repeat, unlike a modulo
// pattern would.
func TestPoint2DDistinct(t *testing.T) {
	primes := [2]uint64{2, 3}
	seen := make(map[core.Vec2]bool)
	for index := uint64(1); index <= 64; index++ {
		p := Point2D(primes, core.Vec2{}, index)
		if seen[p] {
			t.Fatalf("Point repeated at index %d: %v", index, p)
		}
		seen[p] = true
	}
}
