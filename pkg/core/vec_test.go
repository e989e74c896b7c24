package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "Unit vector unchanged",
			vector:   NewVec3(1, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Diagonal vector",
			vector:   NewVec3(3, 4, 0),
			expected: NewVec3(0.6, 0.8, 0),
		},
		{
			name:     "Zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	expected := NewVec3(0, 0, 1)

	result := a.Cross(b)
	if result.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec2_Length(t *testing.T) {
	v := NewVec2(3, 4)
	if math.Abs(v.Length()-5) > 1e-9 {
		t.Errorf("Expected length 5, got %f", v.Length())
	}
}

func TestVec2_Add(t *testing.T) {
	result := NewVec2(0.25, 0.5).Add(NewVec2(0.5, 0.25))
	expected := NewVec2(0.75, 0.75)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}
