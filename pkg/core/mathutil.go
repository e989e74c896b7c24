package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DivideCeil returns x divided by y, rounded up
func DivideCeil[T constraints.Integer](x, y T) T {
	return (x + y - 1) / y
}

// NextMultipleOf rounds x up to the next multiple of y
func NextMultipleOf[T constraints.Integer](x, y T) T {
	return DivideCeil(x, y) * y
}

// Square returns x squared
func Square[T constraints.Integer | constraints.Float](x T) T {
	return x * x
}

// Clamp limits x to the range [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

// SafeSqrt returns the square root of x, treating negative inputs as zero
func SafeSqrt(x float64) float64 {
	return math.Sqrt(math.Max(0, x))
}

// Fract returns the fractional part of x in [0, 1)
func Fract(x float64) float64 {
	return x - math.Floor(x)
}
