// Package halton generates points of the Halton low-discrepancy sequence,
// built per axis by digit reversal in a prime base.
package halton

import (
	"github.com/df07/go-render-sampling/pkg/core"
)

// RadicalInverse reflects the base-b digits of index around the radix point,
// producing a value in [0, 1). Index 0 maps to 0.
func RadicalInverse(index, base uint64) float64 {
	invBase := 1.0 / float64(base)
	invBaseN := 1.0
	reversed := uint64(0)
	for index > 0 {
		next := index / base
		digit := index - next*base
		reversed = reversed*base + digit
		invBaseN *= invBase
		index = next
	}
	return float64(reversed) * invBaseN
}

// Point2D returns the index-th point of the 2D Halton sequence for the given
// coprime bases. The additive offset shifts each axis, wrapping into [0, 1).
// Callers use 1-based indices so that no stream starts on the origin unless
// shifted there on purpose.
func Point2D(primes [2]uint64, offset core.Vec2, index uint64) core.Vec2 {
	return core.NewVec2(
		core.Fract(RadicalInverse(index, primes[0])+offset.X),
		core.Fract(RadicalInverse(index, primes[1])+offset.Y),
	)
}

// Point3D returns the index-th point of the 3D Halton sequence for the given
// coprime bases, with per-axis additive offsets wrapped into [0, 1).
func Point3D(primes [3]uint64, offset core.Vec3, index uint64) core.Vec3 {
	return core.NewVec3(
		core.Fract(RadicalInverse(index, primes[0])+offset.X),
		core.Fract(RadicalInverse(index, primes[1])+offset.Y),
		core.Fract(RadicalInverse(index, primes[2])+offset.Z),
	)
}
