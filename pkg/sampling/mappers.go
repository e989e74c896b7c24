package sampling

import (
	"math"

	"github.com/df07/go-render-sampling/pkg/core"
)

// SampleDisk maps a uniform 2D vector to a point on the unit disk
func SampleDisk(rand core.Vec2) core.Vec2 {
	omega := rand.Y * 2.0 * math.Pi
	r := math.Sqrt(rand.X)
	return core.NewVec2(r*math.Cos(omega), r*math.Sin(omega))
}

// SampleSphere maps a uniform 2D vector to a point on the unit sphere
func SampleSphere(rand core.Vec2) core.Vec3 {
	omega := rand.Y * 2.0 * math.Pi
	cosTheta := rand.X*2.0 - 1.0
	sinTheta := core.SafeSqrt(1.0 - cosTheta*cosTheta)
	return core.NewVec3(sinTheta*math.Cos(omega), sinTheta*math.Sin(omega), cosTheta)
}

// SampleHemisphere maps a uniform 2D vector to a point on the unit hemisphere
// around the positive Z pole
func SampleHemisphere(rand core.Vec2) core.Vec3 {
	omega := rand.Y * 2.0 * math.Pi
	cosTheta := rand.X
	sinTheta := core.SafeSqrt(1.0 - cosTheta*cosTheta)
	return core.NewVec3(sinTheta*math.Cos(omega), sinTheta*math.Sin(omega), cosTheta)
}

// SampleBall maps a uniform 3D vector to a point inside the unit sphere with
// uniform volumetric density
func SampleBall(rand core.Vec3) core.Vec3 {
	cosTheta := rand.X*2.0 - 1.0
	sinTheta := core.SafeSqrt(1.0 - cosTheta*cosTheta)
	omega := rand.Y * 2.0 * math.Pi

	sample := core.NewVec3(sinTheta*math.Cos(omega), sinTheta*math.Sin(omega), cosTheta)
	return sample.Multiply(math.Sqrt(math.Sqrt(rand.Z)))
}

// SampleSpiral maps a uniform 2D vector to a point on a Fibonacci spiral
// covering the unit disk, with a random rotation
func SampleSpiral(rand core.Vec2) core.Vec2 {
	// Fibonacci spiral.
	omega := 4.0 * math.Pi * (1.0 + math.Sqrt(5.0)) * rand.X
	r := math.Sqrt(rand.X)
	// Random rotation.
	omega += rand.Y * 2.0 * math.Pi
	return core.NewVec2(r*math.Cos(omega), r*math.Sin(omega))
}

// SampleCosineHemisphere generates a cosine-weighted direction in the
// hemisphere around normal
func SampleCosineHemisphere(normal core.Vec3, rand core.Vec2) core.Vec3 {
	a := 2.0 * math.Pi * rand.X
	z := rand.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	// Create local coordinate system around normal
	var nt core.Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = core.NewVec3(0, 1, 0)
	} else {
		nt = core.NewVec3(1, 0, 0)
	}
	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(zCoord))
}

// WebSampleCount returns the total sample count of a web pattern with the
// given ring count: ring k holds k*density samples plus one center sample.
func WebSampleCount(density, ringCount uint64) uint64 {
	return ((ringCount*ringCount+ringCount)/2)*density + 1
}

// WebRingCount returns the smallest ring count whose web pattern holds at
// least sampleCount samples. Inversion of WebSampleCount, solving the
// positive root of the quadratic.
func WebRingCount(density, sampleCount uint64) uint64 {
	x := 2.0 * (float64(sampleCount) - 1.0) / float64(density)
	discriminant := 1.0 + 4.0*x
	ring := math.Ceil(0.5 * (math.Sqrt(discriminant) - 1.0))
	if ring < 0 {
		return 0
	}
	return uint64(ring)
}

// DOFDiskSample returns the aperture sample for the last stepped sample
// index, as a radius in [0,1] and an angle in [0,2pi). Samples enumerate a
// web of concentric rings: deterministic coverage converges faster for the
// aperture than a statistical sequence would.
func (s *Sampler) DOFDiskSample() (radius, theta float64) {
	if s.dofRingCount == 0 {
		return 0, 0
	}

	i := int64(s.sample) - 1
	ring := int64(0)
	ringSampleCount := int64(1)
	ringSample := int64(1)

	i = i * (int64(dofWebDensity) - 1)
	i = i % int64(s.dofSampleCount)

	// A low discrepancy sequence cannot drive this pattern directly because
	// the same sample could be chosen twice within a short interval. An
	// ascending sequence with an offset gives quick initial coverage and a
	// high distance between consecutive samples.
	samplesPassed := int64(1)
	for i >= samplesPassed {
		ring++
		ringSampleCount = ring * int64(dofWebDensity)
		ringSample = i - samplesPassed
		ringSample = (ringSample + 1) % ringSampleCount
		samplesPassed += ringSampleCount
	}

	radius = float64(ring) / float64(s.dofRingCount)
	theta = 2.0 * math.Pi * float64(ringSample%ringSampleCount) / float64(ringSampleCount)
	return radius, theta
}
