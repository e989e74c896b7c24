package sampling

import (
	"math"
	"testing"

	"github.com/df07/go-render-sampling/pkg/core"
)

func TestSampleDisk(t *testing.T) {
	tests := []struct {
		name     string
		rand     core.Vec2
		expected core.Vec2
	}{
		{"Full radius at angle 0", core.NewVec2(1, 0), core.NewVec2(1, 0)},
		{"Center", core.NewVec2(0, 0.5), core.NewVec2(0, 0)},
		{"Quarter turn", core.NewVec2(1, 0.25), core.NewVec2(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleDisk(tt.rand)
			if math.Abs(result.X-tt.expected.X) > 1e-9 || math.Abs(result.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("SampleDisk(%v): got %v, expected %v", tt.rand, result, tt.expected)
			}
		})
	}
}

func TestSampleSphere(t *testing.T) {
	// rand.X = 0 maps to the negative pole.
	result := SampleSphere(core.NewVec2(0, 0.7))
	expected := core.NewVec3(0, 0, -1)
	if result.Subtract(expected).Length() > 1e-9 {
		t.Errorf("SampleSphere pole: got %v, expected %v", result, expected)
	}

	// All outputs lie on the unit sphere.
	for i := 0; i < 100; i++ {
		rand := core.NewVec2(float64(i)/100, math.Mod(float64(i)*0.37, 1))
		p := SampleSphere(rand)
		if math.Abs(p.Length()-1) > 1e-9 {
			t.Fatalf("SampleSphere(%v) not on unit sphere: length %g", rand, p.Length())
		}
	}
}

func TestSampleHemisphere(t *testing.T) {
	// rand.X = 1 maps to the positive pole.
	result := SampleHemisphere(core.NewVec2(1, 0.3))
	expected := core.NewVec3(0, 0, 1)
	if result.Subtract(expected).Length() > 1e-9 {
		t.Errorf("SampleHemisphere pole: got %v, expected %v", result, expected)
	}

	// All outputs lie on the upper hemisphere.
	for i := 0; i < 100; i++ {
		rand := core.NewVec2(float64(i)/100, math.Mod(float64(i)*0.61, 1))
		p := SampleHemisphere(rand)
		if math.Abs(p.Length()-1) > 1e-9 {
			t.Fatalf("SampleHemisphere(%v) not on unit sphere: length %g", rand, p.Length())
		}
		if p.Z < 0 {
			t.Fatalf("SampleHemisphere(%v) below the equator: %v", rand, p)
		}
	}
}

func TestSampleBall(t *testing.T) {
	for i := 0; i < 200; i++ {
		rand := core.NewVec3(
			math.Mod(float64(i)*0.31, 1),
			math.Mod(float64(i)*0.57, 1),
			math.Mod(float64(i)*0.73, 1),
		)
		p := SampleBall(rand)
		if p.Length() > 1+1e-9 {
			t.Fatalf("SampleBall(%v) outside unit ball: length %g", rand, p.Length())
		}
	}

	// The fourth-root radius concentrates samples away from the center:
	// rand.Z = 1 lands on the surface.
	p := SampleBall(core.NewVec3(0.5, 0, 1))
	if math.Abs(p.Length()-1) > 1e-9 {
		t.Errorf("Expected surface sample, got length %g", p.Length())
	}
}

func TestSampleSpiral(t *testing.T) {
	for i := 0; i < 200; i++ {
		rand := core.NewVec2(math.Mod(float64(i)*0.41, 1), math.Mod(float64(i)*0.67, 1))
		p := SampleSpiral(rand)
		if p.Length() > 1+1e-9 {
			t.Fatalf("SampleSpiral(%v) outside unit disk: length %g", rand, p.Length())
		}
	}

	// Radius follows sqrt of the first coordinate regardless of rotation.
	p := SampleSpiral(core.NewVec2(0.25, 0.9))
	if math.Abs(p.Length()-0.5) > 1e-9 {
		t.Errorf("Expected radius 0.5, got %g", p.Length())
	}
}

func TestSampleCosineHemisphere(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	for i := 0; i < 100; i++ {
		rand := core.NewVec2(math.Mod(float64(i)*0.43, 1), math.Mod(float64(i)*0.71, 1))
		d := SampleCosineHemisphere(normal, rand)
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Direction not normalized: length %g", d.Length())
		}
		if d.Dot(normal) < -1e-9 {
			t.Fatalf("Direction below the surface: %v", d)
		}
	}
}

func TestWebSampleCount(t *testing.T) {
	tests := []struct {
		name      string
		density   uint64
		ringCount uint64
		expected  uint64
	}{
		{"No rings is just the center", 6, 0, 1},
		{"One ring", 6, 1, 7},
		{"Two rings", 6, 2, 19},
		{"Six rings", 6, 6, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WebSampleCount(tt.density, tt.ringCount); got != tt.expected {
				t.Errorf("WebSampleCount(%d, %d): got %d, expected %d",
					tt.density, tt.ringCount, got, tt.expected)
			}
		})
	}
}

func TestWebRingCountInvertsSampleCount(t *testing.T) {
	// The ring count formula is the inversion of the sample count formula.
	for rings := uint64(1); rings <= 12; rings++ {
		count := WebSampleCount(dofWebDensity, rings)
		if got := WebRingCount(dofWebDensity, count); got != rings {
			t.Errorf("WebRingCount(%d, %d): got %d, expected %d",
				dofWebDensity, count, got, rings)
		}
	}

	if got := WebRingCount(6, 10); got != 2 {
		t.Errorf("WebRingCount(6, 10): got %d, expected 2", got)
	}
}

func TestDOFDiskSampleDisabled(t *testing.T) {
	config := DefaultConfig()
	config.Mode = ModeFinalRender
	config.RenderSamples = 16

	sampler := NewSampler(config, nil)
	sampler.Init(SceneSource{})
	sampler.EndSync()
	sampler.Step()

	radius, theta := sampler.DOFDiskSample()
	if radius != 0 || theta != 0 {
		t.Errorf("Expected (0,0) with jitter disabled, got (%g, %g)", radius, theta)
	}
}

func TestDOFDiskSampleRange(t *testing.T) {
	config := DefaultConfig()
	config.Mode = ModeFinalRender
	config.RenderSamples = 40
	config.DOFJitter = true

	sampler := NewSampler(config, nil)
	sampler.Init(SceneSource{})
	sampler.EndSync()

	seen := make(map[[2]float64]int)
	for !sampler.IsFinished() {
		sampler.Step()
		radius, theta := sampler.DOFDiskSample()
		if radius < 0 || radius > 1 {
			t.Fatalf("Radius out of [0,1]: %g", radius)
		}
		if theta < 0 || theta >= 2*math.Pi {
			t.Fatalf("Theta out of [0,2pi): %g", theta)
		}
		seen[[2]float64{radius, theta}]++
	}

	// One full epoch enumerates every web sample exactly once.
	if len(seen) != int(sampler.DOFSampleCount()) {
		t.Errorf("Expected %d distinct aperture samples, got %d",
			sampler.DOFSampleCount(), len(seen))
	}
}
