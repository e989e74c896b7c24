// Package sampling implements the random number streams and sample count
// logic of the progressive renderer. One Sampler owns the per-sample
// dimension vector and the convergence counters for a single render context.
package sampling

import (
	"fmt"
	"math"

	"github.com/df07/go-render-sampling/pkg/core"
	"github.com/df07/go-render-sampling/pkg/halton"
)

const (
	// Sentinel target for continuous viewport refinement. Keeps the pattern
	// math finite while behaving as an unbounded sample count.
	infiniteSampleCount uint64 = 0xFFFFFF

	// Sample count per ring increment of the depth-of-field web pattern.
	dofWebDensity uint64 = 6
	// Ring cap during continuous viewport rendering, so jittered depth of
	// field still converges.
	dofViewportRingCap uint64 = 6

	// Interactive refinement loops over the first samples of a stream so the
	// viewport stabilizes quickly while navigating.
	interactiveSampleAA       uint64 = 8
	interactiveSampleRaytrace uint64 = 32
	interactiveSampleVolume   uint64 = 32
	interactiveSampleMax      uint64 = 64

	// Viewport sample count below which the sampler runs in interactive mode.
	interactiveModeThreshold uint64 = 192

	// Leaps decorrelate streams that share primes with another stream.
	shadowLeap   uint64 = 5
	raytraceLeap uint64 = 13
)

// Prime bases per stream. Filter uses 2,3 as per the UE4 temporal AA talk.
// The raytrace stream reuses the lens primes through a leaped index; the
// volume and shadow-offset streams reuse the filter primes in 3D.
var (
	filterPrimes   = [2]uint64{2, 3}
	lensPrimes     = [3]uint64{5, 7, 3}
	raytracePrimes = [3]uint64{5, 7, 11}
	offsetPrimes   = [3]uint64{2, 3, 5}
)

// InitSource selects which initialization input a Sampler consumes.
type InitSource interface {
	isInitSource()
}

// SceneSource initializes from the sampler's render configuration.
type SceneSource struct{}

// ProbeSource initializes for baking a single light probe.
type ProbeSource struct {
	BakeSamples int
}

func (SceneSource) isInitSource() {}
func (ProbeSource) isInitSource() {}

// Sampler owns the sample counters and regenerates the dimension vector once
// per rendered sample. It is single-threaded: Init and EndSync must precede
// Step within a configuration epoch, and passes read the freshly generated
// vector before the next Step.
type Sampler struct {
	config Config
	logger core.Logger

	sampleCount     uint64 // Target sample count for this epoch
	sample          uint64 // Absolute sample index, monotonic except across reset
	viewportSample  uint64 // Sample index relative to the last viewport reset
	motionBlurSteps uint64

	dofRingCount   uint64
	dofSampleCount uint64 // Samples needed to complete the web pattern once

	interactiveMode bool
	resetPending    bool

	clamp ClampData
	data  DimensionData

	// upload, when set, receives the raw dimension block after each Step.
	upload func(data []byte)
}

// NewSampler creates a sampler for the given render configuration.
// The logger may be nil to silence init diagnostics.
func NewSampler(config Config, logger core.Logger) *Sampler {
	return &Sampler{
		config:         config,
		logger:         logger,
		dofSampleCount: 1,
	}
}

// SetUploadFunc registers the host callback that pushes the dimension block
// to pass-visible storage. Called at the end of every Step.
func (s *Sampler) SetUploadFunc(fn func(data []byte)) {
	s.upload = fn
}

// Init derives the sample counts for a new configuration epoch.
func (s *Sampler) Init(src InitSource) {
	switch src := src.(type) {
	case SceneSource:
		s.initScene()
	case ProbeSource:
		s.initProbe(src)
	default:
		panic(fmt.Sprintf("sampling: unknown init source %T", src))
	}
}

func (s *Sampler) initScene() {
	cfg := s.config

	// A non-zero per-layer sample count overrides the batch target.
	renderSamples := cfg.RenderSamples
	if cfg.LayerSamples > 0 {
		renderSamples = cfg.LayerSamples
	}

	target := renderSamples
	if cfg.isViewport() {
		target = cfg.ViewportSamples
	}
	s.sampleCount = uint64(max(0, target))

	if cfg.isImageRender() {
		s.sampleCount = max(1, s.sampleCount)
	}

	if s.sampleCount == 0 {
		// Zero means continuous refinement, which only the viewport supports.
		if !cfg.isViewport() {
			panic("sampling: zero sample count outside viewport")
		}
		s.sampleCount = infiniteSampleCount
	}

	if cfg.isViewport() && cfg.PixelSize > 1 {
		// Render every physical pixel at least once during preview
		// downsampling.
		s.sampleCount = max(s.sampleCount, uint64(core.Square(cfg.PixelSize)))
	}

	s.motionBlurSteps = 1
	if !cfg.isViewport() && cfg.MotionBlur {
		s.motionBlurSteps = uint64(max(1, cfg.MotionBlurSteps))
	}
	s.sampleCount = core.DivideCeil(s.sampleCount, s.motionBlurSteps)

	if cfg.DOFJitter {
		if s.sampleCount == infiniteSampleCount {
			// Continuous viewport rendering: clamp the ring count so the
			// jittered depth of field converges.
			s.dofRingCount = dofViewportRingCap
		} else {
			s.dofRingCount = WebRingCount(dofWebDensity, s.sampleCount)
		}
		s.dofSampleCount = WebSampleCount(dofWebDensity, s.dofRingCount)
		// Raise the total so the web pattern completes exactly.
		s.sampleCount = core.NextMultipleOf(s.sampleCount, s.dofSampleCount)
	} else {
		s.dofRingCount = 0
		s.dofSampleCount = 1
	}

	// Multiply only after the web rounding so each time step covers the full
	// web pattern.
	s.sampleCount *= s.motionBlurSteps

	s.clamp = loadClampData(cfg)

	if s.logger != nil {
		s.logger.Printf("Sampling: %d samples, %d motion blur steps, %d DOF rings\n",
			s.sampleCount, s.motionBlurSteps, s.dofRingCount)
	}
}

func (s *Sampler) initProbe(src ProbeSource) {
	if s.config.Mode != ModeBake {
		panic("sampling: probe init outside bake context")
	}
	s.sampleCount = uint64(max(1, src.BakeSamples))
	s.sample = 0
}

// EndSync applies a pending reset and settles the interactive-mode state for
// the coming frame. Called once per frame sync, after configuration is final.
func (s *Sampler) EndSync() {
	if s.resetPending {
		s.viewportSample = 0
	}

	if !s.config.isViewport() {
		return
	}

	s.interactiveMode = s.viewportSample < interactiveModeThreshold

	interactiveModeDisabled := !s.config.TemporalReprojection || s.config.ViewportImageRender
	if interactiveModeDisabled {
		s.interactiveMode = false
		s.sample = s.viewportSample
	} else if s.interactiveMode {
		if s.viewportSample < interactiveSampleMax {
			// Loop over the same starting samples.
			s.sample = s.sample % interactiveSampleMax
		} else {
			// Break out of the loop and resume the normal pattern.
			s.sample = interactiveSampleMax
		}
	}
}

// Step regenerates every dimension slot for the current sample index, pushes
// the block to the upload hook, and advances the counters. This is the only
// operation that mutates the counters.
func (s *Sampler) Step() {
	{
		// Repeat the sequence for all pixels that are being up-scaled.
		scaling := uint64(max(1, s.config.ScalingFactor))
		sampleFilter := s.sample / core.Square(scaling)
		if s.interactiveMode {
			sampleFilter = sampleFilter % interactiveSampleAA
		}
		r := halton.Point2D(filterPrimes, core.Vec2{}, sampleFilter+1)
		// Shift the distribution so the first sample lands on (0,0). At least
		// one sample of the AA rotation then matches the zero-index draw used
		// for overlay compositing in static scenes.
		s.setFract(DimFilterU, r.X+1.0/2.0)
		s.setFract(DimFilterV, r.Y+2.0/3.0)
		// TODO de-correlate.
		s.set(DimTime, r.X)
		s.set(DimClosure, r.Y)
		s.set(DimRaytraceX, r.X)
	}
	{
		r := halton.Point3D(lensPrimes, core.Vec3{}, s.sample+1)
		s.set(DimLensU, r.X)
		s.set(DimLensV, r.Y)
		// TODO de-correlate.
		s.set(DimLightprobe, r.X)
		s.set(DimTransparency, r.Y)
		// TODO de-correlate.
		s.set(DimAOU, r.X)
		s.set(DimAOV, r.Y)
		s.set(DimAOW, r.Z)
		// TODO de-correlate.
		s.set(DimCurvesU, r.X)
	}
	{
		sampleRaytrace := s.sample
		if s.interactiveMode {
			sampleRaytrace = sampleRaytrace % interactiveSampleRaytrace
		}
		// Leaped sequence so the lens primes can be reused.
		r := halton.Point3D(raytracePrimes, core.Vec3{}, sampleRaytrace*raytraceLeap+1)
		s.set(DimShadowU, r.X)
		s.set(DimShadowV, r.Y)
		s.set(DimShadowW, r.Z)
		// TODO de-correlate.
		s.set(DimRaytraceU, r.X)
		s.set(DimRaytraceV, r.Y)
		s.set(DimRaytraceW, r.Z)
	}
	{
		r := halton.Point3D(offsetPrimes, core.Vec3{}, s.sample+1)
		// Shift the distribution so the first sample lands on (0,0,0).
		s.setFract(DimShadowI, r.X+1.0/2.0)
		s.setFract(DimShadowJ, r.Y+2.0/3.0)
		s.setFract(DimShadowK, r.Z+4.0/5.0)
	}
	{
		sampleVolume := s.sample
		if s.interactiveMode {
			sampleVolume = sampleVolume % interactiveSampleVolume
		}
		r := halton.Point3D(offsetPrimes, core.Vec3{}, sampleVolume+1)
		// Shift the distribution so the first sample lands on (0,0,0).
		s.setFract(DimVolumeU, r.X+1.0/2.0)
		s.setFract(DimVolumeV, r.Y+2.0/3.0)
		s.setFract(DimVolumeW, r.Z+4.0/5.0)
	}
	{
		// Leaped sequence so the filter primes can be reused.
		r := halton.Point2D(filterPrimes, core.Vec2{}, s.sample*shadowLeap+1)
		s.set(DimShadowX, r.X)
		s.set(DimShadowY, r.Y)
		// TODO de-correlate.
		s.set(DimSSSU, r.X)
		s.set(DimSSSV, r.Y)
	}
	{
		// Don't leave the unused slots undefined.
		s.data.Dimensions[dimUnused0] = 0
		s.data.Dimensions[dimUnused1] = 0
		s.data.Dimensions[dimUnused2] = 0
	}

	for i := 0; i < DimensionCount; i++ {
		// These numbers are often fed to sqrt. Make sure they stay in range.
		v := s.data.Dimensions[i]
		if v < 0 || v >= 1 {
			panic(fmt.Sprintf("sampling: dimension %d out of [0,1): %g", i, v))
		}
	}

	if s.upload != nil {
		s.upload(s.data.AsBytes())
	}

	s.viewportSample++
	s.sample++

	s.resetPending = false
}

// set stores a draw into a dimension slot, keeping it below one after the
// float32 narrowing.
func (s *Sampler) set(dim Dimension, v float64) {
	f := float32(v)
	if f >= 1 {
		f = 0x1.fffffep-1
	}
	s.data.Dimensions[dim] = f
}

// setFract stores the fractional part of a shifted draw. The wrap happens
// after the float32 narrowing so a shift that sums to one lands exactly on
// zero instead of just below it.
func (s *Sampler) setFract(dim Dimension, v float64) {
	f := float32(v)
	f -= float32(math.Floor(float64(f)))
	s.data.Dimensions[dim] = f
}

// Reset schedules the viewport-relative counter to restart at the next
// EndSync. Cooperative, not immediate.
func (s *Sampler) Reset() {
	if !s.config.isViewport() {
		panic("sampling: reset outside viewport")
	}
	s.resetPending = true
}

// IsReset reports whether a reset is pending.
func (s *Sampler) IsReset() bool {
	if !s.config.isViewport() {
		panic("sampling: reset query outside viewport")
	}
	return s.resetPending
}

// SampleCount returns the target sample count for this epoch.
func (s *Sampler) SampleCount() uint64 {
	return s.sampleCount
}

// SampleIndex returns the absolute index of the next sample to step.
func (s *Sampler) SampleIndex() uint64 {
	return s.sample
}

// ViewportSampleIndex returns the sample index relative to the last reset.
func (s *Sampler) ViewportSampleIndex() uint64 {
	return s.viewportSample
}

// IsFinished reports whether the target sample count has been reached.
func (s *Sampler) IsFinished() bool {
	return s.sample >= s.sampleCount
}

// IsInteractive reports whether the sampler runs the reduced-quality,
// fast-converging viewport regime.
func (s *Sampler) IsInteractive() bool {
	return s.interactiveMode
}

// Clamp returns the loaded per-channel clamp thresholds.
func (s *Sampler) Clamp() ClampData {
	return s.clamp
}

// Dimensions returns the current dimension block.
func (s *Sampler) Dimensions() *DimensionData {
	return &s.data
}

// DOFRingCount returns the ring count of the aperture web pattern,
// zero when jittering is disabled.
func (s *Sampler) DOFRingCount() uint64 {
	return s.dofRingCount
}

// DOFSampleCount returns the sample count that completes the web pattern.
func (s *Sampler) DOFSampleCount() uint64 {
	return s.dofSampleCount
}

// Rand1 returns the named dimension of the current sample.
func (s *Sampler) Rand1(dim Dimension) float64 {
	return float64(s.data.Dimensions[dim])
}

// Rand2 returns the named dimension and its successor as a 2D vector.
func (s *Sampler) Rand2(dim Dimension) core.Vec2 {
	return core.NewVec2(s.Rand1(dim), s.Rand1(dim+1))
}

// Rand3 returns the named dimension and its two successors as a 3D vector.
func (s *Sampler) Rand3(dim Dimension) core.Vec3 {
	return core.NewVec3(s.Rand1(dim), s.Rand1(dim+1), s.Rand1(dim+2))
}
