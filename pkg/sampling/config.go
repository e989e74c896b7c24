package sampling

// Mode identifies the render context that owns the sampler
type Mode int

const (
	// ModeFinalRender is a batch render to a final image
	ModeFinalRender Mode = iota
	// ModeViewport is interactive/progressive viewport drawing
	ModeViewport
	// ModeBake is light-probe baking
	ModeBake
)

// Config contains the configuration snapshot a sampler is initialized from.
// It is copied by value; the sampler never reaches back into host-owned state.
type Config struct {
	Mode Mode

	RenderSamples   int // Target sample count for batch renders
	ViewportSamples int // Target sample count for viewport refinement (0 = continuous)
	LayerSamples    int // Per-layer override, used when non-zero

	MotionBlur      bool // Whether motion blur is enabled (batch renders only)
	MotionBlurSteps int  // Number of motion-blur time steps

	DOFJitter bool // Whether depth-of-field aperture jittering is enabled

	// TemporalReprojection enables reprojection-based progressive refinement
	// in the viewport. When disabled the viewport behaves like a batch render.
	TemporalReprojection bool
	// ViewportImageRender is set when rendering a viewport into an image,
	// which disables interactive-mode shortcuts.
	ViewportImageRender bool

	PixelSize     int // Viewport preview pixel subsampling factor
	ScalingFactor int // Film upscaling factor; the sequence repeats per upscaled pixel

	// Per-channel clamp thresholds. Non-positive values disable the clamp.
	ClampSunThreshold    float64
	ClampSurfaceDirect   float64
	ClampSurfaceIndirect float64
	ClampVolumeDirect    float64
	ClampVolumeIndirect  float64
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Mode:                 ModeFinalRender,
		RenderSamples:        64,
		ViewportSamples:      16,
		MotionBlurSteps:      1,
		TemporalReprojection: true,
		PixelSize:            1,
		ScalingFactor:        1,
	}
}

// isViewport reports whether the sampler drives viewport drawing,
// including viewport-to-image renders.
func (c Config) isViewport() bool {
	return c.Mode == ModeViewport
}

// isImageRender reports whether the output is a final image, either a batch
// render or a viewport render captured to an image.
func (c Config) isImageRender() bool {
	return c.Mode == ModeFinalRender || (c.Mode == ModeViewport && c.ViewportImageRender)
}

// ClampData holds the per-channel firefly clamp thresholds read by render
// passes. Disabled channels carry a threshold large enough to never trigger.
type ClampData struct {
	SunThreshold    float64
	SurfaceDirect   float64
	SurfaceIndirect float64
	VolumeDirect    float64
	VolumeIndirect  float64
}

// Threshold of "effectively infinite" substituted for disabled clamps.
const clampDisabled = 1e20

func clampValueLoad(value float64) float64 {
	if value > 0 {
		return value
	}
	return clampDisabled
}

func loadClampData(c Config) ClampData {
	return ClampData{
		SunThreshold:    clampValueLoad(c.ClampSunThreshold),
		SurfaceDirect:   clampValueLoad(c.ClampSurfaceDirect),
		SurfaceIndirect: clampValueLoad(c.ClampSurfaceIndirect),
		VolumeDirect:    clampValueLoad(c.ClampVolumeDirect),
		VolumeIndirect:  clampValueLoad(c.ClampVolumeIndirect),
	}
}
