package sampling

import (
	"honnef.co/go/safeish"
)

// Dimension names one scalar slot of the per-sample random vector.
// Consecutive slots form the 2D/3D vectors read by Rand2 and Rand3.
type Dimension int

const (
	DimFilterU Dimension = iota
	DimFilterV
	DimLensU
	DimLensV
	DimTime
	DimShadowU
	DimShadowV
	DimShadowW
	DimShadowX
	DimShadowY
	DimShadowI
	DimShadowJ
	DimShadowK
	DimClosure
	DimLightprobe
	DimTransparency
	DimSSSU
	DimSSSV
	DimRaytraceU
	DimRaytraceV
	DimRaytraceW
	DimRaytraceX
	DimAOU
	DimAOV
	DimAOW
	DimCurvesU
	DimVolumeU
	DimVolumeV
	DimVolumeW
	dimUnused0
	dimUnused1
	dimUnused2

	// DimensionCount is the fixed slot count of the dimension vector
	DimensionCount = iota
)

// DimensionData is the per-sample random vector laid out as the uniform block
// uploaded to render passes. Slots hold float32 because that is what the
// shading side consumes.
type DimensionData struct {
	Dimensions [DimensionCount]float32
}

// AsBytes returns the raw byte view of the block for host buffer upload.
func (d *DimensionData) AsBytes() []byte {
	return safeish.AsBytes(d)
}
