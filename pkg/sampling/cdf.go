package sampling

import (
	"github.com/df07/go-render-sampling/pkg/core"
)

// CurveEvaluator evaluates a response curve at a domain coordinate.
// Implemented by curvemap.Mapping; evaluations must be non-negative for the
// resulting CDF to be monotonic.
type CurveEvaluator interface {
	Evaluate(x float64) float64
}

// CDFFromCurve fills cdf with the normalized cumulative distribution of the
// curve, evaluated at len(cdf)-1 equally spaced points in (0,1]. The first
// entry is 0 and the last entry is forced to exactly 1.
func CDFFromCurve(curve CurveEvaluator, cdf []float64) {
	if len(cdf) <= 1 {
		panic("sampling: cdf needs at least two entries")
	}
	cdf[0] = 0
	// Actual CDF evaluation.
	for u := 0; u < len(cdf)-1; u++ {
		x := float64(u+1) / float64(len(cdf)-1)
		cdf[u+1] = cdf[u] + curve.Evaluate(x)
	}
	// Normalize the CDF.
	last := cdf[len(cdf)-1]
	for u := range cdf {
		cdf[u] /= last
	}
	// Guard against residual float drift.
	cdf[len(cdf)-1] = 1
}

// CDFInvert fills inverted with the numeric inverse of a normalized CDF,
// mapping the uniform domain back to the curve domain as a fraction of the
// CDF index range. The table supports O(1) importance sampling by direct
// indexing at render time.
func CDFInvert(cdf, inverted []float64) {
	if cdf[0] != 0 || cdf[len(cdf)-1] != 1 {
		panic("sampling: cdf must start at 0 and end at 1")
	}
	for u := range inverted {
		// Stay off the exact boundaries to avoid an unmatched search.
		x := core.Clamp(float64(u)/float64(len(inverted)-1), 1e-5, 1.0-1e-5)
		for i := 1; i < len(cdf); i++ {
			if cdf[i] >= x {
				t := (x - cdf[i]) / (cdf[i] - cdf[i-1])
				inverted[u] = (float64(i) + t) / float64(len(cdf)-1)
				break
			}
		}
	}
}
