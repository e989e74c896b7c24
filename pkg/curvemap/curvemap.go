// Package curvemap evaluates user-editable response curves. Control points
// are joined by cubic Bezier segments and resolved into a fixed-size lookup
// table, so render-time evaluation is a single interpolated read.
package curvemap

import (
	"fmt"
	"math"
	"sort"

	"honnef.co/go/curve"
)

const tableSize = 256

// Bisection depth when solving a segment for a given x. The segment x(t) is
// monotonic, so this converges to well below the table resolution.
const solveIterations = 24

// Point is a response-curve control point
type Point struct {
	X, Y float64
}

// Mapping is a resolved response curve over the domain of its control points
type Mapping struct {
	minX, maxX float64
	table      [tableSize]float64
}

// New builds a mapping from at least two control points. Points are sorted
// by X; duplicate X positions are a programming error.
func New(points []Point) *Mapping {
	if len(points) < 2 {
		panic("curvemap: need at least two control points")
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	for i := 1; i < len(pts); i++ {
		if pts[i].X == pts[i-1].X {
			panic(fmt.Sprintf("curvemap: duplicate control point at x=%g", pts[i].X))
		}
	}

	m := &Mapping{
		minX: pts[0].X,
		maxX: pts[len(pts)-1].X,
	}

	segments := buildSegments(pts)
	seg := 0
	for j := 0; j < tableSize; j++ {
		x := m.minX + (m.maxX-m.minX)*float64(j)/float64(tableSize-1)
		for seg < len(segments)-1 && x > segments[seg].P3.X {
			seg++
		}
		m.table[j] = solveY(segments[seg], x)
	}
	return m
}

// Linear returns the identity ramp over [0,1]
func Linear() *Mapping {
	return New([]Point{{0, 0}, {1, 1}})
}

// buildSegments joins consecutive control points with cubic segments whose
// handles follow finite-difference tangents at a third of the span.
// Interior tangents are clamped to three times the flatter neighboring
// secant, so monotone control points produce a monotone curve.
func buildSegments(pts []Point) []curve.CubicBez {
	n := len(pts)
	slopes := make([]float64, n)
	for i := range pts {
		switch i {
		case 0:
			slopes[i] = slope(pts[0], pts[1])
		case n - 1:
			slopes[i] = slope(pts[n-2], pts[n-1])
		default:
			left := slope(pts[i-1], pts[i])
			right := slope(pts[i], pts[i+1])
			if left*right <= 0 {
				slopes[i] = 0
			} else {
				avg := (left + right) / 2
				limit := 3 * math.Min(math.Abs(left), math.Abs(right))
				slopes[i] = math.Copysign(math.Min(math.Abs(avg), limit), avg)
			}
		}
	}

	segments := make([]curve.CubicBez, n-1)
	for i := 0; i < n-1; i++ {
		p0, p3 := pts[i], pts[i+1]
		dx := (p3.X - p0.X) / 3
		segments[i] = curve.CubicBez{
			P0: curve.Point{X: p0.X, Y: p0.Y},
			P1: curve.Point{X: p0.X + dx, Y: p0.Y + slopes[i]*dx},
			P2: curve.Point{X: p3.X - dx, Y: p3.Y - slopes[i+1]*dx},
			P3: curve.Point{X: p3.X, Y: p3.Y},
		}
	}
	return segments
}

func slope(a, b Point) float64 {
	return (b.Y - a.Y) / (b.X - a.X)
}

// solveY finds the segment parameter whose x matches the query and returns
// the y there. The handle construction keeps x(t) monotonic over the span.
func solveY(seg curve.CubicBez, x float64) float64 {
	if x <= seg.P0.X {
		return seg.P0.Y
	}
	if x >= seg.P3.X {
		return seg.P3.Y
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < solveIterations; i++ {
		mid := (lo + hi) / 2
		if seg.Eval(mid).X < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return seg.Eval((lo + hi) / 2).Y
}

// Evaluate returns the curve value at x, clamped to the control-point
// domain. Implements sampling.CurveEvaluator.
func (m *Mapping) Evaluate(x float64) float64 {
	if x <= m.minX {
		return m.table[0]
	}
	if x >= m.maxX {
		return m.table[tableSize-1]
	}
	pos := (x - m.minX) / (m.maxX - m.minX) * float64(tableSize-1)
	i := int(pos)
	t := pos - float64(i)
	return m.table[i]*(1-t) + m.table[i+1]*t
}
