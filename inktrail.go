/*
Package inktrail implements points, affine transformations and numeric
helpers for smooth ink trails drawn from sampled pointer positions.

The interesting parts live in the sub-packages: package hermite interpolates
point sequences by cubic Bézier segments, package polygon deals with hulls
and damage regions, and package trail holds the caller-side buffer which
feeds the interpolator and retires segments over time.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package inktrail

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
	"honnef.co/go/curve"
)

// tracer writes to trace with key 'inktrail'
func tracer() tracing.Trace {
	return tracing.Select("inktrail")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Point Data Type =======================================================

// Point is a 2D coordinate in view-local space. Points are values and are
// compared by coordinates only.
//
// Points are stored as complex numbers, so the usual arithmetic operators
// work for vector sums and differences:
//
//	m := (next - prev) / 2
type Point complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a point from floats.
func P(x, y float64) Point {
	return Point(complex(x, y))
}

// Pretty Stringer for points.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Point as a complex number.
func (p Point) C() complex128 {
	return complex128(p)
}

// C2P returns a Point from a complex number.
func C2P(c complex128) Point {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created point for complex.NaN")
		return Origin
	}
	return Point(c)
}

// F is a quick notation for getting float values from a point.
func (p Point) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a point.
func (p Point) X() float64 {
	return real(p)
}

// Y is the y-part of a point.
func (p Point) Y() float64 {
	return imag(p)
}

// IsFinite is a predicate: are both coordinates finite numbers?
func (p Point) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Point) Zap() Point {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this point origin?
func (p Point) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two points, tolerating differences below Epsilon.
func (p Point) Equal(q Point) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y())
}

// Scaled returns a new point scaled by factor a. Unlike the other
// transformations Scaled does not round to Epsilon, as it is used for
// control point offsets where bit-exact results matter.
func (p Point) Scaled(a float64) Point {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new point translated by v.
func (p Point) Shifted(v Point) Point {
	T := Translation(v)
	return T.Transform(p).Zap()
}

// Rotated returns a new point rotated around origin by theta (counterclockwise).
func (p Point) Rotated(theta float64) Point {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// Distance returns the euclidian distance between p and q.
func (p Point) Distance(q Point) float64 {
	return cmplx.Abs((q - p).C())
}

// Pt converts p to a point of package curve.
func (p Point) Pt() curve.Point {
	return curve.Pt(p.X(), p.Y())
}

// FromPt converts a point of package curve to a Point.
func FromPt(pt curve.Point) Point {
	return P(pt.X, pt.Y)
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming points,
// e.g. from window coordinates to view-local space.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	return make([]float64, 9)
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	return []float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Point) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scale a point by sx horizontally and sy vertically,
// e.g. for converting points to device pixels.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one. Returns a new transformation
// without changing the argument(s). The result applies m first, then n.
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new point is returned.
func (m AT) Transform(p Point) Point {
	v := []float64{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), v), dotProd(m.row(1), v))
}

// TransformAll transforms a sequence of points into a newly allocated slice.
func (m AT) TransformAll(points []Point) []Point {
	r := make([]Point, len(points))
	for i, p := range points {
		r[i] = m.Transform(p)
	}
	return r
}
