/*
Package polygon implements closed polygons, hulls of trail segments and
regions built from polygon unions.

Renderers use regions to find out which part of a view has to be redrawn
after trail segments have been retired.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"sort"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/inktrail"
	"github.com/npillmayer/inktrail/hermite"
	"github.com/npillmayer/schuko/tracing"
	"honnef.co/go/curve"
)

// L traces with key 'inktrail.polygon'.
func L() tracing.Trace {
	return tracing.Select("inktrail.polygon")
}

// Polygon is a sequence of knots connected by straight lines. To construct
// a polygon, start with NullPolygon() and extend it.
type Polygon struct {
	points []inktrail.Point
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot adds a knot to a polygon. Part of builder functionality.
func (pg *Polygon) Knot(p inktrail.Point) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots of a polygon.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns knot (i mod N).
func (pg *Polygon) Pt(i int) inktrail.Point {
	i %= pg.N()
	if i < 0 {
		i += pg.N()
	}
	return pg.points[i]
}

// Box creates a closed rectangular polygon spanned by two diagonal corners.
func Box(p, q inktrail.Point) *Polygon {
	x0, x1 := math.Min(p.X(), q.X()), math.Max(p.X(), q.X())
	y0, y1 := math.Min(p.Y(), q.Y()), math.Max(p.Y(), q.Y())
	return NullPolygon().Knot(inktrail.P(x0, y0)).Knot(inktrail.P(x1, y0)).
		Knot(inktrail.P(x1, y1)).Knot(inktrail.P(x0, y1)).Cycle()
}

// Area returns the (unsigned) area of a closed polygon.
func (pg *Polygon) Area() float64 {
	if !pg.cycle || pg.N() < 3 {
		return 0
	}
	a := 0.0
	for i := 0; i < pg.N(); i++ {
		p, q := pg.Pt(i), pg.Pt(i+1)
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return math.Abs(a) / 2
}

// BoundingBox returns the smallest rectangle enclosing all knots.
func (pg *Polygon) BoundingBox() curve.Rect {
	if pg.N() == 0 {
		return curve.Rect{}
	}
	box := curve.NewRectFromPoints(pg.points[0].Pt(), pg.points[0].Pt())
	for _, p := range pg.points[1:] {
		box = box.UnionPoint(p.Pt())
	}
	return box
}

// Hull returns the convex hull of the knots and control points of a segment.
// A cubic Bézier segment never leaves this hull. For straight segments the
// hull degenerates to two knots.
func Hull(seg hermite.Segment) *Polygon {
	return ConvexHull(seg.Start, seg.C1, seg.C2, seg.End)
}

// Cover returns a box enclosing the hull of a segment, inflated by pad on
// every side. Pad usually is half the stroke width.
func Cover(seg hermite.Segment, pad float64) *Polygon {
	box := Hull(seg).BoundingBox().Inflate(pad, pad)
	return Box(inktrail.P(box.X0, box.Y0), inktrail.P(box.X1, box.Y1))
}

// ConvexHull computes the convex hull of a set of points, counter-clockwise.
// Collinear points are dropped.
func ConvexHull(points ...inktrail.Point) *Polygon {
	pts := make([]inktrail.Point, 0, len(points))
	for _, p := range points {
		if !containsPoint(pts, p) {
			pts = append(pts, p)
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X() != pts[j].X() {
			return pts[i].X() < pts[j].X()
		}
		return pts[i].Y() < pts[j].Y()
	})
	if len(pts) < 3 {
		pg := &Polygon{points: pts}
		return pg.Cycle()
	}
	hull := make([]inktrail.Point, 0, 2*len(pts))
	for _, p := range pts { // lower hull
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- { // upper hull
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	pg := &Polygon{points: hull[:len(hull)-1]}
	return pg.Cycle()
}

// cross product of o→a and o→b
func cross(o, a, b inktrail.Point) float64 {
	return (a.X()-o.X())*(b.Y()-o.Y()) - (a.Y()-o.Y())*(b.X()-o.X())
}

func containsPoint(pts []inktrail.Point, p inktrail.Point) bool {
	for _, q := range pts {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.points {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%.4g,%.4g)", p.X(), p.Y())
	}
	if pg.IsCycle() {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

// --- Regions ---------------------------------------------------------------

// Region is an area composed of one or more closed contours, the result of
// polygon set operations.
type Region struct {
	poly polyclip.Polygon
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, len(pg.points))
	for i, p := range pg.points {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return c
}

// Union joins closed polygons into a region. Polygons with less than three
// knots enclose no area and are skipped.
func Union(polys ...*Polygon) *Region {
	r := &Region{}
	for _, pg := range polys {
		if pg == nil || pg.N() < 3 {
			continue
		}
		clip := polyclip.Polygon{pg.contour()}
		if len(r.poly) == 0 {
			r.poly = clip
			continue
		}
		r.poly = r.poly.Construct(polyclip.UNION, clip)
	}
	L().Debugf("union of %d polygons has %d contours", len(polys), len(r.poly))
	return r
}

// IsEmpty is a predicate: does this region have no contours?
func (r *Region) IsEmpty() bool {
	return r == nil || len(r.poly) == 0
}

// Contours returns the number of contours of a region.
func (r *Region) Contours() int {
	if r == nil {
		return 0
	}
	return len(r.poly)
}

// BoundingBox returns the smallest rectangle enclosing a region.
// Empty regions have an empty bounding box at the origin.
func (r *Region) BoundingBox() curve.Rect {
	if r.IsEmpty() {
		return curve.Rect{}
	}
	bb := r.poly.BoundingBox()
	return curve.Rect{X0: bb.Min.X, Y0: bb.Min.Y, X1: bb.Max.X, Y1: bb.Max.Y}
}
