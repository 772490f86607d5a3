package hermite

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/inktrail"
	"github.com/npillmayer/schuko/tracing"
	"honnef.co/go/curve"
)

// tracer writes to trace with key 'inktrail.hermite'
func tracer() tracing.Trace {
	return tracing.Select("inktrail.hermite")
}

// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
var ErrInvalidKnot = errors.New("point sequence has invalid knot coordinate")

// Tension scales the distance of control points from their knots along the
// estimated tangent. Usual values are in (0,1].
type Tension float64

// DefaultTension is used whenever a tension is zero, negative or NaN.
const DefaultTension Tension = 1.0 / 3.0

// Normalize returns t, or DefaultTension if t is not a positive number.
// Tensions greater than 1 are not clamped.
func (t Tension) Normalize() Tension {
	if !(t > 0) {
		return DefaultTension
	}
	return t
}

// Segment is a single cubic Bézier piece between two consecutive knots.
// A straight segment has its control points coincide with its end points.
// Segments do not reference the point sequence they have been computed from.
type Segment struct {
	Start    inktrail.Point
	C1       inktrail.Point // control point leaving Start
	C2       inktrail.Point // control point entering End
	End      inktrail.Point
	Straight bool // segment is a line from Start to End
}

func straight(from, to inktrail.Point) Segment {
	return Segment{Start: from, C1: from, C2: to, End: to, Straight: true}
}

// Group returns the points a caller needs to redraw this segment on its own:
// [End, C1, C2] for a curve and [Start, End] for a straight line.
func (seg Segment) Group() []inktrail.Point {
	if seg.Straight {
		return []inktrail.Point{seg.Start, seg.End}
	}
	return []inktrail.Point{seg.End, seg.C1, seg.C2}
}

// Cubic returns the segment as a cubic Bézier of package curve.
func (seg Segment) Cubic() curve.CubicBez {
	return curve.CubicBez{
		P0: seg.Start.Pt(),
		P1: seg.C1.Pt(),
		P2: seg.C2.Pt(),
		P3: seg.End.Pt(),
	}
}

// BoundingBox returns the tight bounding box of the segment.
func (seg Segment) BoundingBox() curve.Rect {
	if seg.Straight {
		return curve.NewRectFromPoints(seg.Start.Pt(), seg.End.Pt())
	}
	return seg.Cubic().BoundingBox()
}

func (seg Segment) String() string {
	if seg.Straight {
		return fmt.Sprintf("%s -- %s", ptstring(seg.Start, false), ptstring(seg.End, false))
	}
	return fmt.Sprintf("%s .. controls %s and %s .. %s", ptstring(seg.Start, false),
		ptstring(seg.C1, true), ptstring(seg.C2, true), ptstring(seg.End, false))
}

// Path is a chain of segments, each one starting where its predecessor ends.
// Paths are produced by Continuous.
type Path struct {
	start    inktrail.Point
	hasStart bool
	segments []Segment
}

// N returns the number of segments of a path.
func (path *Path) N() int {
	if path == nil {
		return 0
	}
	return len(path.segments)
}

// IsEmpty is a predicate: does this path contain no segments?
func (path *Path) IsEmpty() bool {
	return path.N() == 0
}

// Start returns the first knot of a path. The second return value is false
// for a path built from an empty point sequence.
func (path *Path) Start() (inktrail.Point, bool) {
	if path == nil {
		return inktrail.Origin, false
	}
	return path.start, path.hasStart
}

// Segment returns segment i.
func (path *Path) Segment(i int) Segment {
	return path.segments[i]
}

// Segments returns a copy of all segments of a path.
func (path *Path) Segments() []Segment {
	if path == nil {
		return nil
	}
	segs := make([]Segment, len(path.segments))
	copy(segs, path.segments)
	return segs
}

// Z returns knot i, where i is in [0…N].
func (path *Path) Z(i int) inktrail.Point {
	if i == 0 {
		return path.start
	}
	return path.segments[i-1].End
}

// PostControl returns the control point leaving knot i.
func (path *Path) PostControl(i int) inktrail.Point {
	return path.segments[i].C1
}

// PreControl returns the control point entering knot i, i > 0.
func (path *Path) PreControl(i int) inktrail.Point {
	return path.segments[i-1].C2
}

// BezPath converts a path to a Bézier path of package curve, suitable for
// rendering. An empty point sequence results in an empty BezPath.
func (path *Path) BezPath() curve.BezPath {
	var bp curve.BezPath
	start, ok := path.Start()
	if !ok {
		return bp
	}
	bp.MoveTo(start.Pt())
	for _, seg := range path.segments {
		if seg.Straight {
			bp.LineTo(seg.End.Pt())
		} else {
			bp.CubicTo(seg.C1.Pt(), seg.C2.Pt(), seg.End.Pt())
		}
	}
	return bp
}

// BoundingBox returns the bounding box of all segments of a path.
// For paths without segments the box is empty and located at the start knot.
func (path *Path) BoundingBox() curve.Rect {
	start, _ := path.Start()
	if path.IsEmpty() {
		return curve.NewRectFromPoints(start.Pt(), start.Pt())
	}
	box := path.segments[0].BoundingBox()
	for _, seg := range path.segments[1:] {
		box = box.Union(seg.BoundingBox())
	}
	return box
}

// Validate checks if all points of a sequence have finite coordinates.
// Interpolation does not validate its input; callers which cannot
// guarantee finite coordinates should call Validate first.
func Validate(points []inktrail.Point) error {
	for i, z := range points {
		x, y := z.F()
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	return nil
}
