package hermite

import "github.com/npillmayer/inktrail"

// emitter receives the output of an interpolation run.
type emitter interface {
	moveTo(z inktrail.Point)
	segment(i int, seg Segment)
}

// Continuous interpolates a point sequence by one chained path. The path
// starts at points[0] and has len(points)-1 segments. An empty sequence
// results in an empty path.
func Continuous(points []inktrail.Point, alpha Tension) *Path {
	path := &Path{}
	interpolate(points, alpha, path)
	return path
}

// Segmented interpolates a point sequence by independent segments. For every
// segment it additionally returns its point group (see Segment.Group), which
// callers use to redraw or retire that segment on its own.
// Sequences with less than two points result in nil slices.
func Segmented(points []inktrail.Point, alpha Tension) ([]Segment, [][]inktrail.Point) {
	list := &segmentList{}
	interpolate(points, alpha, list)
	return list.segments, list.groups
}

// interpolate is the single implementation of the tangent and control point
// rules, shared by Continuous and Segmented.
func interpolate(points []inktrail.Point, alpha Tension, out emitter) {
	count := len(points)
	if count == 0 {
		return
	}
	out.moveTo(points[0])
	a := float64(alpha.Normalize())
	n := count - 1
	tracer().Debugf("interpolating %d knots, alpha = %.4g", count, a)
	for i := 0; i < n; i++ {
		current, end := points[i], points[i+1]
		// tangent at start of segment
		prev, next := neighbours(points, i)
		var m inktrail.Point
		if i > 0 {
			m = half(next - prev)
		} else {
			m = half(next - current)
		}
		c1 := current + m.Scaled(a)
		// tangent at end of segment
		prev, next = neighbours(points, i+1)
		if i < n-1 {
			m = half(next - prev)
		} else {
			m = half(end - prev)
		}
		c2 := end - m.Scaled(a)
		if i == n-1 && count > 2 {
			out.segment(i, straight(current, end))
			continue
		}
		out.segment(i, Segment{Start: current, C1: c1, C2: c2, End: end})
	}
}

// neighbours returns the knots before and after z.k, wrapping around at the
// ends of the sequence.
func neighbours(points []inktrail.Point, k int) (inktrail.Point, inktrail.Point) {
	count := len(points)
	prev := count - 1
	if k > 0 {
		prev = k - 1
	}
	return points[prev], points[(k+1)%count]
}

func half(v inktrail.Point) inktrail.Point {
	return v.Scaled(0.5)
}

// --- Output adapters -------------------------------------------------------

func (path *Path) moveTo(z inktrail.Point) {
	path.start = z
	path.hasStart = true
}

func (path *Path) segment(i int, seg Segment) {
	path.segments = append(path.segments, seg)
}

type segmentList struct {
	segments []Segment
	groups   [][]inktrail.Point
}

func (l *segmentList) moveTo(inktrail.Point) {}

func (l *segmentList) segment(i int, seg Segment) {
	l.segments = append(l.segments, seg)
	l.groups = append(l.groups, seg.Group())
}
