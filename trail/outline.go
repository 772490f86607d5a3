package trail

import (
	"slices"
	"time"

	"github.com/npillmayer/inktrail/hermite"
	"honnef.co/go/curve"
)

// OutlineTolerance is the flattening tolerance for stroke outlines, in
// view-local units.
const OutlineTolerance = 0.1

// Outline returns the filled outline of a segment stroked with round caps and
// joins, for renderers which fill shapes instead of stroking lines.
func Outline(seg hermite.Segment, width float64) curve.BezPath {
	style := curve.DefaultStroke.WithWidth(width).WithMiterLimit(15)
	elems := curve.StrokePath(seg.Cubic().PathElements(OutlineTolerance), style,
		curve.StrokeOpts{}, OutlineTolerance)
	return curve.BezPath(slices.Collect(elems))
}

// Outline returns the outline of a live segment at time now, using the
// stroke width of its age.
func (l Live) Outline(cfg Config, now time.Time) curve.BezPath {
	return Outline(l.Segment, cfg.Style(l.Age(now)).Width)
}
