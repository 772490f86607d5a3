/*
Package trail keeps the state of an ink trail drawn by a pointer: the raw
overlay which is redrawn as a whole, and the segmented trail whose pieces
fade and retire independently.

A Trail owns its point buffers and hands them to package hermite for
interpolation; the interpolator itself holds no state. Trails do not start
timers or goroutines. A caller, usually a frame callback of a UI toolkit,
feeds pointer positions and the current time:

	tr := trail.New(cfg, now, touch)
	…
	fresh := tr.Add(now, moved...)  // segments to add to the canvas
	retired := tr.Expire(now)       // segments to remove, plus damage
	raw := tr.Raw().BezPath()       // overlay to stroke with cfg.EndWidth

Trails are not safe for concurrent use; callers synchronize access.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package trail

import (
	"time"

	"github.com/npillmayer/inktrail"
	"github.com/npillmayer/inktrail/hermite"
	"github.com/npillmayer/inktrail/polygon"
	"honnef.co/go/curve"
)

// Live is a segment of the segmented trail, stamped with its creation time.
type Live struct {
	hermite.Segment
	Born time.Time
}

// Age returns the age of a segment at time now.
func (l Live) Age(now time.Time) time.Duration {
	return now.Sub(l.Born)
}

type stamped struct {
	z  inktrail.Point
	at time.Time
}

// Trail is the buffer for a single pointer trail.
type Trail struct {
	cfg     Config
	toView  inktrail.AT      // maps incoming points to view-local space
	raw     []stamped        // points of the raw overlay
	waiting []inktrail.Point // points not yet turned into segments
	live    []Live           // segments not yet retired
	last    inktrail.Point   // most recent point, center of the marker
	hasLast bool
	ended   bool
	endedAt time.Time
}

// New starts a trail at time now with the points of a touch-down event.
func New(cfg Config, now time.Time, points ...inktrail.Point) *Trail {
	tr := &Trail{cfg: cfg}
	tr.Add(now, points...)
	return tr
}

// SetTransform sets a transformation from the coordinate space of incoming
// points to view-local space. It affects points added afterwards.
func (tr *Trail) SetTransform(m inktrail.AT) {
	tr.toView = m
}

// Config returns the configuration of a trail.
func (tr *Trail) Config() Config {
	return tr.cfg
}

// Add appends points to the trail. As soon as at least two points are
// waiting they are interpolated into segments, which are returned and
// become part of the live trail. The final two waiting points are kept, as
// the last leg is a provisional straight line and will be re-drawn as a
// curve once the next point arrives.
func (tr *Trail) Add(now time.Time, points ...inktrail.Point) []Live {
	if tr.toView != nil {
		points = tr.toView.TransformAll(points)
	}
	for _, z := range points {
		tr.raw = append(tr.raw, stamped{z: z, at: now})
	}
	tr.waiting = append(tr.waiting, points...)
	if len(points) > 0 {
		tr.last, tr.hasLast = points[len(points)-1], true
	}
	if len(tr.waiting) < 2 {
		return nil
	}
	segs, _ := hermite.Segmented(tr.waiting, tr.cfg.Tension)
	fresh := make([]Live, len(segs))
	for i, seg := range segs {
		fresh[i] = Live{Segment: seg, Born: now}
	}
	tr.live = append(tr.live, fresh...)
	keep := tr.waiting[len(tr.waiting)-2:]
	tr.waiting = append(tr.waiting[:0], keep...)
	tracer().Debugf("trail: %d new segments, %d live", len(fresh), len(tr.live))
	return fresh
}

// End marks the end of the touch at time now. The marker starts to shrink.
func (tr *Trail) End(now time.Time) {
	if tr.ended {
		return
	}
	tr.ended, tr.endedAt = true, now
}

// IsEnded is a predicate: has the touch ended?
func (tr *Trail) IsEnded() bool {
	return tr.ended
}

// RawPoints returns a copy of the points of the raw overlay.
func (tr *Trail) RawPoints() []inktrail.Point {
	pts := make([]inktrail.Point, len(tr.raw))
	for i, s := range tr.raw {
		pts[i] = s.z
	}
	return pts
}

// Raw interpolates the raw overlay, i.e. all points not yet expired, by a
// single path.
func (tr *Trail) Raw() *hermite.Path {
	return hermite.Continuous(tr.RawPoints(), tr.cfg.Tension)
}

// Waiting returns a copy of the points waiting to be segmented.
func (tr *Trail) Waiting() []inktrail.Point {
	return append([]inktrail.Point(nil), tr.waiting...)
}

// Live returns a copy of the segments not yet retired, oldest first.
func (tr *Trail) Live() []Live {
	return append([]Live(nil), tr.live...)
}

// Len returns the number of live segments.
func (tr *Trail) Len() int {
	return len(tr.live)
}

// Marker returns the touch marker at time now.
func (tr *Trail) Marker(now time.Time) Marker {
	if !tr.hasLast {
		return Marker{}
	}
	return tr.cfg.MarkerAt(tr.last, tr.ended, now.Sub(tr.endedAt))
}

// Done is a predicate: is there nothing left to draw at time now?
func (tr *Trail) Done(now time.Time) bool {
	return len(tr.live) == 0 && len(tr.raw) == 0 && !tr.Marker(now).Visible
}

// Retired reports what Expire removed from a trail.
type Retired struct {
	Segments []Live          // retired segments, oldest first
	Points   int             // number of points dropped from the raw overlay
	Region   *polygon.Region // area covered by the retired strokes
	Damage   curve.Rect      // rectangle enclosing Region
}

// IsEmpty is a predicate: did Expire remove nothing?
func (r Retired) IsEmpty() bool {
	return len(r.Segments) == 0 && r.Points == 0
}

// Expire retires raw points older than cfg.RawTTL and segments older than
// cfg.SegmentTTL. It returns the retired segments together with the region
// a renderer has to redraw.
func (tr *Trail) Expire(now time.Time) Retired {
	var r Retired
	var covers []*polygon.Polygon
	n := 0
	for n < len(tr.live) && tr.live[n].Age(now) >= tr.cfg.SegmentTTL {
		n++
	}
	if n > 0 {
		r.Segments = append([]Live(nil), tr.live[:n]...)
		tr.live = append(tr.live[:0], tr.live[n:]...)
		for _, l := range r.Segments {
			covers = append(covers, polygon.Cover(l.Segment, tr.cfg.StartWidth/2))
		}
	}
	n = 0
	for n < len(tr.raw) && now.Sub(tr.raw[n].at) >= tr.cfg.RawTTL {
		n++
	}
	if n > 0 {
		// the overlay is redrawn as a whole, so all of it is damaged
		box := tr.Raw().BoundingBox().Inflate(tr.cfg.EndWidth/2, tr.cfg.EndWidth/2)
		covers = append(covers, polygon.Box(inktrail.P(box.X0, box.Y0), inktrail.P(box.X1, box.Y1)))
		tr.raw = append(tr.raw[:0], tr.raw[n:]...)
		r.Points = n
	}
	if len(covers) > 0 {
		r.Region = polygon.Union(covers...)
		r.Damage = covers[0].BoundingBox()
		for _, c := range covers[1:] {
			r.Damage = r.Damage.Union(c.BoundingBox())
		}
		tracer().Debugf("trail: retired %d segments and %d points, damage %v",
			len(r.Segments), r.Points, r.Damage)
	}
	return r
}
