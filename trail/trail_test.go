package trail

import (
	"testing"
	"time"

	"github.com/npillmayer/inktrail"
	"github.com/npillmayer/inktrail/hermite"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func testtrail() *Trail {
	tr := New(DefaultConfig(), at(0), inktrail.P(0, 0))
	tr.Add(at(10), inktrail.P(10, 10))
	tr.Add(at(20), inktrail.P(20, 10))
	tr.Add(at(30), inktrail.P(30, 0))
	return tr
}

func TestAddSegmentsWaitingWindow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := New(DefaultConfig(), at(0), inktrail.P(0, 0))
	assert.Equal(t, 0, tr.Len())
	assert.Len(t, tr.Waiting(), 1)
	fresh := tr.Add(at(10), inktrail.P(10, 10))
	require.Len(t, fresh, 1)
	assert.False(t, fresh[0].Straight, "a two-point window yields a curve")
	assert.Equal(t, at(10), fresh[0].Born)
	fresh = tr.Add(at(20), inktrail.P(20, 10))
	require.Len(t, fresh, 2)
	assert.False(t, fresh[0].Straight)
	assert.True(t, fresh[1].Straight, "last leg is provisional")
	assert.Equal(t, []inktrail.Point{inktrail.P(10, 10), inktrail.P(20, 10)}, tr.Waiting())
	fresh = tr.Add(at(30), inktrail.P(30, 0))
	require.Len(t, fresh, 2)
	// the provisional leg has been re-drawn as a curve
	assert.Equal(t, inktrail.P(10, 10), fresh[0].Start)
	assert.Equal(t, inktrail.P(20, 10), fresh[0].End)
	assert.False(t, fresh[0].Straight)
	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, []inktrail.Point{inktrail.P(20, 10), inktrail.P(30, 0)}, tr.Waiting())
}

func TestSegmentsMatchInterpolator(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []inktrail.Point{inktrail.P(0, 0), inktrail.P(5, 8), inktrail.P(12, 3), inktrail.P(20, 9)}
	tr := New(DefaultConfig(), at(0), pts...)
	segs, _ := hermite.Segmented(pts, hermite.DefaultTension)
	live := tr.Live()
	require.Len(t, live, len(segs))
	for i := range segs {
		assert.Equal(t, segs[i], live[i].Segment)
	}
}

func TestRawOverlay(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := testtrail()
	assert.Len(t, tr.RawPoints(), 4)
	raw := tr.Raw()
	assert.Equal(t, 3, raw.N())
	assert.True(t, raw.Segment(2).Straight)
}

func TestExpire(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := testtrail()
	r := tr.Expire(at(100))
	assert.True(t, r.IsEmpty())
	assert.Nil(t, r.Region)
	//
	r = tr.Expire(at(260))
	require.Len(t, r.Segments, 1)
	assert.Equal(t, 0, r.Points)
	assert.Equal(t, 4, tr.Len())
	require.NotNil(t, r.Region)
	seg := r.Segments[0].BoundingBox()
	assert.LessOrEqual(t, r.Damage.MinX(), seg.MinX()-4.5+1e-9)
	assert.GreaterOrEqual(t, r.Damage.MaxY(), seg.MaxY()+4.5-1e-9)
	//
	r = tr.Expire(at(400))
	assert.Len(t, r.Segments, 4)
	assert.Equal(t, 1, r.Points)
	assert.Equal(t, 0, tr.Len())
	assert.Len(t, tr.RawPoints(), 3)
	// the damage covers the raw overlay as it was before expiry
	assert.LessOrEqual(t, r.Damage.MinX(), -1.5+1e-9)
	//
	r = tr.Expire(at(1000))
	assert.Empty(t, r.Segments)
	assert.Equal(t, 3, r.Points)
	assert.Empty(t, tr.RawPoints())
	assert.True(t, tr.Raw().IsEmpty())
}

func TestEndAndDone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := testtrail()
	tr.Expire(at(1000))
	assert.False(t, tr.Done(at(1000)), "marker is visible while touching")
	tr.End(at(1000))
	assert.True(t, tr.IsEnded())
	tr.End(at(5000)) // ignored
	assert.True(t, tr.Marker(at(1100)).Visible)
	assert.Equal(t, inktrail.P(30, 0), tr.Marker(at(1100)).Center)
	assert.True(t, tr.Done(at(1300)))
}

func TestEmptyTrail(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := New(DefaultConfig(), at(0))
	assert.False(t, tr.Marker(at(0)).Visible)
	assert.True(t, tr.Done(at(0)))
	assert.Nil(t, tr.Add(at(1)))
	assert.True(t, tr.Expire(at(1000)).IsEmpty())
}

func TestTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := New(DefaultConfig(), at(0))
	tr.SetTransform(inktrail.Translation(inktrail.P(-100, -50)))
	tr.Add(at(0), inktrail.P(110, 60), inktrail.P(120, 70))
	pts := tr.RawPoints()
	require.Len(t, pts, 2)
	assert.True(t, pts[0].Equal(inktrail.P(10, 10)))
	assert.True(t, tr.Live()[0].End.Equal(inktrail.P(20, 20)))
}

func TestOutline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	segs, _ := hermite.Segmented([]inktrail.Point{inktrail.P(0, 0), inktrail.P(10, 0)}, hermite.DefaultTension)
	outline := Outline(segs[0], 4)
	require.NotEmpty(t, outline)
	box := outline.BoundingBox()
	assert.InDelta(t, -2.0, box.MinX(), 0.25)
	assert.InDelta(t, 12.0, box.MaxX(), 0.25)
	assert.InDelta(t, -2.0, box.MinY(), 0.25)
	assert.InDelta(t, 2.0, box.MaxY(), 0.25)
	//
	live := Live{Segment: segs[0], Born: at(0)}
	wide := live.Outline(DefaultConfig(), at(0)).BoundingBox()
	assert.InDelta(t, 4.5, wide.MaxY(), 0.25)
	thin := live.Outline(DefaultConfig(), at(500)).BoundingBox()
	assert.InDelta(t, 1.5, thin.MaxY(), 0.25)
}
