package trail

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/inktrail"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func assertColor(t *testing.T, want, got colorful.Color) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1e-9)
	assert.InDelta(t, want.G, got.G, 1e-9)
	assert.InDelta(t, want.B, got.B, 1e-9)
}

func TestStyle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	s := cfg.Style(0)
	assert.Equal(t, 9.0, s.Width)
	assertColor(t, cfg.StartColor, s.Color)
	s = cfg.Style(-time.Second)
	assert.Equal(t, 9.0, s.Width)
	s = cfg.Style(100 * time.Millisecond)
	assert.InDelta(t, 6.0, s.Width, 1e-9)
	assertColor(t, colorful.Color{R: 0.25, G: 0.47, B: 1}, s.Color)
	for _, age := range []time.Duration{200 * time.Millisecond, time.Second} {
		s = cfg.Style(age)
		assert.InDelta(t, 3.0, s.Width, 1e-9)
		assertColor(t, cfg.EndColor, s.Color)
	}
}

func TestStyleIsMonotone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	prev := cfg.Style(0).Width
	for ms := 10; ms <= 300; ms += 10 {
		w := cfg.Style(time.Duration(ms) * time.Millisecond).Width
		assert.LessOrEqual(t, w, prev, "at %dms", ms)
		prev = w
	}
}

func TestStyleWithoutFade(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.Fade = 0
	assert.Equal(t, cfg.EndWidth, cfg.Style(0).Width)
}

func TestMarker(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	z := inktrail.P(4, 2)
	m := cfg.MarkerAt(z, false, time.Hour)
	assert.True(t, m.Visible)
	assert.Equal(t, 15.0, m.Size)
	assert.Equal(t, z, m.Center)
	m = cfg.MarkerAt(z, true, 100*time.Millisecond)
	assert.True(t, m.Visible)
	assert.InDelta(t, 10.0, m.Size, 1e-9)
	m = cfg.MarkerAt(z, true, 200*time.Millisecond)
	assert.True(t, m.Visible)
	assert.InDelta(t, 5.0, m.Size, 1e-9)
	assertColor(t, cfg.EndColor, m.Color)
	m = cfg.MarkerAt(z, true, 250*time.Millisecond)
	assert.False(t, m.Visible)
}

func TestProgress(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 0.0, progress(-time.Second, time.Second))
	assert.Equal(t, 0.5, progress(500*time.Millisecond, time.Second))
	assert.Equal(t, 1.0, progress(2*time.Second, time.Second))
	assert.Equal(t, 1.0, progress(0, 0))
}
