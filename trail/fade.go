package trail

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/inktrail"
)

// StrokeStyle is the width and color a renderer should use for a segment.
type StrokeStyle struct {
	Width float64
	Color colorful.Color
}

// Style returns the stroke style of a segment of a given age. Width and color
// move linearly from their start values to their end values within
// cfg.Fade and stay there afterwards.
//
// Style is a function of age only, so renderers may call it on every frame
// without accumulating rounding errors.
func (cfg Config) Style(age time.Duration) StrokeStyle {
	t := progress(age, cfg.Fade)
	return StrokeStyle{
		Width: cfg.StartWidth + (cfg.EndWidth-cfg.StartWidth)*t,
		Color: cfg.StartColor.BlendRgb(cfg.EndColor, t),
	}
}

// Marker is the circle drawn at the most recent touch point.
type Marker struct {
	Center  inktrail.Point
	Size    float64 // diameter
	Color   colorful.Color
	Visible bool
}

// MarkerAt returns the marker for a touch point. While a touch is active the
// marker has full size. After the touch ended it shrinks towards
// cfg.MarkerEnd at a constant rate and is hidden as soon as its diameter
// drops to cfg.MarkerMin.
func (cfg Config) MarkerAt(center inktrail.Point, ended bool, sinceEnd time.Duration) Marker {
	m := Marker{Center: center, Size: cfg.MarkerSize, Color: cfg.MarkerColor, Visible: true}
	if !ended {
		return m
	}
	var rate float64 // elapsed time in units of cfg.Fade, not clamped
	if cfg.Fade > 0 {
		rate = float64(sinceEnd) / float64(cfg.Fade)
	} else {
		rate = 1
	}
	m.Size = cfg.MarkerSize - (cfg.MarkerSize-cfg.MarkerEnd)*rate
	m.Color = cfg.MarkerColor.BlendRgb(cfg.EndColor, progress(sinceEnd, cfg.Fade))
	if m.Size <= cfg.MarkerMin || cfg.Fade <= 0 {
		m.Visible = false
	}
	return m
}

// progress is elapsed/total, clamped to [0,1]. A non-positive total counts
// as finished.
func progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}
