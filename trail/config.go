package trail

import (
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/inktrail/hermite"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inktrail.trail'
func tracer() tracing.Trace {
	return tracing.Select("inktrail.trail")
}

// Config holds the timing and styling parameters of a trail.
type Config struct {
	RawTTL      time.Duration   // lifetime of a point of the raw overlay
	SegmentTTL  time.Duration   // lifetime of a segmented piece of trail
	Fade        time.Duration   // duration of width and color fades
	StartWidth  float64         // stroke width of a fresh segment
	EndWidth    float64         // stroke width of a faded segment and of the raw overlay
	MarkerSize  float64         // diameter of the touch marker
	MarkerEnd   float64         // diameter the marker shrinks towards after touch end
	MarkerMin   float64         // the marker is hidden at or below this diameter
	Tension     hermite.Tension // tension for interpolation
	StartColor  colorful.Color
	EndColor    colorful.Color
	MarkerColor colorful.Color
}

// DefaultConfig returns a configuration for a finger-sized trail on a phone screen.
func DefaultConfig() Config {
	return Config{
		RawTTL:      400 * time.Millisecond,
		SegmentTTL:  250 * time.Millisecond,
		Fade:        200 * time.Millisecond,
		StartWidth:  9,
		EndWidth:    3,
		MarkerSize:  15,
		MarkerEnd:   5,
		MarkerMin:   4,
		Tension:     hermite.DefaultTension,
		StartColor:  colorful.Color{R: 0.10, G: 0.74, B: 1},
		EndColor:    colorful.Color{R: 0.4, G: 0.20, B: 1},
		MarkerColor: colorful.Color{R: 0.10, G: 0.74, B: 1},
	}
}

// Settings is the part of an application configuration ConfigFrom reads.
// Every schuko.Configuration is a Settings.
type Settings interface {
	IsSet(key string) bool
	GetString(key string) string
}

var _ Settings = schuko.Configuration(nil)

// Configuration keys understood by ConfigFrom.
const (
	KeyRawTTL      = "trail.raw-ttl"      // duration, e.g. "400ms"
	KeySegmentTTL  = "trail.segment-ttl"  // duration
	KeyFade        = "trail.fade"         // duration
	KeyStartWidth  = "trail.width.start"  // float
	KeyEndWidth    = "trail.width.end"    // float
	KeyMarkerSize  = "trail.marker.size"  // float
	KeyMarkerEnd   = "trail.marker.end"   // float
	KeyMarkerMin   = "trail.marker.min"   // float
	KeyTension     = "trail.tension"      // float
	KeyStartColor  = "trail.color.start"  // hex color, e.g. "#1abdff"
	KeyEndColor    = "trail.color.end"    // hex color
	KeyMarkerColor = "trail.color.marker" // hex color
)

// ConfigFrom creates a configuration from application settings, starting
// with DefaultConfig. Keys which are not set keep their default. Values which
// cannot be parsed are traced as errors and ignored.
func ConfigFrom(conf Settings) Config {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg
	}
	duration(conf, KeyRawTTL, &cfg.RawTTL)
	duration(conf, KeySegmentTTL, &cfg.SegmentTTL)
	duration(conf, KeyFade, &cfg.Fade)
	number(conf, KeyStartWidth, &cfg.StartWidth)
	number(conf, KeyEndWidth, &cfg.EndWidth)
	number(conf, KeyMarkerSize, &cfg.MarkerSize)
	number(conf, KeyMarkerEnd, &cfg.MarkerEnd)
	number(conf, KeyMarkerMin, &cfg.MarkerMin)
	var tension = float64(cfg.Tension)
	number(conf, KeyTension, &tension)
	cfg.Tension = hermite.Tension(tension).Normalize()
	color(conf, KeyStartColor, &cfg.StartColor)
	color(conf, KeyEndColor, &cfg.EndColor)
	color(conf, KeyMarkerColor, &cfg.MarkerColor)
	return cfg
}

func duration(conf Settings, key string, d *time.Duration) {
	if !conf.IsSet(key) {
		return
	}
	v, err := time.ParseDuration(conf.GetString(key))
	if err != nil || v < 0 {
		tracer().Errorf("ignoring %s = %q: not a valid duration", key, conf.GetString(key))
		return
	}
	*d = v
}

func number(conf Settings, key string, f *float64) {
	if !conf.IsSet(key) {
		return
	}
	v, err := strconv.ParseFloat(conf.GetString(key), 64)
	if err != nil {
		tracer().Errorf("ignoring %s = %q: %v", key, conf.GetString(key), err)
		return
	}
	*f = v
}

func color(conf Settings, key string, c *colorful.Color) {
	if !conf.IsSet(key) {
		return
	}
	v, err := colorful.Hex(conf.GetString(key))
	if err != nil {
		tracer().Errorf("ignoring %s = %q: %v", key, conf.GetString(key), err)
		return
	}
	*c = v
}
