package hermite

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/npillmayer/inktrail"
)

// AsString returns a path including its control points as a (debugging)
// string. Curved segments are joined by "..", straight ones by "--".
//
// Example, three collinear knots:
//
//	(0,0) .. controls (1.6667,0.0000) and (6.6667,0.0000)
//	  .. (10,0) -- (20,0)
//
// The format is loosely modelled after MetaPost.
func AsString(path *Path) string {
	start, ok := path.Start()
	if !ok {
		return "<empty>"
	}
	var b strings.Builder
	b.WriteString(ptstring(start, false))
	for _, seg := range path.segments {
		if seg.Straight {
			fmt.Fprintf(&b, " -- %s", ptstring(seg.End, false))
			continue
		}
		fmt.Fprintf(&b, " .. controls %s and %s\n  .. %s", ptstring(seg.C1, true),
			ptstring(seg.C2, true), ptstring(seg.End, false))
	}
	return b.String()
}

func ptstring(p inktrail.Point, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
