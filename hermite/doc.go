// Package hermite interpolates sampled pointer positions by piecewise cubic
// Bézier curves. Tangents are estimated Catmull-Rom style from neighbouring
// points and scaled by a tension parameter.
/*

Sampled touch or mouse positions are sparse and noisy. Connecting them by
straight lines results in a jagged trail, so the points are interpolated by
cubic curves which pass through every sample. For a segment between z.i and
z.[i+1] the tangent at z.i is estimated from the neighbours z.[i-1] and
z.[i+1]:

   m.i = (z.[i+1] - z.[i-1]) / 2

and the control points are placed along the tangents:

   c1 = z.i + alpha * m.i
   c2 = z.[i+1] - alpha * m.[i+1]

At the first knot there is no predecessor and the tangent degrades to a
forward difference; at the last knot it degrades to a backward difference.
Neighbour lookup wraps around at the ends of the sequence, as it would for a
closed curve. The final leg of a trail with more than two knots is drawn as
a straight line, as it will be replaced by a curve as soon as the next sample
arrives.

Usage

Package hermite offers two views onto the same computation. Continuous
returns one chained path, suitable for re-rendering a whole trail every
time a point is appended:

   path := hermite.Continuous(points, hermite.DefaultTension)
   fmt.Println(hermite.AsString(path))

Segmented returns independent segments, together with the points a caller
has to remember to redraw or fade every segment on its own:

   segments, groups := hermite.Segmented(points, hermite.DefaultTension)

Both functions are pure: they neither retain nor modify their input and are
safe for concurrent use. Buffering and retiring of points is up to the
caller, see package trail.

Both functions are total over finite input. Callers who receive points from
untrusted sources may check them with Validate first.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hermite
