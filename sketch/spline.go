package sketch

import "math"

// segment is one cubic Bezier piece of a smoothed line.
type segment struct {
	c1, c2, end Point
}

// controlPoints returns the two cardinal-spline control points around p1
// for the neighbours p0 and p2.
func controlPoints(p0, p1, p2 Point, tension float64) (before, after Point) {
	d01 := math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
	d12 := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	if d01+d12 == 0 {
		return p1, p1
	}
	fa := tension * d01 / (d01 + d12)
	fb := tension * d12 / (d01 + d12)
	dx, dy := p2.X-p0.X, p2.Y-p0.Y
	return Point{p1.X - fa*dx, p1.Y - fa*dy}, Point{p1.X + fb*dx, p1.Y + fb*dy}
}

// smooth converts a polyline into cubic segments starting at pts[0].
// With fewer than three points, or no tension, the segments are straight.
func smooth(pts []Point, tension float64) []segment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]segment, 0, len(pts)-1)
	if len(pts) == 2 || tension == 0 {
		for i := 1; i < len(pts); i++ {
			segs = append(segs, segment{pts[i-1], pts[i], pts[i]})
		}
		return segs
	}

	// before[i] and after[i] are the control points around pts[i] for the
	// interior points; the end points use themselves.
	before := make([]Point, len(pts))
	after := make([]Point, len(pts))
	before[0], after[0] = pts[0], pts[0]
	last := len(pts) - 1
	before[last], after[last] = pts[last], pts[last]
	for i := 1; i < last; i++ {
		before[i], after[i] = controlPoints(pts[i-1], pts[i], pts[i+1], tension)
	}
	for i := 1; i <= last; i++ {
		segs = append(segs, segment{c1: after[i-1], c2: before[i], end: pts[i]})
	}
	return segs
}
