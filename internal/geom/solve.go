package geom

import "math"

const epsilon = 1e-9

// VerticalCircleRoot solves for the point on the vertical line x = lineX at
// link-length radius from center, taking the root below the center. When the
// line is out of reach the radical is clamped to zero, leaving the point
// level with the center rather than producing NaN.
func VerticalCircleRoot(center Point, radius, lineX float64) Point {
	dx := math.Abs(lineX - center.X)
	dy := math.Sqrt(math.Max(0, radius*radius-dx*dx))
	return Point{X: lineX, Y: center.Y + dy}
}

// LineIntersect solves p1 + t*d1 == p2 + s*d2 for (t, s) via Cramer's rule.
// Near-parallel directions make the determinant vanish; the zero-displacement
// fallback (t = s = 0, ok = false) is returned instead of dividing.
func LineIntersect(p1, d1, p2, d2 Point) (t, s float64, ok bool) {
	det := d1.X*(-d2.Y) - d1.Y*(-d2.X)
	if math.Abs(det) < epsilon {
		return 0, 0, false
	}
	rx := p2.X - p1.X
	ry := p2.Y - p1.Y
	t = (rx*(-d2.Y) - ry*(-d2.X)) / det
	s = (d1.X*ry - d1.Y*rx) / det
	return t, s, true
}

// CircleCircle intersects the circles (c1, r1) and (c2, r2). The two
// solutions are returned in arbitrary but deterministic order. Infeasible
// targets (d > r1+r2, d < |r1-r2|, coincident centers) report ok = false.
func CircleCircle(c1 Point, r1 float64, c2 Point, r2 float64) (Point, Point, bool) {
	d := c1.Dist(c2)
	if d < epsilon || d > r1+r2 || d < math.Abs(r1-r2) {
		return Point{}, Point{}, false
	}
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, r1*r1-a*a))
	mid := c1.Add(c2.Sub(c1).Scale(a / d))
	ux := (c2.X - c1.X) / d
	uy := (c2.Y - c1.Y) / d
	p1 := Point{mid.X + h*uy, mid.Y - h*ux}
	p2 := Point{mid.X - h*uy, mid.Y + h*ux}
	return p1, p2, true
}

// AimWithOffset returns the bearing from pivot to target corrected for a rod
// that exits the actuator body off-axis by offset. The asin argument is
// clamped into [-1, 1] so near-zero distances degrade to the raw bearing.
func AimWithOffset(pivot, target Point, offset float64) float64 {
	d := pivot.Dist(target)
	if d < epsilon {
		return 0
	}
	return pivot.Bearing(target) + math.Asin(Clamp(offset/d, -1, 1))
}
