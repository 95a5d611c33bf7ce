package geom

// Polygon is an ordered, closed sequence of vertices in consistent winding
// order. All collision queries assume convexity, which holds by construction
// here: every mechanism part is a rectangle or a simple convex quad.
type Polygon []Point

// Rect builds an axis-aligned rectangle polygon from two opposite corners.
func Rect(x0, y0, x1, y1 float64) Polygon {
	return Polygon{
		{x0, y0},
		{x1, y0},
		{x1, y1},
		{x0, y1},
	}
}

// RotateAround returns the polygon with every vertex rotated about c.
func (p Polygon) RotateAround(c Point, theta float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.RotateAround(c, theta)
	}
	return out
}

// ThickSegment builds the quad covering a line segment from a to b widened
// by halfWidth on both sides. Degenerate segments collapse to a point quad.
func ThickSegment(a, b Point, halfWidth float64) Polygon {
	d := b.Sub(a).Normalize()
	n := Point{-d.Y, d.X}.Scale(halfWidth)
	return Polygon{
		a.Add(n),
		b.Add(n),
		b.Sub(n),
		a.Sub(n),
	}
}

// project returns the min/max of the polygon's vertices projected onto axis.
func (p Polygon) project(axis Point) (min, max float64) {
	min = p[0].Dot(axis)
	max = min
	for _, v := range p[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// separatedOn reports whether any edge normal of p separates p from q.
func (p Polygon) separatedOn(q Polygon) bool {
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		axis := Point{-(b.Y - a.Y), b.X - a.X}
		minA, maxA := p.project(axis)
		minB, maxB := q.project(axis)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

// Overlaps reports whether two convex polygons intersect, by the separating
// axis theorem: they overlap iff the projected intervals overlap on every
// edge normal of both polygons. Interval comparison is strict, so polygons
// that merely touch along an edge count as overlapping.
func (p Polygon) Overlaps(q Polygon) bool {
	if len(p) < 3 || len(q) < 3 {
		return false
	}
	return !p.separatedOn(q) && !q.separatedOn(p)
}
