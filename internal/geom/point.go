package geom

import "math"

// Point is a 2D coordinate in the global frame. Y increases downward.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point     { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point     { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }
func (p Point) Dot(o Point) float64   { return p.X*o.X + p.Y*o.Y }
func (p Point) Dist(o Point) float64  { return math.Hypot(p.X-o.X, p.Y-o.Y) }
func (p Point) Len() float64          { return math.Hypot(p.X, p.Y) }

func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// RotateAround rotates p about center c by theta radians using the standard
// 2D rotation transform. With Y down, a negative theta swings points below
// the center toward +X.
func (p Point) RotateAround(c Point, theta float64) Point {
	sin, cos := math.Sincos(theta)
	dx := p.X - c.X
	dy := p.Y - c.Y
	return Point{
		X: cos*dx - sin*dy + c.X,
		Y: sin*dx + cos*dy + c.Y,
	}
}

// Bearing returns the atan2 angle of the vector p->o.
func (p Point) Bearing(o Point) float64 {
	return math.Atan2(o.Y-p.Y, o.X-p.X)
}

func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }
func Rad2Deg(rad float64) float64 { return rad * 180 / math.Pi }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
