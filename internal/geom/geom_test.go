package geom

import (
	"math"
	"testing"
)

func TestRotateAround(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		c      Point
		deg    float64
		expect Point
	}{
		{"identity", Point{3, 4}, Point{1, 1}, 0, Point{3, 4}},
		{"quarter turn about origin", Point{1, 0}, Point{0, 0}, 90, Point{0, 1}},
		{"negative quarter turn", Point{0, 1}, Point{0, 0}, -90, Point{1, 0}},
		{"half turn about center", Point{2, 1}, Point{1, 1}, 180, Point{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.RotateAround(tt.c, Deg2Rad(tt.deg))
			if math.Abs(got.X-tt.expect.X) > 1e-12 || math.Abs(got.Y-tt.expect.Y) > 1e-12 {
				t.Errorf("got (%v, %v), want (%v, %v)", got.X, got.Y, tt.expect.X, tt.expect.Y)
			}
		})
	}
}

func TestRotateOpensDownwardPointsRight(t *testing.T) {
	// With Y down, a negative angle must swing a point below the center
	// toward +X. The collision sweep direction depends on this.
	p := Point{0, 10}.RotateAround(Point{0, 0}, Deg2Rad(-30))
	if p.X <= 0 {
		t.Errorf("expected positive X after opening rotation, got %v", p.X)
	}
}

func TestVerticalCircleRoot(t *testing.T) {
	center := Point{0, 0}
	got := VerticalCircleRoot(center, 5, 3)
	if got.X != 3 {
		t.Errorf("expected X on the line, got %v", got.X)
	}
	if math.Abs(got.Y-4) > 1e-12 {
		t.Errorf("expected root below center at Y=4, got %v", got.Y)
	}
}

func TestVerticalCircleRoot_OutOfReach(t *testing.T) {
	// Line beyond the radius: radical clamps to zero, point stays level.
	got := VerticalCircleRoot(Point{0, 0}, 2, 10)
	if got.Y != 0 {
		t.Errorf("expected clamped fallback at center height, got %v", got.Y)
	}
	if math.IsNaN(got.Y) {
		t.Error("fallback produced NaN")
	}
}

func TestLineIntersect(t *testing.T) {
	// x axis against a vertical through x=2.
	tt, s, ok := LineIntersect(Point{0, 0}, Point{1, 0}, Point{2, -1}, Point{0, 1})
	if !ok {
		t.Fatal("expected intersection")
	}
	if math.Abs(tt-2) > 1e-12 || math.Abs(s-1) > 1e-12 {
		t.Errorf("got t=%v s=%v, want 2, 1", tt, s)
	}
}

func TestLineIntersect_Parallel(t *testing.T) {
	tests := []struct {
		name   string
		d1, d2 Point
	}{
		{"same direction", Point{1, 1}, Point{1, 1}},
		{"scaled direction", Point{1, 2}, Point{2, 4}},
		{"near parallel", Point{1, 0}, Point{1, 1e-12}},
		{"zero direction", Point{0, 0}, Point{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv, sv, ok := LineIntersect(Point{0, 0}, tt.d1, Point{5, 5}, tt.d2)
			if ok {
				t.Fatal("expected degenerate solve to report !ok")
			}
			if tv != 0 || sv != 0 {
				t.Errorf("expected zero-displacement fallback, got t=%v s=%v", tv, sv)
			}
		})
	}
}

func TestCircleCircle(t *testing.T) {
	p1, p2, ok := CircleCircle(Point{0, 0}, 5, Point{8, 0}, 5)
	if !ok {
		t.Fatal("expected intersection")
	}
	for _, p := range []Point{p1, p2} {
		if math.Abs(p.Dist(Point{0, 0})-5) > 1e-9 || math.Abs(p.Dist(Point{8, 0})-5) > 1e-9 {
			t.Errorf("intersection %v not on both circles", p)
		}
	}
	if math.Abs(p1.X-4) > 1e-9 || math.Abs(p2.X-4) > 1e-9 {
		t.Errorf("expected both roots at X=4, got %v and %v", p1.X, p2.X)
	}
}

func TestCircleCircle_Infeasible(t *testing.T) {
	tests := []struct {
		name string
		c1   Point
		r1   float64
		c2   Point
		r2   float64
	}{
		{"too far apart", Point{0, 0}, 1, Point{10, 0}, 1},
		{"contained", Point{0, 0}, 10, Point{1, 0}, 1},
		{"coincident centers", Point{0, 0}, 3, Point{0, 0}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := CircleCircle(tt.c1, tt.r1, tt.c2, tt.r2)
			if ok {
				t.Error("expected infeasible solve to report !ok")
			}
		})
	}
}

func TestAimWithOffset(t *testing.T) {
	// Target straight right, no offset: bearing is zero.
	if got := AimWithOffset(Point{0, 0}, Point{10, 0}, 0); math.Abs(got) > 1e-12 {
		t.Errorf("expected zero bearing, got %v", got)
	}

	// Offset correction equals asin(offset/distance).
	got := AimWithOffset(Point{0, 0}, Point{10, 0}, 5)
	if math.Abs(got-math.Asin(0.5)) > 1e-12 {
		t.Errorf("expected asin(0.5) correction, got %v", got)
	}
}

func TestAimWithOffset_Degenerate(t *testing.T) {
	// Offset larger than the distance: asin argument clamps, no NaN.
	got := AimWithOffset(Point{0, 0}, Point{1, 0}, 100)
	if math.IsNaN(got) {
		t.Error("expected clamped result, got NaN")
	}
	// Coincident points degrade to zero.
	if got := AimWithOffset(Point{3, 3}, Point{3, 3}, 1); got != 0 {
		t.Errorf("expected zero for coincident points, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
