package geom

import (
	"math"
	"testing"
)

func unitSquare(dx, dy float64) Polygon {
	return Rect(dx, dy, dx+1, dy+1)
}

func TestOverlaps_UnitSquares(t *testing.T) {
	base := unitSquare(0, 0)

	tests := []struct {
		name    string
		other   Polygon
		overlap bool
	}{
		{"half overlap", unitSquare(0.5, 0), true},
		{"separated", unitSquare(1.5, 0), false},
		{"edge touching", unitSquare(1.0, 0), true},
		{"diagonal overlap", unitSquare(0.5, 0.5), true},
		{"corner touching", unitSquare(1.0, 1.0), true},
		{"separated vertically", unitSquare(0, 2), false},
		{"identical", unitSquare(0, 0), true},
		{"contained", Rect(0.25, 0.25, 0.75, 0.75), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.overlap {
				t.Errorf("Overlaps = %v, want %v", got, tt.overlap)
			}
			// SAT is symmetric.
			if got := tt.other.Overlaps(base); got != tt.overlap {
				t.Errorf("reversed Overlaps = %v, want %v", got, tt.overlap)
			}
		})
	}
}

func TestOverlaps_RotatedQuad(t *testing.T) {
	base := unitSquare(0, 0)

	// A diamond whose tip reaches into the square only when close enough.
	diamond := Polygon{{2, 0.5}, {3, -0.5}, {4, 0.5}, {3, 1.5}}
	if base.Overlaps(diamond) {
		t.Error("distant diamond should not overlap")
	}

	near := diamond.RotateAround(Point{2, 0.5}, 0)
	for i := range near {
		near[i].X -= 1.5
	}
	if !base.Overlaps(near) {
		t.Error("shifted diamond should overlap")
	}
}

func TestOverlaps_AxisSeparatedOnlyOnRotatedNormal(t *testing.T) {
	// Two quads separated along a 45-degree axis; AABB intervals overlap on
	// both cardinal axes, so only the rotated edge normal separates them.
	a := Polygon{{0, 0}, {2, 2}, {1, 3}, {-1, 1}}
	b := Polygon{{3, 0}, {5, 2}, {4, 3}, {2, 1}}
	if a.Overlaps(b) {
		t.Error("expected separation on the diagonal axis")
	}
}

func TestDegeneratePolygons(t *testing.T) {
	if (Polygon{}).Overlaps(unitSquare(0, 0)) {
		t.Error("empty polygon must not overlap")
	}
	if (Polygon{{0, 0}, {1, 1}}).Overlaps(unitSquare(0, 0)) {
		t.Error("two-point polygon must not overlap")
	}
}

func TestThickSegment(t *testing.T) {
	quad := ThickSegment(Point{0, 0}, Point{10, 0}, 2)
	if len(quad) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(quad))
	}
	// Width across the segment is twice the half width.
	if got := quad[0].Dist(quad[3]); math.Abs(got-4) > 1e-12 {
		t.Errorf("expected width 4, got %v", got)
	}
	// Length along the segment is preserved.
	if got := quad[0].Dist(quad[1]); math.Abs(got-10) > 1e-12 {
		t.Errorf("expected length 10, got %v", got)
	}
}

func TestRectWinding(t *testing.T) {
	r := Rect(1, 2, 3, 4)
	want := Polygon{{1, 2}, {3, 2}, {3, 4}, {1, 4}}
	for i := range want {
		if r[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, r[i], want[i])
		}
	}
}
