package vent

import "testing"

func TestResolveFrameStacking(t *testing.T) {
	g := ResolveFrame(Params{FlapHeight: 125, MotorSpacing: 30})
	lay := g.Layout

	// Horizontal order: frame, insulation, flap, pivot, motor axis.
	if !(FrameThickness < lay.InsRight && lay.InsRight < lay.FlapLeft &&
		lay.FlapLeft < lay.FlapRight && lay.FlapRight < g.Pivot.X && g.Pivot.X < g.MotorAxisX) {
		t.Errorf("horizontal stacking broken: %+v pivot=%v axis=%v", lay, g.Pivot, g.MotorAxisX)
	}

	if lay.FlapBottom-lay.FlapTop != 125 {
		t.Errorf("flap span = %v, want the configured height", lay.FlapBottom-lay.FlapTop)
	}
	if g.MotorAnchor.Y-lay.FlapBottom != 30 {
		t.Errorf("anchor offset = %v, want the configured spacing", g.MotorAnchor.Y-lay.FlapBottom)
	}

	if len(g.FlapQuad) != 4 || len(g.HousingQuad) != 4 || len(g.BottomQuad) != 4 {
		t.Fatal("fixed quads must have four corners")
	}

	// The canvas must contain every fixed part.
	for _, p := range append(append(g.FlapQuad, g.HousingQuad...), g.BottomQuad...) {
		if p.X < 0 || p.Y < 0 || p.X > lay.Width || p.Y > lay.Height {
			t.Errorf("fixed part corner %v outside the %vx%v canvas", p, lay.Width, lay.Height)
		}
	}
}

func TestResolveFrameGrowsWithSpacing(t *testing.T) {
	a := ResolveFrame(Params{FlapHeight: 125, MotorSpacing: 30})
	b := ResolveFrame(Params{FlapHeight: 125, MotorSpacing: 120})
	if b.Layout.Height <= a.Layout.Height {
		t.Errorf("layout height %v did not grow with motor spacing (was %v)", b.Layout.Height, a.Layout.Height)
	}
	if b.MotorAnchor.Y <= a.MotorAnchor.Y {
		t.Error("motor anchor did not move down with spacing")
	}
}
