package render

import (
	"github.com/san-kum/ventsim/internal/geom"
	"github.com/san-kum/ventsim/internal/vent"
)

// DrawState renders a complete system snapshot onto the canvas: the fixed
// frame and panels, then the moving parts at the current angle. It is a pure
// consumer of the snapshot; nothing here feeds back into the engine.
func DrawState(c *Canvas, s vent.SystemState) {
	c.Clear()
	c.Fit(s.Layout.Width, s.Layout.Height)

	drawFrame(c, s)

	poly(c, s.Dynamic.Flap)
	poly(c, s.Dynamic.Housing)
	poly(c, s.Dynamic.Rod)

	// Bracket link, where the variant has one.
	if s.Static.BracketLen > 0 {
		c.WorldLine(s.Dynamic.Mount.X, s.Dynamic.Mount.Y, s.Dynamic.Nut.X, s.Dynamic.Nut.Y)
	}

	nut := s.Dynamic.Nut
	poly(c, geom.Rect(nut.X-vent.NutWidth/2, nut.Y-vent.NutHeight/2, nut.X+vent.NutWidth/2, nut.Y+vent.NutHeight/2))

	c.WorldDot(s.Static.Pivot.X, s.Static.Pivot.Y)
}

func drawFrame(c *Canvas, s vent.SystemState) {
	lay := s.Layout

	// Outer frame edge.
	c.WorldLine(0, 0, 0, lay.Height)
	c.WorldLine(0, 0, vent.FrameThickness, 0)
	c.WorldLine(0, lay.Height, vent.FrameThickness, lay.Height)
	c.WorldLine(vent.FrameThickness, 0, vent.FrameThickness, lay.Height)

	// Insulation panel above and below the flap gap.
	insLeft := vent.FrameThickness
	poly(c, geom.Rect(insLeft, 0, lay.InsRight, lay.FlapTop))
	poly(c, geom.Rect(insLeft, lay.FlapBottom, lay.InsRight, lay.Height))

	// Fixed bottom panel under the flap gap.
	poly(c, s.Static.BottomQuad)
}

func poly(c *Canvas, p geom.Polygon) {
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		c.WorldLine(a.X, a.Y, b.X, b.Y)
	}
}
