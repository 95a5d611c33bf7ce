package vent

import "github.com/san-kum/ventsim/internal/geom"

// ResolveFrame derives the variant-independent part of the static geometry:
// the fixed panel stack, the pivot, the motor anchor, and the closed-position
// part outlines. Variants fill in their linkage-specific lengths afterwards.
func ResolveFrame(p Params) StaticGeometry {
	insLeft := FrameThickness
	insRight := insLeft + InsulationThickness
	flapLeft := insRight + PanelClearance
	flapRight := flapLeft + FlapThickness
	flapTop := TopPanelHeight
	flapBottom := flapTop + p.FlapHeight

	axisX := flapRight + MotorAxisOffset
	anchor := geom.Point{X: axisX, Y: flapBottom + p.MotorSpacing}

	height := flapBottom + PanelClearance + BottomPanelHeight
	if h := anchor.Y + HousingHeight/2; h > height {
		height = h
	}

	g := StaticGeometry{
		Layout: Layout{
			Width:      axisX + HousingWidth/2 + 20,
			Height:     height + 12,
			FlapLeft:   flapLeft,
			FlapRight:  flapRight,
			FlapTop:    flapTop,
			FlapBottom: flapBottom,
			InsRight:   insRight,
		},
		Pivot:       geom.Point{X: flapRight + PivotInsetX, Y: flapTop + PivotInsetY},
		MotorAnchor: anchor,
		MotorAxisX:  axisX,
		FlapQuad:    geom.Rect(flapLeft, flapTop, flapRight, flapBottom),
		HousingQuad: geom.Rect(axisX-HousingWidth/2, anchor.Y-HousingHeight/2, axisX+HousingWidth/2, anchor.Y+HousingHeight/2),
		BottomQuad:  geom.Rect(insLeft, flapBottom+PanelClearance, flapRight, flapBottom+PanelClearance+BottomPanelHeight),
	}
	return g
}
