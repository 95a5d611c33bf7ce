package mech

import (
	"math"

	"github.com/san-kum/ventsim/internal/geom"
	"github.com/san-kum/ventsim/internal/vent"
)

// sliderPinRatio places the nut pin down the flap as a fraction of its height.
const sliderPinRatio = 0.55

// sliderMountReach stands the pin bracket off the flap's rear face. The deep
// standoff keeps the pin's bearing from the pivot ahead of the anchor's
// bearing for every legal configuration, which makes actuator travel strictly
// monotonic over the sweep and the travel-to-angle inversion single-rooted.
const sliderMountReach = 30

// Slider is the telescoping-rod variant: the nut is pinned to the flap and
// the whole actuator body swivels about the motor anchor, so the rod length
// (actuator travel) varies nonlinearly with the opening angle. Extension
// percentage therefore represents fractional travel, recovered back to an
// angle through a circle-circle solve.
type Slider struct {
	SweepLimit float64
}

func NewSlider() *Slider {
	return &Slider{SweepLimit: 90}
}

func (s *Slider) Name() string           { return "slider" }
func (s *Slider) SweepLimitDeg() float64 { return s.SweepLimit }

func (s *Slider) Resolve(p vent.Params) vent.StaticGeometry {
	g := vent.ResolveFrame(p)
	g.BracketMount = geom.Point{
		X: g.Layout.FlapRight + sliderMountReach,
		Y: g.Layout.FlapTop + sliderPinRatio*p.FlapHeight,
	}
	g.MountRadius = g.Pivot.Dist(g.BracketMount)
	g.MountBearing = g.Pivot.Bearing(g.BracketMount)
	g.BracketLen = 0 // no intermediate link in this topology
	return g
}

func (s *Slider) SolveAtAngle(g vent.StaticGeometry, angleDeg float64) vent.KinematicState {
	theta := geom.Deg2Rad(angleDeg)
	nut := g.BracketMount.RotateAround(g.Pivot, theta)

	body := geom.AimWithOffset(g.MotorAnchor, nut, vent.RodOffset)
	// Housing rests pointing straight up the axis; swing it to the body angle.
	housing := g.HousingQuad.RotateAround(g.MotorAnchor, body+math.Pi/2)

	// The rod exits where its line crosses the housing mouth edge. A vanishing
	// determinant (nut collapsed onto the anchor) falls back to the anchor.
	rodStart := g.MotorAnchor
	rodDir := nut.Sub(g.MotorAnchor).Normalize()
	mouth := housing[1].Sub(housing[0])
	if t, _, ok := geom.LineIntersect(g.MotorAnchor, rodDir, housing[0], mouth); ok {
		rodStart = g.MotorAnchor.Add(rodDir.Scale(t))
	}

	return vent.KinematicState{
		AngleDeg:  angleDeg,
		Flap:      g.FlapQuad.RotateAround(g.Pivot, theta),
		Mount:     nut,
		Nut:       nut,
		RodStart:  rodStart,
		Rod:       geom.ThickSegment(rodStart, nut, vent.RodHalfWidth),
		Housing:   housing,
		BodyAngle: body,
		Travel:    g.MotorAnchor.Dist(nut),
	}
}

func (s *Slider) Collides(g vent.StaticGeometry, k vent.KinematicState) bool {
	minClear := vent.HousingHeight/2 + vent.NutHeight/2 + vent.SafetyMargin
	if k.Travel < minClear {
		return true
	}
	if k.Flap[0].X < g.Layout.InsRight || k.Flap[1].X < g.Layout.InsRight {
		return true
	}
	if k.Flap.Overlaps(k.Housing) {
		return true
	}
	if k.Rod.Overlaps(g.BottomQuad) {
		return true
	}
	return k.Flap.Overlaps(k.Rod)
}

func (s *Slider) CurrentAngle(g vent.StaticGeometry, maxAngleDeg, extension float64) float64 {
	extension = geom.Clamp(extension, 0, 100)
	if extension <= 0 || maxAngleDeg >= 0 {
		return 0
	}
	if extension >= 100 {
		return maxAngleDeg
	}
	t0 := s.SolveAtAngle(g, 0).Travel
	t1 := s.SolveAtAngle(g, maxAngleDeg).Travel
	target := t0 + extension/100*(t1-t0)
	return geom.Clamp(s.RecoverAngle(g, maxAngleDeg, target), maxAngleDeg, 0)
}

// RecoverAngle inverts an actuator travel distance back to the flap angle
// whose nut position sits at that distance from the motor anchor. Infeasible
// travels (outside the reachable annulus) fall back to the closed angle.
func (s *Slider) RecoverAngle(g vent.StaticGeometry, maxAngleDeg, travel float64) float64 {
	p1, p2, ok := geom.CircleCircle(g.MotorAnchor, travel, g.Pivot, g.MountRadius)
	if !ok {
		return 0
	}
	a1 := s.pinAngle(g, p1)
	a2 := s.pinAngle(g, p2)
	const slack = 1e-6
	if a1 >= maxAngleDeg-slack && a1 <= slack {
		return a1
	}
	if a2 >= maxAngleDeg-slack && a2 <= slack {
		return a2
	}
	return 0
}

// pinAngle converts a candidate nut position into an opening angle relative
// to the closed-position mount bearing, normalized into (-180, 180].
func (s *Slider) pinAngle(g vent.StaticGeometry, p geom.Point) float64 {
	d := geom.Rad2Deg(g.Pivot.Bearing(p) - g.MountBearing)
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}
