package mech

import (
	"math"

	"github.com/san-kum/ventsim/internal/geom"
	"github.com/san-kum/ventsim/internal/vent"
)

// Linkage is the two-bar variant: the actuator stands fixed below the flap,
// its nut travels along the vertical motor axis, and a rigid bracket links
// the nut to a mount on the flap's rear face. Extension percentage maps
// linearly onto the opening angle.
type Linkage struct {
	SweepLimit float64
}

func NewLinkage() *Linkage {
	return &Linkage{SweepLimit: 90}
}

func (l *Linkage) Name() string           { return "linkage" }
func (l *Linkage) SweepLimitDeg() float64 { return l.SweepLimit }

func (l *Linkage) Resolve(p vent.Params) vent.StaticGeometry {
	g := vent.ResolveFrame(p)
	g.BracketMount = geom.Point{
		X: g.Layout.FlapRight + vent.BracketReach,
		Y: g.Layout.FlapTop + vent.BracketDrop,
	}
	g.MountRadius = g.Pivot.Dist(g.BracketMount)
	g.MountBearing = g.Pivot.Bearing(g.BracketMount)

	// The bracket must park the nut flush with the rod's retracted stop at
	// the closed angle. Solve the mount-to-anchor line against the stop
	// height, then floor the result at the declared minimum.
	yStop := g.MotorAnchor.Y - vent.HousingHeight/2 - vent.NutHeight - vent.SafetyMargin
	dir := g.MotorAnchor.Sub(g.BracketMount)
	length := vent.MinBracketLen
	if t, _, ok := geom.LineIntersect(g.BracketMount, dir, geom.Point{X: 0, Y: yStop}, geom.Point{X: 1, Y: 0}); ok {
		at := g.BracketMount.Add(dir.Scale(t))
		length = math.Max(length, g.BracketMount.Dist(at))
	}
	g.BracketLen = length
	return g
}

func (l *Linkage) SolveAtAngle(g vent.StaticGeometry, angleDeg float64) vent.KinematicState {
	theta := geom.Deg2Rad(angleDeg)
	mount := g.BracketMount.RotateAround(g.Pivot, theta)
	nut := geom.VerticalCircleRoot(mount, g.BracketLen, g.MotorAxisX)

	rodStart := geom.Point{X: g.MotorAxisX, Y: g.MotorAnchor.Y - vent.HousingHeight/2}
	body := geom.AimWithOffset(g.MotorAnchor, nut, vent.RodOffset)

	return vent.KinematicState{
		AngleDeg:  angleDeg,
		Flap:      g.FlapQuad.RotateAround(g.Pivot, theta),
		Mount:     mount,
		Nut:       nut,
		RodStart:  rodStart,
		Rod:       geom.ThickSegment(rodStart, nut, vent.RodHalfWidth),
		Housing:   g.HousingQuad,
		BodyAngle: body,
		Travel:    rodStart.Dist(nut),
	}
}

func (l *Linkage) Collides(g vent.StaticGeometry, k vent.KinematicState) bool {
	// Nut clearance against the housing.
	minClear := vent.HousingHeight/2 + vent.NutHeight/2 + vent.SafetyMargin
	if k.Nut.Dist(g.MotorAnchor) < minClear {
		return true
	}
	// Top corners of the flap must stay off the insulation face.
	if k.Flap[0].X < g.Layout.InsRight || k.Flap[1].X < g.Layout.InsRight {
		return true
	}
	if k.Flap.Overlaps(g.HousingQuad) {
		return true
	}
	return k.Flap.Overlaps(k.Rod)
}

func (l *Linkage) CurrentAngle(g vent.StaticGeometry, maxAngleDeg, extension float64) float64 {
	return geom.Clamp(extension, 0, 100) / 100 * maxAngleDeg
}
