package vent

import (
	"math"

	"github.com/san-kum/ventsim/internal/geom"
)

// Fixed layout constants shared by all mechanism variants, in millimeters.
// Horizontal stacking is outer frame -> insulation panel -> moving flap ->
// hinge hardware -> pivot -> actuator; vertical stacking is top panel ->
// flap gap -> bottom panel.
const (
	FrameThickness      = 18.0
	InsulationThickness = 30.0
	FlapThickness       = 24.0
	PanelClearance      = 2.0
	TopPanelHeight      = 60.0
	BottomPanelHeight   = 60.0

	PivotInsetX = 4.0
	PivotInsetY = 6.0

	BracketDrop     = 26.0 // bracket mount below the flap top edge
	BracketReach    = 8.0  // bracket mount outboard of the flap rear face
	MotorAxisOffset = 46.0 // motor axis outboard of the flap rear face

	HousingWidth  = 36.0
	HousingHeight = 48.0
	RodOffset     = 5.0 // rod exit off the housing centerline
	RodHalfWidth  = 3.0
	NutWidth      = 12.0
	NutHeight     = 10.0

	MinBracketLen = 40.0
	SafetyMargin  = 3.0
	ThreadPitch   = 8.0
)

// Params are the user-facing knobs. Values are raw input; callers clamp them
// through config.Limits before handing them to a mechanism.
type Params struct {
	FlapHeight   float64 // length of the moving flap panel
	MotorSpacing float64 // gap between the flap bottom edge and the motor anchor
	Extension    float64 // actuator travel percentage, 0..100
	ScanStepDeg  float64 // collision sweep resolution
}

// Layout carries canvas sizing hints for renderers.
type Layout struct {
	Width      float64
	Height     float64
	FlapLeft   float64
	FlapRight  float64
	FlapTop    float64
	FlapBottom float64
	InsRight   float64
}

// StaticGeometry is the configuration-derived, angle-independent frame:
// anchor points and lengths solved once per configuration and immutable
// afterwards.
type StaticGeometry struct {
	Layout Layout

	Pivot        geom.Point // flap hinge
	BracketMount geom.Point // link attachment on the flap, at the closed angle
	MotorAnchor  geom.Point // actuator pivot / housing reference
	MotorAxisX   float64    // vertical travel axis (linkage variant)

	BracketLen   float64 // solved link length, never below MinBracketLen
	MountRadius  float64 // pivot-to-mount distance
	MountBearing float64 // pivot-to-mount bearing at the closed angle

	FlapQuad    geom.Polygon // closed-position flap slab
	HousingQuad geom.Polygon // motor housing at rest
	BottomQuad  geom.Polygon // fixed bottom panel
}

// KinematicState holds every moving-part position for one candidate angle.
// Recomputed on demand, never persisted.
type KinematicState struct {
	AngleDeg  float64
	Flap      geom.Polygon
	Mount     geom.Point
	Nut       geom.Point
	RodStart  geom.Point
	Rod       geom.Polygon
	Housing   geom.Polygon
	BodyAngle float64 // actuator body rotation, distinct from the flap angle
	Travel    float64 // actuator travel at this angle
}

// Dynamic is the renderer-facing view of a KinematicState plus cosmetic
// derived values that carry no mechanical meaning.
type Dynamic struct {
	KinematicState
	ThreadOffset float64
}

// SystemState is the complete output snapshot. Angles follow the negative-
// opens convention: MaxAngleDeg <= CurrentAngleDeg <= 0.
type SystemState struct {
	Variant         string
	MaxAngleDeg     float64
	CurrentAngleDeg float64
	Extension       float64
	Layout          Layout
	Static          StaticGeometry
	Dynamic         Dynamic
}

// IsFinite reports whether every numeric field of the snapshot is finite.
func (s SystemState) IsFinite() bool {
	for _, v := range []float64{
		s.MaxAngleDeg, s.CurrentAngleDeg, s.Extension,
		s.Dynamic.BodyAngle, s.Dynamic.Travel, s.Dynamic.ThreadOffset,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	pts := []geom.Point{s.Static.Pivot, s.Static.MotorAnchor, s.Dynamic.Nut, s.Dynamic.RodStart, s.Dynamic.Mount}
	for _, p := range pts {
		if !p.IsFinite() {
			return false
		}
	}
	for _, poly := range []geom.Polygon{s.Dynamic.Flap, s.Dynamic.Rod, s.Dynamic.Housing} {
		for _, p := range poly {
			if !p.IsFinite() {
				return false
			}
		}
	}
	return true
}
