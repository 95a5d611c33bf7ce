package engine

import (
	"math"

	"github.com/san-kum/ventsim/internal/geom"
	"github.com/san-kum/ventsim/internal/vent"
)

// scanKey holds exactly the inputs that affect the static geometry and the
// collision sweep. Extension and animation speed are deliberately absent:
// changing them must not trigger a rescan.
type scanKey struct {
	flapHeight   float64
	motorSpacing float64
	scanStep     float64
}

// Engine composes the static geometry resolver, the kinematic solver, the
// collision scanner and the snapshot assembler for one mechanism variant.
// Every Snapshot call is a pure function of the current parameters; the only
// state is the memoized scan result.
type Engine struct {
	mech   vent.Mechanism
	params vent.Params

	key      scanKey
	static   vent.StaticGeometry
	maxAngle float64
	resolved bool
}

func New(m vent.Mechanism, p vent.Params) *Engine {
	return &Engine{mech: m, params: p}
}

func (e *Engine) Mechanism() vent.Mechanism { return e.mech }
func (e *Engine) Params() vent.Params       { return e.params }

func (e *Engine) SetParams(p vent.Params) { e.params = p }

// SetExtension updates only the actuator travel percentage.
func (e *Engine) SetExtension(pct float64) {
	e.params.Extension = geom.Clamp(pct, 0, 100)
}

// ensure recomputes the static geometry and the max-angle scan when a
// geometry-affecting parameter changed since the last query.
func (e *Engine) ensure() {
	key := scanKey{
		flapHeight:   e.params.FlapHeight,
		motorSpacing: e.params.MotorSpacing,
		scanStep:     e.params.ScanStepDeg,
	}
	if e.resolved && key == e.key {
		return
	}
	e.key = key
	e.static = e.mech.Resolve(e.params)
	e.maxAngle = FindMaxAngle(e.mech, e.static, e.params.ScanStepDeg)
	e.resolved = true
}

// MaxAngle returns the collision-free opening limit for the current
// configuration, in degrees (negative or zero).
func (e *Engine) MaxAngle() float64 {
	e.ensure()
	return e.maxAngle
}

// Static returns the resolved static geometry.
func (e *Engine) Static() vent.StaticGeometry {
	e.ensure()
	return e.static
}

// CheckCollision evaluates the variant's collision predicates at one
// candidate angle.
func (e *Engine) CheckCollision(angleDeg float64) bool {
	e.ensure()
	return e.mech.Collides(e.static, e.mech.SolveAtAngle(e.static, angleDeg))
}

// Snapshot assembles the complete system state at the current extension.
// The result is always internally consistent: the dynamic record corresponds
// exactly to CurrentAngleDeg, which lies in [MaxAngleDeg, 0].
func (e *Engine) Snapshot() vent.SystemState {
	e.ensure()

	ext := geom.Clamp(e.params.Extension, 0, 100)
	cur := e.mech.CurrentAngle(e.static, e.maxAngle, ext)
	cur = geom.Clamp(cur, e.maxAngle, 0)

	k := e.mech.SolveAtAngle(e.static, cur)
	return vent.SystemState{
		Variant:         e.mech.Name(),
		MaxAngleDeg:     e.maxAngle,
		CurrentAngleDeg: cur,
		Extension:       ext,
		Layout:          e.static.Layout,
		Static:          e.static,
		Dynamic: vent.Dynamic{
			KinematicState: k,
			ThreadOffset:   math.Mod(k.Travel, vent.ThreadPitch),
		},
	}
}
