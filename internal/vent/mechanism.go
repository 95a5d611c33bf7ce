package vent

// Mechanism is one linkage topology of the vent actuator family. Variants
// share the static frame layout but differ in how the nut is driven and in
// how extension percentage maps onto the opening angle.
type Mechanism interface {
	Name() string

	// Resolve derives the angle-independent geometry for the given knobs.
	Resolve(p Params) StaticGeometry

	// SolveAtAngle computes every moving-part position for one candidate
	// angle (degrees, negative = open). It always returns a fully populated,
	// finite state for any angle in the sweep range.
	SolveAtAngle(g StaticGeometry, angleDeg float64) KinematicState

	// Collides evaluates the variant's collision predicate battery against
	// a solved state.
	Collides(g StaticGeometry, k KinematicState) bool

	// CurrentAngle maps the extension percentage onto [maxAngleDeg, 0].
	CurrentAngle(g StaticGeometry, maxAngleDeg, extension float64) float64

	// SweepLimitDeg is the hard mechanical stop of the angle sweep, as a
	// positive magnitude.
	SweepLimitDeg() float64
}
