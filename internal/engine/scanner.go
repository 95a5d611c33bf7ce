package engine

import "github.com/san-kum/ventsim/internal/vent"

// DefaultScanStepDeg is the sweep resolution used when the configuration
// does not declare one.
const DefaultScanStepDeg = 0.5

// FindMaxAngle sweeps candidate angles from the closed position toward open
// (negative direction) at a fixed step, stopping at the first angle where
// any collision predicate fires and returning the previous, last known-safe
// angle. A collision at the closed position yields 0; a clean sweep yields
// the mechanism's hard stop.
func FindMaxAngle(m vent.Mechanism, g vent.StaticGeometry, stepDeg float64) float64 {
	if stepDeg <= 0 {
		stepDeg = DefaultScanStepDeg
	}
	limit := m.SweepLimitDeg()

	if m.Collides(g, m.SolveAtAngle(g, 0)) {
		return 0
	}
	last := 0.0
	for a := -stepDeg; a >= -limit; a -= stepDeg {
		if m.Collides(g, m.SolveAtAngle(g, a)) {
			return last
		}
		last = a
	}
	return -limit
}
