// Package anim holds the animation driver that sweeps the actuator extension
// back and forth. It lives entirely outside the pure engine and communicates
// with it through a single percentage scalar.
package anim

import "github.com/san-kum/ventsim/internal/geom"

// Driver is a clock-driven state machine over {extension percent, direction}.
// It advances at a rate derived from the configured frequency and bounces at
// the 0% and 100% bounds. A zero frequency freezes it.
type Driver struct {
	Percent   float64
	Direction float64
}

func NewDriver() *Driver {
	return &Driver{Percent: 0, Direction: 1}
}

// Tick advances the extension by deltaMs of wall time at speedHz full
// open-close cycles per second and returns the new percentage.
func (d *Driver) Tick(deltaMs, speedHz float64) float64 {
	if speedHz <= 0 || deltaMs <= 0 {
		return d.Percent
	}
	// One full cycle covers 200 percentage points (0 -> 100 -> 0).
	step := speedHz * 200 * deltaMs / 1000
	for step > 0 {
		remain := 100 - d.Percent
		if d.Direction < 0 {
			remain = d.Percent
		}
		if step < remain {
			d.Percent += d.Direction * step
			break
		}
		d.Percent += d.Direction * remain
		step -= remain
		d.Direction = -d.Direction
	}
	d.Percent = geom.Clamp(d.Percent, 0, 100)
	return d.Percent
}

// Reset returns the driver to the closed position, sweeping upward.
func (d *Driver) Reset() {
	d.Percent = 0
	d.Direction = 1
}
