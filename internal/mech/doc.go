// Package mech implements the mechanism variants of the vent actuator family.
//
// Each variant implements [vent.Mechanism], sharing the frame layout and the
// geometry primitives while differing in linkage topology:
//
//   - [Linkage]: nut on the vertical motor axis, driven through a bracket
//     link, linear extension-to-angle mapping
//   - [Slider]: nut pinned to the flap, pivoting telescopic actuator,
//     inverse extension mapping through actuator travel
//
// Variants are selected by name through [New].
package mech
