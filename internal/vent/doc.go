// Package vent defines the core types of the window-vent kinematics engine.
//
// A [Mechanism] is one linkage topology of the actuator family. Each variant
// is a pure function of its [Params]: Resolve derives the [StaticGeometry],
// SolveAtAngle produces a [KinematicState] for a candidate angle, and
// Collides evaluates the variant's collision predicates. The engine package
// composes these into a [SystemState] snapshot.
//
// Angles are degrees at the API boundary and follow the negative-opens
// convention: 0 is closed, the most-open collision-free angle is MaxAngleDeg
// (negative), and CurrentAngleDeg always lies between the two.
package vent
