// Package phasor provides small value types for a single complex number in
// rectangular ([Complex]) and polar ([Polar]) form, plus the conversions
// between them and between degrees and radians.
//
// Both types are plain values: copying produces an independent value, and
// equality (==) is exact floating-point equality of both components. They are
// returned by value everywhere in this module, so a caller never observes a
// previously returned phasor change underneath it.
//
// Near silence (magnitude close to zero) the phase of a phasor is numerically
// unstable; callers comparing phases must tolerate noise there.
package phasor
