// Package spectrum provides helpers for half-spectra stored as separate real
// and imaginary slices, the layout produced by the fft and sdft packages.
//
// It covers bulk magnitude, power and phase extraction, phase unwrapping,
// peak search and labelled per-bin reports.
package spectrum
