// Package sdft implements a sliding discrete Fourier transform: a spectrum
// estimator that is updated one sample at a time instead of re-running a
// block transform over every window.
//
// An estimator created for K frequency bins tracks bins 0..K (K+1 phasors)
// over a window of 2K samples. Bin 0 is DC, bin K is Nyquist. Each call to
// Slide feeds one sample; after the first 2K samples (the fill transient) the
// bins hold, up to rounding, the same half-spectrum that fft.DIF.Forward would
// produce for the most recent 2K samples:
//
//	est, err := sdft.NewSlider(256)   // 512-sample window
//	for _, x := range stream {
//		delayed := est.Slide(x)
//		...
//	}
//	p, err := est.Polar(17)           // magnitude and phase of bin 17
//
// # Update rule
//
// Every step computes change = (x - previous output) / 2K. Each bin adds
// change*multiplier to the real part of its phasor (multiplier 1 for DC and
// Nyquist, 2 otherwise) and then rotates by pi*k/K. The DC bin never rotates,
// so it only accumulates. The value Slide returns is the sum of the real parts
// of all bins, which reconstructs the oldest sample of the current window:
// the estimator doubles as a 2K-1 sample delay line.
//
// # Implementations
//
// [Slider] keeps one small value per bin and is the reference
// implementation. [Compact] stores the same state in parallel flat slices.
// Both satisfy [Estimator] and produce the same output for the same input;
// [New] selects one with [WithStrategy]. [Filter] fans a multi-channel frame
// out to one estimator per channel.
//
// Estimators are not safe for concurrent use. Feed each instance from a single
// goroutine or guard it externally.
package sdft
