// Package fft implements a radix-2 decimation-in-frequency (DIF) transform
// for real-valued, power-of-two-length sample blocks.
//
// The engine works on a single window at a time and returns the non-negative
// half of the spectrum (bins 0..N/2), normalized so that a cosine of amplitude
// A and phase phi that completes an integer number f of cycles in the window
// shows up at bin f as A*(cos phi + i*sin phi):
//
//	dif, err := fft.NewDIF(1024)
//	re, im, err := dif.Forward(samples)   // len(re) == len(im) == 513
//	back, err := dif.Inverse(re, im)      // back ~= samples
//
// A DIF value precomputes its twiddle and output permutation tables once in
// NewDIF and never modifies them afterwards. Forward and Inverse only touch
// per-call scratch memory, so one DIF may be shared by any number of
// goroutines.
//
// # Output ordering
//
// The butterfly recursion leaves its results in block-reversed order. The
// permutation returned by [Permutation] is built by repeatedly bisecting the
// index sequence and stacking all first halves before all second halves; for
// power-of-two sizes this is the classic bit-reversal permutation.
//
// # Inverse
//
// Inverse accepts only the half-spectrum. It runs the same butterfly network
// with conjugated twiddles over a buffer that holds bins 0..N/2 and zeros
// above, then keeps the real part. With the m_k/N normalization of Forward this
// is exactly the one-sided real inverse DFT, so Inverse(Forward(x)) returns x
// up to rounding and no mirrored bins need to be rebuilt.
package fft
