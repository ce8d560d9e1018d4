package fft

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidSize is returned when a transform size is not a power of two.
	ErrInvalidSize = errors.New("fft: size must be a power of two")

	// ErrLengthMismatch is returned when input or output slices do not match
	// the transform size.
	ErrLengthMismatch = errors.New("fft: length does not match transform size")
)

// scratch holds one call's working buffers.
type scratch struct {
	re []float64
	im []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{} },
}

func getScratch(n int) *scratch {
	s := scratchPool.Get().(*scratch)
	if cap(s.re) < n {
		s.re = make([]float64, n)
		s.im = make([]float64, n)
	} else {
		s.re = s.re[:n]
		s.im = s.im[:n]
	}
	return s
}

func putScratch(s *scratch) {
	scratchPool.Put(s)
}

// DIF is a radix-2 decimation-in-frequency transform of a fixed size.
//
// A DIF is immutable after construction and safe for concurrent use.
type DIF struct {
	size int
	cos  []float64
	sin  []float64
	perm []int
}

// NewDIF creates a transform for blocks of size samples.
//
// size must be a power of two. The twiddle table (size/2 entries) and the
// output permutation (size entries) are computed here once, so a DIF should be
// created once and reused for many blocks.
func NewDIF(size int) (*DIF, error) {
	perm, err := Permutation(size)
	if err != nil {
		return nil, err
	}

	half := size / 2
	d := &DIF{
		size: size,
		cos:  make([]float64, half),
		sin:  make([]float64, half),
		perm: perm,
	}

	for i := range half {
		d.sin[i], d.cos[i] = math.Sincos(2 * math.Pi * float64(i) / float64(size))
	}

	return d, nil
}

// Len returns the transform size N.
func (d *DIF) Len() int { return d.size }

// Bins returns the number of half-spectrum bins, N/2+1.
func (d *DIF) Bins() int { return d.size/2 + 1 }

// Permutation returns a copy of the output permutation table.
func (d *DIF) Permutation() []int {
	out := make([]int, len(d.perm))
	copy(out, d.perm)
	return out
}

// Forward transforms exactly N real samples into the half-spectrum.
//
// re[k] and im[k] hold bin k for k in 0..N/2. Bin 0 is DC and bin N/2 is
// Nyquist; every bin in between already includes its mirrored negative
// frequency. All bins are divided by N, so a constant input C yields re[0] = C.
func (d *DIF) Forward(samples []float64) (re, im []float64, err error) {
	if len(samples) != d.size {
		return nil, nil, fmt.Errorf("%w: got %d samples, want %d", ErrLengthMismatch, len(samples), d.size)
	}

	re = make([]float64, d.Bins())
	im = make([]float64, d.Bins())
	d.forward(re, im, samples)

	return re, im, nil
}

// ForwardInto is like Forward but writes into caller-provided slices of
// length N/2+1. It is an allocation-free alternative for hot loops; re and im
// must not alias samples.
func (d *DIF) ForwardInto(re, im, samples []float64) error {
	if len(samples) != d.size {
		return fmt.Errorf("%w: got %d samples, want %d", ErrLengthMismatch, len(samples), d.size)
	}

	if len(re) != d.Bins() || len(im) != d.Bins() {
		return fmt.Errorf("%w: output has %d/%d bins, want %d", ErrLengthMismatch, len(re), len(im), d.Bins())
	}

	d.forward(re, im, samples)

	return nil
}

func (d *DIF) forward(re, im, samples []float64) {
	s := getScratch(d.size)
	defer putScratch(s)

	copy(s.re, samples)
	clear(s.im)

	d.butterflies(s.re, s.im, -1)

	half := d.size / 2
	for k := 0; k <= half; k++ {
		re[k] = s.re[d.perm[k]]
		im[k] = s.im[d.perm[k]]
	}

	// Fold the negative frequencies onto their positive mirrors. For real
	// input bin N-k is the conjugate of bin k.
	for k := 1; k < half; k++ {
		mirror := d.perm[d.size-k]
		re[k] += s.re[mirror]
		im[k] -= s.im[mirror]
	}

	scale := 1 / float64(d.size)
	vecmath.ScaleBlock(re, re, scale)
	vecmath.ScaleBlock(im, im, scale)
}

// Inverse reconstructs N real samples from a half-spectrum of N/2+1 bins as
// produced by Forward.
func (d *DIF) Inverse(re, im []float64) ([]float64, error) {
	if err := d.checkSpectrum(re, im); err != nil {
		return nil, err
	}

	out := make([]float64, d.size)
	d.inverse(out, re, im)

	return out, nil
}

// InverseInto is like Inverse but writes into dst, which must hold N samples.
func (d *DIF) InverseInto(dst, re, im []float64) error {
	if err := d.checkSpectrum(re, im); err != nil {
		return err
	}

	if len(dst) != d.size {
		return fmt.Errorf("%w: output has %d samples, want %d", ErrLengthMismatch, len(dst), d.size)
	}

	d.inverse(dst, re, im)

	return nil
}

func (d *DIF) checkSpectrum(re, im []float64) error {
	if len(re) != len(im) {
		return fmt.Errorf("%w: real has %d bins, imaginary has %d", ErrLengthMismatch, len(re), len(im))
	}

	if len(re) != d.Bins() {
		return fmt.Errorf("%w: got %d bins, want %d", ErrLengthMismatch, len(re), d.Bins())
	}

	return nil
}

func (d *DIF) inverse(dst, re, im []float64) {
	s := getScratch(d.size)
	defer putScratch(s)

	clear(s.re)
	clear(s.im)
	n := copy(s.re, re)
	copy(s.im[:n], im)

	d.butterflies(s.re, s.im, 1)

	for i := range dst {
		dst[i] = s.re[d.perm[i]]
	}
}

// butterflies runs the in-place DIF network. sign selects the twiddle
// direction: -1 multiplies by exp(-i*theta), +1 by exp(+i*theta).
func (d *DIF) butterflies(re, im []float64, sign float64) {
	step := 1
	for size := d.size; size > 1; size /= 2 {
		half := size / 2

		for start := 0; start < d.size; start += size {
			for k := range half {
				a := start + k
				b := a + half

				diffRe := re[a] - re[b]
				diffIm := im[a] - im[b]
				re[a] += re[b]
				im[a] += im[b]

				c := d.cos[k*step]
				s := sign * d.sin[k*step]
				re[b] = diffRe*c - diffIm*s
				im[b] = diffRe*s + diffIm*c
			}
		}

		step *= 2
	}
}
