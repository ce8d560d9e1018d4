package sdft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sdft/dsp/phasor"
)

// Compact is a sliding DFT that stores its bins as parallel flat slices
// instead of one value per bin. It computes exactly what Slider computes.
type Compact struct {
	re    []float64
	im    []float64
	mag   []float64
	phase []float64
	multi []float64
	turn  []float64

	window  float64
	realSum float64
}

var _ Estimator = (*Compact)(nil)

// NewCompact creates a Compact with k non-DC bins and a window of 2k samples.
func NewCompact(k int) (*Compact, error) {
	if err := validateBinCount(k); err != nil {
		return nil, err
	}

	n := k + 1
	c := &Compact{
		re:     make([]float64, n),
		im:     make([]float64, n),
		mag:    make([]float64, n),
		phase:  make([]float64, n),
		multi:  make([]float64, n),
		turn:   make([]float64, n),
		window: 2 * float64(k),
	}

	for i := range n {
		c.turn[i] = math.Pi / float64(k) * float64(i)
		c.multi[i] = binMultiplier(k, i)
	}

	return c, nil
}

// Slide feeds one sample and returns the reconstructed oldest sample of the
// window.
func (c *Compact) Slide(x float64) float64 {
	change := (x - c.realSum) / c.window

	c.re[0] += change * c.multi[0]
	c.mag[0], c.phase[0] = dcPolar(c.re[0], c.im[0])
	sum := c.re[0]

	for i := 1; i < len(c.re); i++ {
		r := c.re[i] + change*c.multi[i]
		im := c.im[i]

		mag := math.Sqrt(r*r + im*im)
		phs := math.Atan2(im, r) + c.turn[i]
		sin, cos := math.Sincos(phs)

		c.mag[i] = mag
		c.phase[i] = phs
		c.re[i] = cos * mag
		c.im[i] = sin * mag
		sum += c.re[i]
	}

	c.realSum = sum

	return sum
}

// SlideBlock slides every sample of src and writes the outputs to dst.
func (c *Compact) SlideBlock(dst, src []float64) error {
	return slideBlock(c, dst, src)
}

// Complex returns the rectangular form of bin.
func (c *Compact) Complex(bin int) (phasor.Complex, error) {
	if err := checkBin(bin, len(c.re)); err != nil {
		return phasor.Complex{}, err
	}
	return phasor.Complex{Re: c.re[bin], Im: c.im[bin]}, nil
}

// SetComplex overwrites bin with v.
func (c *Compact) SetComplex(bin int, v phasor.Complex) error {
	if err := checkBin(bin, len(c.re)); err != nil {
		return err
	}

	p := phasor.ToPolar(v)
	c.re[bin], c.im[bin] = v.Re, v.Im
	c.mag[bin], c.phase[bin] = p.Magnitude, p.Phase

	return nil
}

// Polar returns the polar form of bin.
func (c *Compact) Polar(bin int) (phasor.Polar, error) {
	if err := checkBin(bin, len(c.re)); err != nil {
		return phasor.Polar{}, err
	}
	return phasor.Polar{Magnitude: c.mag[bin], Phase: c.phase[bin]}, nil
}

// SetPolar overwrites bin with p.
func (c *Compact) SetPolar(bin int, p phasor.Polar) error {
	if err := checkBin(bin, len(c.re)); err != nil {
		return err
	}

	v := phasor.ToComplex(p)
	c.re[bin], c.im[bin] = v.Re, v.Im
	c.mag[bin], c.phase[bin] = p.Magnitude, p.Phase

	return nil
}

// RealSum returns the sum of the real parts of all bins.
func (c *Compact) RealSum(recalculate bool) float64 {
	if recalculate {
		c.realSum = floats.Sum(c.re)
	}
	return c.realSum
}

// Spectrum copies the bins into re and im.
func (c *Compact) Spectrum(re, im []float64) error {
	if err := checkSpectrum(re, im, len(c.re)); err != nil {
		return err
	}

	copy(re, c.re)
	copy(im, c.im)

	return nil
}

// Magnitudes writes the magnitude of every bin into dst, which must hold
// NumFrequencies values.
func (c *Compact) Magnitudes(dst []float64) error {
	if len(dst) != len(c.re) {
		return fmt.Errorf("%w: dst has %d bins, want %d", ErrLengthMismatch, len(dst), len(c.re))
	}

	vecmath.Magnitude(dst, c.re, c.im)

	return nil
}

// LatencyInSamples returns the window length 2k.
func (c *Compact) LatencyInSamples() int { return int(c.window) }

// NumFrequencies returns k+1.
func (c *Compact) NumFrequencies() int { return len(c.re) }

// Reset clears all bins and the cached output.
func (c *Compact) Reset() {
	clear(c.re)
	clear(c.im)
	clear(c.mag)
	clear(c.phase)
	c.realSum = 0
}
