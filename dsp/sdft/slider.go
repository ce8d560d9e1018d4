package sdft

import "github.com/cwbudde/algo-sdft/dsp/phasor"

// Slider is the reference sliding DFT. It keeps one bin value per frequency.
type Slider struct {
	bins    []bin
	window  float64
	realSum float64
}

var _ Estimator = (*Slider)(nil)

// NewSlider creates a Slider with k non-DC bins and a window of 2k samples.
// All bins start at zero amplitude and phase.
func NewSlider(k int) (*Slider, error) {
	if err := validateBinCount(k); err != nil {
		return nil, err
	}

	s := &Slider{
		bins:   make([]bin, k+1),
		window: 2 * float64(k),
	}

	for i := range s.bins {
		s.bins[i] = newBin(k, i)
	}

	return s, nil
}

// Slide feeds one sample into the window and returns the reconstructed
// oldest sample of the window, which is x delayed by 2k-1 samples.
func (s *Slider) Slide(x float64) float64 {
	change := (x - s.realSum) / s.window

	sum := 0.0
	for i := range s.bins {
		s.bins[i].update(change)
		sum += s.bins[i].value.Re
	}

	s.realSum = sum

	return sum
}

// SlideBlock slides every sample of src and writes the outputs to dst.
// dst and src must have the same length and may be the same slice.
func (s *Slider) SlideBlock(dst, src []float64) error {
	return slideBlock(s, dst, src)
}

// Complex returns the rectangular form of bin.
func (s *Slider) Complex(bin int) (phasor.Complex, error) {
	if err := checkBin(bin, len(s.bins)); err != nil {
		return phasor.Complex{}, err
	}
	return s.bins[bin].value, nil
}

// SetComplex overwrites bin with c.
func (s *Slider) SetComplex(bin int, c phasor.Complex) error {
	if err := checkBin(bin, len(s.bins)); err != nil {
		return err
	}
	s.bins[bin].setComplex(c)
	return nil
}

// Polar returns the polar form of bin.
func (s *Slider) Polar(bin int) (phasor.Polar, error) {
	if err := checkBin(bin, len(s.bins)); err != nil {
		return phasor.Polar{}, err
	}
	return s.bins[bin].polar, nil
}

// SetPolar overwrites bin with p.
func (s *Slider) SetPolar(bin int, p phasor.Polar) error {
	if err := checkBin(bin, len(s.bins)); err != nil {
		return err
	}
	s.bins[bin].setPolar(p)
	return nil
}

// Magnitude returns the magnitude of bin.
func (s *Slider) Magnitude(bin int) (float64, error) {
	p, err := s.Polar(bin)
	return p.Magnitude, err
}

// Phase returns the phase of bin in radians.
func (s *Slider) Phase(bin int) (float64, error) {
	p, err := s.Polar(bin)
	return p.Phase, err
}

// RealSum returns the sum of the real parts of all bins.
func (s *Slider) RealSum(recalculate bool) float64 {
	if recalculate {
		sum := 0.0
		for i := range s.bins {
			sum += s.bins[i].value.Re
		}
		s.realSum = sum
	}
	return s.realSum
}

// Spectrum copies the bins into re and im.
func (s *Slider) Spectrum(re, im []float64) error {
	if err := checkSpectrum(re, im, len(s.bins)); err != nil {
		return err
	}

	for i := range s.bins {
		re[i] = s.bins[i].value.Re
		im[i] = s.bins[i].value.Im
	}

	return nil
}

// LatencyInSamples returns the window length 2k.
func (s *Slider) LatencyInSamples() int { return int(s.window) }

// NumFrequencies returns k+1.
func (s *Slider) NumFrequencies() int { return len(s.bins) }

// Reset clears all bins and the cached output.
func (s *Slider) Reset() {
	for i := range s.bins {
		s.bins[i].reset()
	}
	s.realSum = 0
}
