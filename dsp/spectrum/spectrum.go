package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrLengthMismatch is returned when spectrum slices differ in length.
	ErrLengthMismatch = errors.New("spectrum: length mismatch")

	// ErrInvalidSize is returned for a non-positive transform size.
	ErrInvalidSize = errors.New("spectrum: transform size must be > 0")
)

func checkParts(dst, re, im []float64) error {
	if len(re) != len(im) || len(dst) != len(re) {
		return fmt.Errorf("%w: dst=%d re=%d im=%d", ErrLengthMismatch, len(dst), len(re), len(im))
	}
	return nil
}

// Magnitude returns sqrt(re[k]^2 + im[k]^2) for every bin.
func Magnitude(re, im []float64) ([]float64, error) {
	out := make([]float64, len(re))
	if err := MagnitudeInto(out, re, im); err != nil {
		return nil, err
	}
	return out, nil
}

// MagnitudeInto is the allocation-free form of Magnitude.
func MagnitudeInto(dst, re, im []float64) error {
	if err := checkParts(dst, re, im); err != nil {
		return err
	}

	vecmath.Magnitude(dst, re, im)

	return nil
}

// Power returns re[k]^2 + im[k]^2 for every bin.
func Power(re, im []float64) ([]float64, error) {
	out := make([]float64, len(re))
	if err := PowerInto(out, re, im); err != nil {
		return nil, err
	}
	return out, nil
}

// PowerInto is the allocation-free form of Power.
func PowerInto(dst, re, im []float64) error {
	if err := checkParts(dst, re, im); err != nil {
		return err
	}

	vecmath.Power(dst, re, im)

	return nil
}

// Phase returns atan2(im[k], re[k]) for every bin, in radians.
func Phase(re, im []float64) ([]float64, error) {
	out := make([]float64, len(re))
	if err := checkParts(out, re, im); err != nil {
		return nil, err
	}

	for i := range out {
		out[i] = math.Atan2(im[i], re[i])
	}

	return out, nil
}

// Split separates interleaved complex bins into real and imaginary parts.
func Split(bins []complex128) (re, im []float64) {
	re = make([]float64, len(bins))
	im = make([]float64, len(bins))

	for i, c := range bins {
		re[i], im[i] = real(c), imag(c)
	}

	return re, im
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0

	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}

		out[i] = phase[i] + offset
	}

	return out
}

// PeakBin returns the index of the largest value in mag, or -1 if mag is
// empty. Ties resolve to the lowest index.
func PeakBin(mag []float64) int {
	if len(mag) == 0 {
		return -1
	}
	return floats.MaxIdx(mag)
}

// BinFrequency returns the centre frequency in Hz of bin for a transform of
// size samples.
func BinFrequency(bin, size int, sampleRate float64) (float64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return float64(bin) * sampleRate / float64(size), nil
}

// OneSided folds an unnormalized full-length complex spectrum of a real
// signal, as returned by general-purpose FFT libraries, into the normalized
// half-spectrum layout: bin k becomes m_k*X[k]/size with m_k = 1 for DC and
// Nyquist and 2 otherwise.
func OneSided(full []complex128, size int) (re, im []float64, err error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	bins := size/2 + 1
	if len(full) < bins {
		return nil, nil, fmt.Errorf("%w: %d bins for size %d", ErrLengthMismatch, len(full), size)
	}

	re, im = Split(full[:bins])
	for k := range re {
		m := 2.0
		if k == 0 || 2*k == size {
			m = 1
		}

		re[k] *= m / float64(size)
		im[k] *= m / float64(size)
	}

	return re, im, nil
}
