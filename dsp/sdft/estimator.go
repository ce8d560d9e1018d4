package sdft

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sdft/dsp/phasor"
)

var (
	// ErrInvalidBinCount is returned when an estimator is created with fewer
	// than one non-DC bin.
	ErrInvalidBinCount = errors.New("sdft: number of bins must be >= 1")

	// ErrIndexOutOfRange is returned by bin and channel accessors for an index
	// outside the valid range.
	ErrIndexOutOfRange = errors.New("sdft: index out of range")

	// ErrLengthMismatch is returned when caller-provided slices have the wrong
	// length.
	ErrLengthMismatch = errors.New("sdft: length mismatch")

	// ErrInvalidChannelCount is returned when a filter is created with fewer
	// than one channel.
	ErrInvalidChannelCount = errors.New("sdft: number of channels must be >= 1")

	// ErrChannelMismatch is returned when a frame does not hold exactly one
	// sample per channel.
	ErrChannelMismatch = errors.New("sdft: frame length does not match channel count")

	// ErrUnknownStrategy is returned by New for an unsupported Strategy.
	ErrUnknownStrategy = errors.New("sdft: unknown strategy")
)

// Estimator is the common contract of the sliding spectrum estimators.
type Estimator interface {
	// Slide feeds one sample and returns the reconstructed oldest sample of
	// the current window.
	Slide(x float64) float64

	// Complex returns bin in rectangular form.
	Complex(bin int) (phasor.Complex, error)

	// SetComplex overwrites bin; the polar form is updated to match.
	SetComplex(bin int, c phasor.Complex) error

	// Polar returns bin in polar form.
	Polar(bin int) (phasor.Polar, error)

	// SetPolar overwrites bin; the rectangular form is updated to match.
	SetPolar(bin int, p phasor.Polar) error

	// RealSum returns the sum of the real parts of all bins. With
	// recalculate false the value cached by the last Slide is returned;
	// pass true after SetComplex or SetPolar.
	RealSum(recalculate bool) float64

	// Spectrum copies all bins into re and im, each of length
	// NumFrequencies.
	Spectrum(re, im []float64) error

	// LatencyInSamples returns the window length 2K.
	LatencyInSamples() int

	// NumFrequencies returns the number of bins K+1, DC included.
	NumFrequencies() int

	// Reset returns the estimator to its freshly constructed state.
	Reset()
}

// Strategy selects the Estimator implementation built by New.
type Strategy int

const (
	// StrategyObject builds a Slider.
	StrategyObject Strategy = iota
	// StrategyCompact builds a Compact.
	StrategyCompact
)

func (s Strategy) String() string {
	switch s {
	case StrategyObject:
		return "object"
	case StrategyCompact:
		return "compact"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "object" or "compact" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "object", "":
		return StrategyObject, nil
	case "compact":
		return StrategyCompact, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

type config struct {
	strategy Strategy
}

// Option configures New and NewFilter.
type Option func(*config)

// WithStrategy selects the estimator implementation. The default is
// StrategyObject.
func WithStrategy(s Strategy) Option {
	return func(cfg *config) {
		cfg.strategy = s
	}
}

func applyOptions(opts ...Option) config {
	cfg := config{strategy: StrategyObject}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// New creates an Estimator with k non-DC bins using the selected strategy.
func New(k int, opts ...Option) (Estimator, error) {
	cfg := applyOptions(opts...)

	switch cfg.strategy {
	case StrategyObject:
		return NewSlider(k)
	case StrategyCompact:
		return NewCompact(k)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, cfg.strategy)
	}
}

func validateBinCount(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBinCount, k)
	}
	return nil
}

func checkBin(bin, count int) error {
	if bin < 0 || bin >= count {
		return fmt.Errorf("%w: bin %d not in [0, %d]", ErrIndexOutOfRange, bin, count-1)
	}
	return nil
}

func checkSpectrum(re, im []float64, count int) error {
	if len(re) != count || len(im) != count {
		return fmt.Errorf("%w: spectrum buffers have %d/%d bins, want %d", ErrLengthMismatch, len(re), len(im), count)
	}
	return nil
}

func slideBlock(e Estimator, dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d samples, src has %d", ErrLengthMismatch, len(dst), len(src))
	}

	for i, x := range src {
		dst[i] = e.Slide(x)
	}

	return nil
}
