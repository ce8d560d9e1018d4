package sdft

import (
	"fmt"

	"github.com/cwbudde/algo-sdft/dsp/phasor"
)

// Filter runs one independent estimator per channel of an interleaved
// multi-channel stream, for example two for stereo.
type Filter struct {
	channels []Estimator
}

// NewFilter creates a Filter with k non-DC bins per channel.
func NewFilter(k, channels int, opts ...Option) (*Filter, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}

	f := &Filter{channels: make([]Estimator, channels)}
	for ch := range f.channels {
		est, err := New(k, opts...)
		if err != nil {
			return nil, err
		}
		f.channels[ch] = est
	}

	return f, nil
}

// Slide feeds one frame, one sample per channel, and replaces every element
// of frame in place with its channel's output.
func (f *Filter) Slide(frame []float64) error {
	if len(frame) != len(f.channels) {
		return fmt.Errorf("%w: got %d samples for %d channels", ErrChannelMismatch, len(frame), len(f.channels))
	}

	for ch, est := range f.channels {
		frame[ch] = est.Slide(frame[ch])
	}

	return nil
}

// RealSum returns the cached output of every channel.
func (f *Filter) RealSum() []float64 {
	out := make([]float64, len(f.channels))
	for ch, est := range f.channels {
		out[ch] = est.RealSum(false)
	}
	return out
}

// Channels returns the number of channels.
func (f *Filter) Channels() int { return len(f.channels) }

// Channel returns the estimator of channel ch.
func (f *Filter) Channel(ch int) (Estimator, error) {
	if ch < 0 || ch >= len(f.channels) {
		return nil, fmt.Errorf("%w: channel %d not in [0, %d]", ErrIndexOutOfRange, ch, len(f.channels)-1)
	}
	return f.channels[ch], nil
}

// Complex returns bin of channel ch in rectangular form.
func (f *Filter) Complex(ch, bin int) (phasor.Complex, error) {
	est, err := f.Channel(ch)
	if err != nil {
		return phasor.Complex{}, err
	}
	return est.Complex(bin)
}

// Polar returns bin of channel ch in polar form.
func (f *Filter) Polar(ch, bin int) (phasor.Polar, error) {
	est, err := f.Channel(ch)
	if err != nil {
		return phasor.Polar{}, err
	}
	return est.Polar(bin)
}

// Reset resets every channel.
func (f *Filter) Reset() {
	for _, est := range f.channels {
		est.Reset()
	}
}
