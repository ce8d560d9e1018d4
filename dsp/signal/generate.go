// Package signal generates the deterministic test signals used to exercise
// the transforms: window-aligned tones, seeded noise and periodic repetition.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Tone is DC + Amplitude*cos(2*pi*Cycles*n/window + Phase). Cycles counts
// periods per analysis window, so an integer value lands exactly on a bin.
// Phase is in radians.
type Tone struct {
	Cycles    float64
	Amplitude float64
	Phase     float64
	DC        float64
}

// Generate returns length samples of the tone for the given window length.
func (t Tone) Generate(window, length int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("tone window must be > 0: %d", window)
	}
	if length <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", length)
	}

	out := make([]float64, length)
	step := 2 * math.Pi * t.Cycles / float64(window)
	for i := range out {
		out[i] = t.DC + t.Amplitude*math.Cos(step*float64(i)+t.Phase)
	}
	return out, nil
}

// Generator creates seeded noise.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed. The default is 1.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the configured seed.
func (g *Generator) Seed() int64 { return g.seed }

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
// Every call with the same seed returns the same samples.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Repeat concatenates times copies of period.
func Repeat(period []float64, times int) ([]float64, error) {
	if len(period) == 0 {
		return nil, fmt.Errorf("repeat period must not be empty")
	}
	if times <= 0 {
		return nil, fmt.Errorf("repeat count must be > 0: %d", times)
	}

	out := make([]float64, 0, len(period)*times)
	for range times {
		out = append(out, period...)
	}
	return out, nil
}
