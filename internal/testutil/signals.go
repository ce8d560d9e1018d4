package testutil

import (
	"math"
	"math/rand"
)

// BinCosine generates length samples of amplitude*cos(2*pi*bin*n/length + phase),
// a tone that completes exactly bin cycles in the block.
func BinCosine(bin int, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * float64(bin) / float64(length)
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i)+phase)
	}
	return out
}

// Tile repeats period the given number of times.
func Tile(period []float64, times int) []float64 {
	out := make([]float64, 0, len(period)*times)
	for range times {
		out = append(out, period...)
	}
	return out
}

// Sum adds the given signals element-wise. All signals must have the length
// of the first one.
func Sum(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
