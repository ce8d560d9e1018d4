package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-sdft/dsp/core"
	"github.com/cwbudde/algo-sdft/dsp/phasor"
)

// Bin is one labelled line of a spectrum report.
type Bin struct {
	Index     int     `json:"index" yaml:"index"`
	Frequency float64 `json:"frequency_hz" yaml:"frequency_hz"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Phase     float64 `json:"phase_deg" yaml:"phase_deg"`
	Level     float64 `json:"level_db" yaml:"level_db"`
}

// Describe labels every bin of a half-spectrum computed over size samples
// with its frequency, magnitude, phase in degrees and level in dB.
func Describe(re, im []float64, size int, opts ...core.AnalysisOption) ([]Bin, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	mag, err := Magnitude(re, im)
	if err != nil {
		return nil, err
	}

	cfg := core.ApplyAnalysisOptions(opts...)
	out := make([]Bin, len(mag))

	for k := range out {
		freq, _ := BinFrequency(k, size, cfg.SampleRate)
		phase := phasor.Complex{Re: re[k], Im: im[k]}.Arg()

		out[k] = Bin{
			Index:     k,
			Frequency: freq,
			Magnitude: mag[k],
			Phase:     phasor.RadiansToDegrees(phase),
			Level:     core.LevelDB(mag[k], cfg.FloorDB),
		}
	}

	return out, nil
}
