package main

import (
	"github.com/cwbudde/algo-sdft/dsp/phasor"
	"github.com/cwbudde/algo-sdft/dsp/signal"
)

// toneConfig is the flag form of a test tone; Freq counts cycles per window
// and Phase is in degrees.
type toneConfig struct {
	Freq      float64 `json:"freq" yaml:"freq"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Phase     float64 `json:"phase_deg" yaml:"phase_deg"`
	DC        float64 `json:"dc" yaml:"dc"`
}

func (c toneConfig) signal() signal.Tone {
	return signal.Tone{
		Cycles:    c.Freq,
		Amplitude: c.Amplitude,
		Phase:     phasor.DegreesToRadians(c.Phase),
		DC:        c.DC,
	}
}
