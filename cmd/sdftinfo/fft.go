package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sdft/dsp/core"
	"github.com/cwbudde/algo-sdft/dsp/fft"
	"github.com/cwbudde/algo-sdft/dsp/spectrum"
)

type fftReport struct {
	Size           int            `json:"size" yaml:"size"`
	Tone           toneConfig     `json:"tone" yaml:"tone"`
	PeakBin        int            `json:"peak_bin" yaml:"peak_bin"`
	PeakFrequency  float64        `json:"peak_frequency_hz" yaml:"peak_frequency_hz"`
	RoundTripError float64        `json:"round_trip_error" yaml:"round_trip_error"`
	Bins           []spectrum.Bin `json:"bins" yaml:"bins"`
}

func (r *fftReport) writeTable(w io.Writer) error {
	fmt.Fprintf(w, "Size:\t%d\n", r.Size)
	fmt.Fprintf(w, "Peak:\tbin %d (%.2f Hz)\n", r.PeakBin, r.PeakFrequency)
	fmt.Fprintf(w, "Round trip error:\t%.3g\n\n", r.RoundTripError)
	writeBins(w, r.Bins)
	return nil
}

func newFFTCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fft",
		Short: "Transform a test tone with the block DIF FFT",
		Long: `Generates dc + amplitude*cos(2*pi*freq*n/size + phase), runs the forward
transform, prints every bin and checks that the inverse restores the input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := runFFT(a.v.GetInt("size"), a.tone(), a.analysisOptions()...)
			if err != nil {
				return err
			}

			a.logger.Info("forward transform done",
				zap.Int("size", report.Size),
				zap.Int("peak_bin", report.PeakBin),
				zap.Float64("round_trip_error", report.RoundTripError))

			return render(a.out, a.v.GetString("output"), report)
		},
	}

	cmd.Flags().Int("size", 64, "transform size (power of two)")
	addToneFlags(cmd, 5)

	return cmd
}

func addToneFlags(cmd *cobra.Command, freq float64) {
	cmd.Flags().Float64("freq", freq, "tone frequency in cycles per window")
	cmd.Flags().Float64("amplitude", 1, "tone amplitude")
	cmd.Flags().Float64("phase", 0, "tone phase in degrees")
	cmd.Flags().Float64("dc", 0, "DC offset")
}

func (a *app) tone() toneConfig {
	return toneConfig{
		Freq:      a.v.GetFloat64("freq"),
		Amplitude: a.v.GetFloat64("amplitude"),
		Phase:     a.v.GetFloat64("phase"),
		DC:        a.v.GetFloat64("dc"),
	}
}

func runFFT(size int, tone toneConfig, opts ...core.AnalysisOption) (*fftReport, error) {
	dif, err := fft.NewDIF(size)
	if err != nil {
		return nil, err
	}

	signal, err := tone.signal().Generate(size, size)
	if err != nil {
		return nil, err
	}

	re, im, err := dif.Forward(signal)
	if err != nil {
		return nil, err
	}

	restored, err := dif.Inverse(re, im)
	if err != nil {
		return nil, err
	}

	roundTrip := floats.Distance(restored, signal, math.Inf(1))

	bins, err := spectrum.Describe(re, im, size, opts...)
	if err != nil {
		return nil, err
	}

	mag := make([]float64, len(bins))
	for i, b := range bins {
		mag[i] = b.Magnitude
	}

	peak := spectrum.PeakBin(mag)

	return &fftReport{
		Size:           size,
		Tone:           tone,
		PeakBin:        peak,
		PeakFrequency:  bins[peak].Frequency,
		RoundTripError: roundTrip,
		Bins:           bins,
	}, nil
}
