package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-sdft/dsp/core"
	"github.com/cwbudde/algo-sdft/dsp/fft"
	"github.com/cwbudde/algo-sdft/dsp/sdft"
	dspsignal "github.com/cwbudde/algo-sdft/dsp/signal"
	"github.com/cwbudde/algo-sdft/dsp/spectrum"
)

type slideReport struct {
	BinCount       int            `json:"bin_count" yaml:"bin_count"`
	Strategy       string         `json:"strategy" yaml:"strategy"`
	Latency        int            `json:"latency_samples" yaml:"latency_samples"`
	Samples        int            `json:"samples" yaml:"samples"`
	Tone           toneConfig     `json:"tone" yaml:"tone"`
	DelayError     float64        `json:"delay_error" yaml:"delay_error"`
	BlockDeviation *float64       `json:"block_deviation,omitempty" yaml:"block_deviation,omitempty"`
	Bins           []spectrum.Bin `json:"bins" yaml:"bins"`
}

func (r *slideReport) writeTable(w io.Writer) error {
	fmt.Fprintf(w, "Bins:\t%d (%s)\n", r.BinCount, r.Strategy)
	fmt.Fprintf(w, "Latency:\t%d samples\n", r.Latency)
	fmt.Fprintf(w, "Samples fed:\t%d\n", r.Samples)
	fmt.Fprintf(w, "Delay error:\t%.3g\n", r.DelayError)
	if r.BlockDeviation != nil {
		fmt.Fprintf(w, "Deviation from block FFT:\t%.3g\n", *r.BlockDeviation)
	} else {
		fmt.Fprintln(w, "Deviation from block FFT:\tn/a (window is not a power of two)")
	}
	fmt.Fprintln(w)
	writeBins(w, r.Bins)
	return nil
}

func newSlideCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slide",
		Short: "Feed a test tone through a sliding DFT estimator",
		Long: `Feeds the tone sample by sample through a sliding DFT with --bins non-DC
bins (window 2*bins), then prints the bins and how far they deviate from the
block transform of the final window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := runSlide(
				a.v.GetInt("bins"),
				a.v.GetString("strategy"),
				a.v.GetInt("periods"),
				a.tone(),
				a.analysisOptions()...,
			)
			if err != nil {
				return err
			}

			a.logger.Info("sliding transform done",
				zap.String("strategy", report.Strategy),
				zap.Int("samples", report.Samples),
				zap.Float64("delay_error", report.DelayError))

			return render(a.out, a.v.GetString("output"), report)
		},
	}

	cmd.Flags().Int("bins", 16, "number of non-DC bins K")
	cmd.Flags().String("strategy", sdft.StrategyObject.String(), "estimator implementation (object, compact)")
	cmd.Flags().Int("periods", 4, "number of windows to feed")
	addToneFlags(cmd, 3)

	return cmd
}

func runSlide(k int, strategy string, periods int, tone toneConfig, opts ...core.AnalysisOption) (*slideReport, error) {
	if periods < 1 {
		return nil, fmt.Errorf("periods must be >= 1: %d", periods)
	}

	s, err := sdft.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}

	est, err := sdft.New(k, sdft.WithStrategy(s))
	if err != nil {
		return nil, err
	}

	window := est.LatencyInSamples()
	period, err := tone.signal().Generate(window, window)
	if err != nil {
		return nil, err
	}

	signal, err := dspsignal.Repeat(period, periods)
	if err != nil {
		return nil, err
	}

	delayErr := 0.0
	for n, x := range signal {
		y := est.Slide(x)

		want := 0.0
		if d := n - (window - 1); d >= 0 {
			want = signal[d]
		}

		delayErr = math.Max(delayErr, math.Abs(y-want))
	}

	re := make([]float64, est.NumFrequencies())
	im := make([]float64, est.NumFrequencies())
	if err := est.Spectrum(re, im); err != nil {
		return nil, err
	}

	var deviation *float64
	switch d, err := blockDeviation(re, im, signal[len(signal)-window:]); {
	case err == nil:
		deviation = &d
	case !errors.Is(err, fft.ErrInvalidSize):
		return nil, err
	}

	bins, err := spectrum.Describe(re, im, window, opts...)
	if err != nil {
		return nil, err
	}

	return &slideReport{
		BinCount:       k,
		Strategy:       s.String(),
		Latency:        window,
		Samples:        len(signal),
		Tone:           tone,
		DelayError:     delayErr,
		BlockDeviation: deviation,
		Bins:           bins,
	}, nil
}

// blockDeviation returns the largest component difference between the given
// half-spectrum and the block transform of window.
func blockDeviation(re, im, window []float64) (float64, error) {
	dif, err := fft.NewDIF(len(window))
	if err != nil {
		return 0, err
	}

	wantRe, wantIm, err := dif.Forward(window)
	if err != nil {
		return 0, err
	}

	return deviation(re, im, wantRe, wantIm), nil
}
