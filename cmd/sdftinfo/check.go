package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sdft/dsp/fft"
	"github.com/cwbudde/algo-sdft/dsp/sdft"
	dspsignal "github.com/cwbudde/algo-sdft/dsp/signal"
	"github.com/cwbudde/algo-sdft/dsp/spectrum"
)

var errCheckFailed = errors.New("one or more checks exceeded the tolerance")

type checkResult struct {
	Name         string  `json:"name" yaml:"name"`
	MaxDeviation float64 `json:"max_deviation" yaml:"max_deviation"`
	Pass         bool    `json:"pass" yaml:"pass"`
}

type checkReport struct {
	Size      int           `json:"size" yaml:"size"`
	Seed      int64         `json:"seed" yaml:"seed"`
	Tolerance float64       `json:"tolerance" yaml:"tolerance"`
	Results   []checkResult `json:"results" yaml:"results"`
}

func (r *checkReport) writeTable(w io.Writer) error {
	fmt.Fprintf(w, "Size:\t%d\n", r.Size)
	fmt.Fprintf(w, "Tolerance:\t%.3g\n\n", r.Tolerance)
	fmt.Fprintln(w, "Check\tMax deviation\tResult")

	for _, res := range r.Results {
		status := "ok"
		if !res.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s\t%.3g\t%s\n", res.Name, res.MaxDeviation, status)
	}

	return nil
}

func (r *checkReport) failed() bool {
	for _, res := range r.Results {
		if !res.Pass {
			return true
		}
	}
	return false
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check the transforms against reference FFT libraries",
		Long: `Transforms deterministic noise with the DIF FFT and compares the result
with algo-fft, go-dsp and gonum, checks the inverse round trip and verifies
that both sliding estimators converge to the block transform. The checks run
concurrently.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := runCheck(cmd.Context(), a.logger,
				a.v.GetInt("size"), a.v.GetInt64("seed"), a.v.GetFloat64("tolerance"))
			if err != nil {
				return err
			}

			if err := render(a.out, a.v.GetString("output"), report); err != nil {
				return err
			}

			if report.failed() {
				return errCheckFailed
			}

			return nil
		},
	}

	cmd.Flags().Int("size", 4096, "transform size (power of two, >= 2)")
	cmd.Flags().Int64("seed", 1, "noise seed")
	cmd.Flags().Float64("tolerance", 1e-9, "largest accepted deviation")

	return cmd
}

type checkFunc func(d *fft.DIF, re, im, signal []float64) (float64, error)

func runCheck(ctx context.Context, logger *zap.Logger, size int, seed int64, tolerance float64) (*checkReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if size < 2 {
		return nil, fmt.Errorf("%w: check needs size >= 2, got %d", fft.ErrInvalidSize, size)
	}

	dif, err := fft.NewDIF(size)
	if err != nil {
		return nil, err
	}

	signal, err := dspsignal.NewGenerator(dspsignal.WithSeed(seed)).WhiteNoise(1, size)
	if err != nil {
		return nil, err
	}

	re, im, err := dif.Forward(signal)
	if err != nil {
		return nil, err
	}

	checks := []struct {
		name string
		fn   checkFunc
	}{
		{"algo-fft", checkAlgoFFT},
		{"go-dsp", checkGoDSP},
		{"gonum", checkGonum},
		{"round-trip", checkRoundTrip},
		{"sliding/" + sdft.StrategyObject.String(), checkSliding(sdft.StrategyObject)},
		{"sliding/" + sdft.StrategyCompact.String(), checkSliding(sdft.StrategyCompact)},
	}

	results := make([]checkResult, len(checks))
	g, ctx := errgroup.WithContext(ctx)

	for i, c := range checks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			dev, err := c.fn(dif, re, im, signal)
			if err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}

			results[i] = checkResult{Name: c.name, MaxDeviation: dev, Pass: dev <= tolerance}
			logger.Debug("check finished", zap.String("check", c.name), zap.Float64("max_deviation", dev))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &checkReport{Size: size, Seed: seed, Tolerance: tolerance, Results: results}, nil
}

// deviation returns the largest component difference between two
// half-spectra.
func deviation(re, im, wantRe, wantIm []float64) float64 {
	return math.Max(
		floats.Distance(re, wantRe, math.Inf(1)),
		floats.Distance(im, wantIm, math.Inf(1)),
	)
}

func compareFull(re, im []float64, full []complex128, size int) (float64, error) {
	wantRe, wantIm, err := spectrum.OneSided(full, size)
	if err != nil {
		return 0, err
	}
	return deviation(re, im, wantRe, wantIm), nil
}

func checkAlgoFFT(d *fft.DIF, re, im, signal []float64) (float64, error) {
	plan, err := algofft.NewPlan64(d.Len())
	if err != nil {
		return 0, err
	}

	in := make([]complex128, d.Len())
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, d.Len())
	if err := plan.Forward(out, in); err != nil {
		return 0, err
	}

	return compareFull(re, im, out, d.Len())
}

func checkGoDSP(d *fft.DIF, re, im, signal []float64) (float64, error) {
	return compareFull(re, im, godsp.FFTReal(signal), d.Len())
}

func checkGonum(d *fft.DIF, re, im, signal []float64) (float64, error) {
	return compareFull(re, im, fourier.NewFFT(d.Len()).Coefficients(nil, signal), d.Len())
}

func checkRoundTrip(d *fft.DIF, re, im, signal []float64) (float64, error) {
	restored, err := d.Inverse(re, im)
	if err != nil {
		return 0, err
	}

	return floats.Distance(restored, signal, math.Inf(1)), nil
}

// checkSliding feeds the signal twice through an estimator whose window
// equals the transform size; afterwards its bins must match the block
// transform of the same window.
func checkSliding(s sdft.Strategy) checkFunc {
	return func(d *fft.DIF, re, im, signal []float64) (float64, error) {
		est, err := sdft.New(d.Len()/2, sdft.WithStrategy(s))
		if err != nil {
			return 0, err
		}

		for range 2 {
			for _, x := range signal {
				est.Slide(x)
			}
		}

		gotRe := make([]float64, est.NumFrequencies())
		gotIm := make([]float64, est.NumFrequencies())
		if err := est.Spectrum(gotRe, gotIm); err != nil {
			return 0, err
		}

		return deviation(gotRe, gotIm, re, im), nil
	}
}
