package fft

import (
	"errors"
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-sdft/dsp/phasor"
	"github.com/cwbudde/algo-sdft/internal/testutil"
)

func TestNewDIF_InvalidSize(t *testing.T) {
	for _, size := range []int{-8, 0, 3, 6, 12, 1000} {
		d, err := NewDIF(size)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewDIF(%d): err = %v, want ErrInvalidSize", size, err)
		}

		if d != nil {
			t.Errorf("NewDIF(%d) returned a transform alongside the error", size)
		}
	}
}

func TestNewDIF_Sizes(t *testing.T) {
	for _, size := range []int{1, 2, 4, 8, 1024} {
		d, err := NewDIF(size)
		if err != nil {
			t.Fatalf("NewDIF(%d): %v", size, err)
		}

		if d.Len() != size {
			t.Errorf("Len() = %d, want %d", d.Len(), size)
		}

		if d.Bins() != size/2+1 {
			t.Errorf("Bins() = %d, want %d", d.Bins(), size/2+1)
		}

		if len(d.cos) != size/2 || len(d.sin) != size/2 {
			t.Errorf("twiddle table has %d/%d entries, want %d", len(d.cos), len(d.sin), size/2)
		}
	}
}

func TestForward_LengthMismatch(t *testing.T) {
	d, _ := NewDIF(8)

	re, im, err := d.Forward(make([]float64, 7))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Forward(7 samples): err = %v, want ErrLengthMismatch", err)
	}

	if re != nil || im != nil {
		t.Fatal("Forward returned partial output on error")
	}

	_, _, err = d.Forward(make([]float64, 9))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Forward(9 samples): err = %v, want ErrLengthMismatch", err)
	}
}

func TestInverse_LengthMismatch(t *testing.T) {
	d, _ := NewDIF(8)

	tests := []struct {
		name   string
		re, im int
	}{
		{"too few bins", 4, 4},
		{"too many bins", 6, 6},
		{"unequal parts", 5, 4},
		{"empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Inverse(make([]float64, tt.re), make([]float64, tt.im))
			if !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("err = %v, want ErrLengthMismatch", err)
			}
		})
	}
}

func TestForward_SingleTone(t *testing.T) {
	tests := []struct {
		size      int
		bin       int
		amplitude float64
		phase     float64
	}{
		{8, 1, 2.3, 1.5},
		{8, 2, 1.3, 2.5},
		{8, 3, 0.7, -0.4},
		{64, 5, 1.0, 0},
		{64, 31, 0.25, -2.9},
		{1024, 100, 3.0, 1.0},
	}

	for _, tt := range tests {
		d, err := NewDIF(tt.size)
		if err != nil {
			t.Fatalf("NewDIF(%d): %v", tt.size, err)
		}

		sig := testutil.BinCosine(tt.bin, tt.amplitude, tt.phase, tt.size)

		re, im, err := d.Forward(sig)
		if err != nil {
			t.Fatalf("Forward: %v", err)
		}

		for k := range re {
			p := phasor.ToPolar(phasor.Complex{Re: re[k], Im: im[k]})
			if k != tt.bin {
				if p.Magnitude > 1e-9 {
					t.Errorf("N=%d bin %d: magnitude %v, want 0", tt.size, k, p.Magnitude)
				}

				continue
			}

			if math.Abs(p.Magnitude-tt.amplitude) > 1e-9 {
				t.Errorf("N=%d bin %d: magnitude %v, want %v", tt.size, k, p.Magnitude, tt.amplitude)
			}

			if math.Abs(p.Phase-tt.phase) > 1e-9 {
				t.Errorf("N=%d bin %d: phase %v, want %v", tt.size, k, p.Phase, tt.phase)
			}
		}
	}
}

func TestForward_DC(t *testing.T) {
	const c = -0.75

	d, _ := NewDIF(32)

	re, im, err := d.Forward(testutil.DC(c, 32))
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	testutil.RequireNear(t, "re[0]", re[0], c, 1e-12)

	for k := 1; k < len(re); k++ {
		testutil.RequireNear(t, "re", re[k], 0, 1e-12)
	}

	for k := range im {
		testutil.RequireNear(t, "im", im[k], 0, 1e-12)
	}
}

func TestForward_Nyquist(t *testing.T) {
	d, _ := NewDIF(16)
	sig := testutil.BinCosine(8, 1.25, 0, 16)

	re, _, err := d.Forward(sig)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	testutil.RequireNear(t, "nyquist", re[8], 1.25, 1e-12)
}

func TestForward_DoesNotModifyInput(t *testing.T) {
	d, _ := NewDIF(64)
	sig := testutil.DeterministicNoise(3, 1, 64)
	orig := append([]float64(nil), sig...)

	if _, _, err := d.Forward(sig); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, sig, orig, 0)
}

func TestRoundTrip(t *testing.T) {
	worst := 0.0

	for size := 1; size <= 4096; size *= 2 {
		d, err := NewDIF(size)
		if err != nil {
			t.Fatalf("NewDIF(%d): %v", size, err)
		}

		sig := testutil.DeterministicNoise(int64(size), 1, size)

		re, im, err := d.Forward(sig)
		if err != nil {
			t.Fatalf("Forward: %v", err)
		}

		back, err := d.Inverse(re, im)
		if err != nil {
			t.Fatalf("Inverse: %v", err)
		}

		testutil.RequireFinite(t, back)
		testutil.RequireSliceNearlyEqual(t, back, sig, 1e-9)

		diff, err := testutil.MaxAbsDiff(back, sig)
		if err != nil {
			t.Fatal(err)
		}
		worst = math.Max(worst, diff)
	}

	t.Logf("worst round-trip error: %.3g", worst)
}

func TestInverse_SingleBin(t *testing.T) {
	d, _ := NewDIF(16)
	re := make([]float64, d.Bins())
	im := make([]float64, d.Bins())
	re[3] = 0.5
	im[3] = -0.25

	got, err := d.Inverse(re, im)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	p := phasor.ToPolar(phasor.Complex{Re: 0.5, Im: -0.25})
	want := testutil.BinCosine(3, p.Magnitude, p.Phase, 16)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestForwardInto(t *testing.T) {
	d, _ := NewDIF(32)
	sig := testutil.DeterministicNoise(11, 1, 32)

	wantRe, wantIm, _ := d.Forward(sig)
	re := make([]float64, d.Bins())
	im := make([]float64, d.Bins())

	if err := d.ForwardInto(re, im, sig); err != nil {
		t.Fatalf("ForwardInto: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, re, wantRe, 0)
	testutil.RequireSliceNearlyEqual(t, im, wantIm, 0)

	if err := d.ForwardInto(re[:5], im, sig); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("short output: err = %v, want ErrLengthMismatch", err)
	}

	if err := d.ForwardInto(re, im, sig[:31]); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("short input: err = %v, want ErrLengthMismatch", err)
	}
}

func TestInverseInto(t *testing.T) {
	d, _ := NewDIF(32)
	sig := testutil.DeterministicNoise(12, 1, 32)
	re, im, _ := d.Forward(sig)

	dst := make([]float64, 32)
	if err := d.InverseInto(dst, re, im); err != nil {
		t.Fatalf("InverseInto: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, dst, sig, 1e-9)

	if err := d.InverseInto(dst[:16], re, im); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("short output: err = %v, want ErrLengthMismatch", err)
	}
}

// halfSpectrum folds and normalizes an unnormalized full-length reference
// spectrum into the layout Forward produces.
func halfSpectrum(full []complex128, n int) (re, im []float64) {
	re = make([]float64, n/2+1)
	im = make([]float64, n/2+1)
	for k := range re {
		m := 2.0
		if k == 0 || k == n/2 {
			m = 1
		}
		re[k] = m * real(full[k]) / float64(n)
		im[k] = m * imag(full[k]) / float64(n)
	}
	return re, im
}

func TestForward_MatchesReferenceTransforms(t *testing.T) {
	const size = 256

	d, _ := NewDIF(size)
	sig := testutil.DeterministicNoise(42, 1, size)

	re, im, err := d.Forward(sig)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	t.Run("algo-fft", func(t *testing.T) {
		plan, err := algofft.NewPlan64(size)
		if err != nil {
			t.Fatalf("NewPlan64: %v", err)
		}

		in := make([]complex128, size)
		for i, v := range sig {
			in[i] = complex(v, 0)
		}

		out := make([]complex128, size)
		if err := plan.Forward(out, in); err != nil {
			t.Fatalf("plan.Forward: %v", err)
		}

		wantRe, wantIm := halfSpectrum(out, size)
		testutil.RequireSliceNearlyEqual(t, re, wantRe, 1e-9)
		testutil.RequireSliceNearlyEqual(t, im, wantIm, 1e-9)
	})

	t.Run("gonum", func(t *testing.T) {
		coeffs := fourier.NewFFT(size).Coefficients(nil, sig)

		wantRe, wantIm := halfSpectrum(coeffs, size)
		testutil.RequireSliceNearlyEqual(t, re, wantRe, 1e-9)
		testutil.RequireSliceNearlyEqual(t, im, wantIm, 1e-9)
	})

	t.Run("go-dsp", func(t *testing.T) {
		wantRe, wantIm := halfSpectrum(godsp.FFTReal(sig), size)
		testutil.RequireSliceNearlyEqual(t, re, wantRe, 1e-9)
		testutil.RequireSliceNearlyEqual(t, im, wantIm, 1e-9)
	})
}

func TestForward_ConcurrentUse(t *testing.T) {
	const (
		size    = 512
		workers = 8
	)

	d, _ := NewDIF(size)

	inputs := make([][]float64, workers)
	wantRe := make([][]float64, workers)
	wantIm := make([][]float64, workers)

	for w := range workers {
		inputs[w] = testutil.DeterministicNoise(int64(w+1), 1, size)
		wantRe[w], wantIm[w], _ = d.Forward(inputs[w])
	}

	gotRe := make([][]float64, workers)
	gotIm := make([][]float64, workers)

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			for range 20 {
				re, im, err := d.Forward(inputs[w])
				if err != nil {
					return err
				}

				if _, err := d.Inverse(re, im); err != nil {
					return err
				}

				gotRe[w], gotIm[w] = re, im
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Forward: %v", err)
	}

	for w := range workers {
		testutil.RequireSliceNearlyEqual(t, gotRe[w], wantRe[w], 0)
		testutil.RequireSliceNearlyEqual(t, gotIm[w], wantIm[w], 0)
	}
}
