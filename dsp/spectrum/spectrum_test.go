package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sdft/dsp/core"
	"github.com/cwbudde/algo-sdft/dsp/fft"
	"github.com/cwbudde/algo-sdft/internal/testutil"
)

func TestMagnitudePhasePower(t *testing.T) {
	re := []float64{3, -1, 0}
	im := []float64{4, -1, 0}

	mag, err := Magnitude(re, im)
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, mag, []float64{5, math.Sqrt2, 0}, 1e-12)

	pow, err := Power(re, im)
	if err != nil {
		t.Fatalf("Power: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, pow, []float64{25, 2, 0}, 1e-12)

	phase, err := Phase(re, im)
	if err != nil {
		t.Fatalf("Phase: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, phase, []float64{math.Atan2(4, 3), -3 * math.Pi / 4, 0}, 1e-12)
}

func TestLengthMismatch(t *testing.T) {
	re := make([]float64, 3)
	im := make([]float64, 2)

	if _, err := Magnitude(re, im); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Magnitude: err = %v, want ErrLengthMismatch", err)
	}

	if _, err := Power(re, im); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Power: err = %v, want ErrLengthMismatch", err)
	}

	if _, err := Phase(re, im); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Phase: err = %v, want ErrLengthMismatch", err)
	}

	if err := MagnitudeInto(make([]float64, 2), re, re); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("MagnitudeInto: err = %v, want ErrLengthMismatch", err)
	}

	if err := PowerInto(make([]float64, 4), re, re); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("PowerInto: err = %v, want ErrLengthMismatch", err)
	}
}

func TestSplit(t *testing.T) {
	re, im := Split([]complex128{1 + 2i, -3, 4i})

	testutil.RequireSliceNearlyEqual(t, re, []float64{1, -3, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, im, []float64{2, 0, 4}, 0)
}

func TestUnwrapPhase(t *testing.T) {
	in := []float64{2.8, -2.7, -2.6}

	out := UnwrapPhase(in)
	if len(out) != len(in) {
		t.Fatalf("unwrap length mismatch")
	}

	if out[1] <= out[0] {
		t.Fatalf("expected increasing unwrapped phase: %v", out)
	}

	if math.Abs((out[1]-out[0])-(2*math.Pi-5.5)) > 1e-12 {
		t.Fatalf("unexpected unwrap delta: %f", out[1]-out[0])
	}

	if UnwrapPhase(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestUnwrapPhase_LinearPhaseOfDelayedImpulse(t *testing.T) {
	const n = 64

	dif, _ := fft.NewDIF(n)
	re, im, _ := dif.Forward(testutil.Impulse(n, 5))

	phase, _ := Phase(re, im)
	unwrapped := UnwrapPhase(phase)

	for k := range unwrapped {
		want := -2 * math.Pi * 5 * float64(k) / n
		testutil.RequireNear(t, "phase", unwrapped[k]-unwrapped[0], want, 1e-9)
	}
}

func TestPeakBin(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want int
	}{
		{"empty", nil, -1},
		{"single", []float64{3}, 0},
		{"middle", []float64{0.1, 0.9, 0.3}, 1},
		{"tie", []float64{0.5, 0.2, 0.5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeakBin(tt.in); got != tt.want {
				t.Fatalf("PeakBin() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPeakBin_FindsTone(t *testing.T) {
	const n = 256

	dif, _ := fft.NewDIF(n)
	signal := testutil.Sum(
		testutil.BinCosine(17, 1, 0.4, n),
		testutil.DeterministicNoise(3, 0.05, n),
	)

	re, im, _ := dif.Forward(signal)
	mag, _ := Magnitude(re, im)

	if got := PeakBin(mag); got != 17 {
		t.Fatalf("PeakBin() = %d, want 17", got)
	}
}

func TestBinFrequency(t *testing.T) {
	got, err := BinFrequency(4, 1024, 48000)
	if err != nil {
		t.Fatalf("BinFrequency: %v", err)
	}

	testutil.RequireNear(t, "frequency", got, 187.5, 1e-12)

	if _, err := BinFrequency(1, 0, 48000); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}

func TestDescribe(t *testing.T) {
	re := []float64{0.5, 0, 0}
	im := []float64{0, -1, 0}

	bins, err := Describe(re, im, 4, core.WithSampleRate(8000), core.WithFloorDB(-150))
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}

	if len(bins) != 3 {
		t.Fatalf("len = %d, want 3", len(bins))
	}

	want := []Bin{
		{Index: 0, Frequency: 0, Magnitude: 0.5, Phase: 0, Level: 20 * math.Log10(0.5)},
		{Index: 1, Frequency: 2000, Magnitude: 1, Phase: -90, Level: 0},
		{Index: 2, Frequency: 4000, Magnitude: 0, Phase: 0, Level: -150},
	}

	for i, w := range want {
		g := bins[i]
		if g.Index != w.Index {
			t.Errorf("bin %d: index %d", i, g.Index)
		}

		testutil.RequireNear(t, "frequency", g.Frequency, w.Frequency, 1e-9)
		testutil.RequireNear(t, "magnitude", g.Magnitude, w.Magnitude, 1e-12)
		testutil.RequireNear(t, "phase", g.Phase, w.Phase, 1e-9)
		testutil.RequireNear(t, "level", g.Level, w.Level, 1e-9)
	}
}

func TestDescribe_Errors(t *testing.T) {
	if _, err := Describe([]float64{1}, []float64{0}, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}

	if _, err := Describe([]float64{1}, nil, 2); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestOneSided(t *testing.T) {
	full := []complex128{8, 2 - 2i, 4i, 1, 6, 1, -4i, 2 + 2i}

	re, im, err := OneSided(full, 8)
	if err != nil {
		t.Fatalf("OneSided: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, re, []float64{1, 0.5, 0, 0.25, 0.75}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, im, []float64{0, -0.5, 1, 0, 0}, 1e-12)

	if _, _, err := OneSided(full[:3], 8); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}

	if _, _, err := OneSided(full, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}
