package sdft

import (
	"math"

	"github.com/cwbudde/algo-sdft/dsp/phasor"
)

// bin is the state of one frequency of a sliding transform.
type bin struct {
	turn       float64 // rotation per sample, pi*index/k
	multiplier float64 // 1 for DC and Nyquist, 2 otherwise
	dc         bool

	value phasor.Complex
	polar phasor.Polar
}

func newBin(k, index int) bin {
	b := bin{
		turn:       math.Pi / float64(k) * float64(index),
		multiplier: binMultiplier(k, index),
		dc:         index == 0,
	}
	return b
}

func binMultiplier(k, index int) float64 {
	if index == 0 || index == k {
		return 1
	}
	return 2
}

// update advances the bin by one sample: the change of the window average is
// added to the real part, then the phasor rotates by turn.
func (b *bin) update(change float64) {
	b.value.Re += change * b.multiplier

	if b.dc {
		b.polar.Magnitude, b.polar.Phase = dcPolar(b.value.Re, b.value.Im)
		return
	}

	b.polar = phasor.ToPolar(b.value).Rotate(b.turn)
	b.value = b.polar.Complex()
}

func (b *bin) setComplex(c phasor.Complex) {
	b.value = c
	b.polar = phasor.ToPolar(c)
}

func (b *bin) setPolar(p phasor.Polar) {
	b.polar = p
	b.value = phasor.ToComplex(p)
}

func (b *bin) reset() {
	b.value = phasor.Complex{}
	b.polar = phasor.Polar{}
}

// dcPolar returns the polar form of the DC phasor. A real-only DC value needs
// no trigonometry: its phase is 0 or pi.
func dcPolar(re, im float64) (magnitude, phase float64) {
	if im != 0 {
		p := phasor.ToPolar(phasor.Complex{Re: re, Im: im})
		return p.Magnitude, p.Phase
	}

	if re < 0 {
		return -re, math.Pi
	}

	return re, 0
}
