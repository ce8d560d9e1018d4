package phasor

import "math"

const (
	twoPi      = 2 * math.Pi
	fullCircle = 360.0
)

// Complex is a complex number in rectangular form.
type Complex struct {
	Re float64
	Im float64
}

// Polar is a complex number in polar form. Phase is in radians and is not
// wrapped to any particular interval.
type Polar struct {
	Magnitude float64
	Phase     float64
}

// FromComplex128 converts a builtin complex128 into a Complex.
func FromComplex128(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Complex128 returns c as a builtin complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// Abs returns the magnitude sqrt(re^2 + im^2).
func (c Complex) Abs() float64 {
	return math.Sqrt(c.Re*c.Re + c.Im*c.Im)
}

// Arg returns the phase atan2(im, re) in (-pi, pi].
func (c Complex) Arg() float64 {
	return math.Atan2(c.Im, c.Re)
}

// Polar returns the polar form of c.
func (c Complex) Polar() Polar {
	return ToPolar(c)
}

// Complex returns the rectangular form of p.
func (p Polar) Complex() Complex {
	return ToComplex(p)
}

// Rotate returns p with angle (radians) added to its phase.
func (p Polar) Rotate(angle float64) Polar {
	return Polar{Magnitude: p.Magnitude, Phase: p.Phase + angle}
}

// ToPolar converts rectangular to polar form.
func ToPolar(c Complex) Polar {
	return Polar{
		Magnitude: math.Sqrt(c.Re*c.Re + c.Im*c.Im),
		Phase:     math.Atan2(c.Im, c.Re),
	}
}

// ToComplex converts polar to rectangular form.
func ToComplex(p Polar) Complex {
	sin, cos := math.Sincos(p.Phase)
	return Complex{
		Re: cos * p.Magnitude,
		Im: sin * p.Magnitude,
	}
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return twoPi * (deg / fullCircle)
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return (rad / twoPi) * fullCircle
}
