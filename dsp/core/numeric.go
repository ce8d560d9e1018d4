package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(value, lo), hi)
}

// NearlyEqual reports whether a and b agree within eps, absolutely or
// relative to the larger magnitude. eps <= 0 selects 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))

	return diff/largest <= eps
}

// LinearToDB converts a linear amplitude to dB (20*log10).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// DBToLinear converts dB to a linear amplitude.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearPowerToDB converts a linear power to dB (10*log10).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	switch {
	case power < 0:
		return math.NaN()
	case power == 0:
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// LevelDB converts a linear amplitude to dB and limits the result to floorDB,
// so silent bins report the floor instead of -Inf.
func LevelDB(linear, floorDB float64) float64 {
	db := LinearToDB(linear)
	if math.IsNaN(db) || db < floorDB {
		return floorDB
	}
	return db
}
