package scale

import "gonum.org/v1/gonum/floats"

// Pentatonic and Octatonic are the reference pair used when probing how alpha
// shifts the balance between small and large scales.
var (
	Pentatonic = New(0, 2, 4, 7, 9)
	Octatonic  = New(0, 2, 4, 5, 7, 9, 11, 1)
)

// SweepPoint holds the rotated magnitudes of two scales at one alpha.
type SweepPoint struct {
	Alpha float64
	A     float64
	B     float64
}

// Sweep evaluates a and b at steps evenly spaced alphas from from to to, inclusive.
func Sweep(a, b Scale, from, to float64, steps int) []SweepPoint {
	if steps < 2 {
		return []SweepPoint{point(a, b, from)}
	}

	alphas := floats.Span(make([]float64, steps), from, to)
	points := make([]SweepPoint, len(alphas))
	for i, alpha := range alphas {
		points[i] = point(a, b, alpha)
	}
	return points
}

// Crossover bisects [lo, hi] for the alpha at which the larger of a and b
// changes. It reports false when both ends have the same winner.
func Crossover(a, b Scale, lo, hi, tol float64) (float64, bool) {
	diff := func(alpha float64) float64 {
		return RotatedMagnitude(a, alpha) - RotatedMagnitude(b, alpha)
	}

	dlo, dhi := diff(lo), diff(hi)
	switch {
	case dlo == 0:
		return lo, true
	case dhi == 0:
		return hi, true
	case (dlo > 0) == (dhi > 0):
		return 0, false
	}

	for hi-lo > tol {
		mid := (lo + hi) / 2
		if (diff(mid) > 0) == (dlo > 0) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, true
}

func point(a, b Scale, alpha float64) SweepPoint {
	return SweepPoint{
		Alpha: alpha,
		A:     RotatedMagnitude(a, alpha),
		B:     RotatedMagnitude(b, alpha),
	}
}
