package scale

import "math"

// circleOfFifths lists pitch classes in perfect-fifth order starting at C.
var circleOfFifths = [12]PitchClass{0, 7, 2, 9, 4, 11, 6, 1, 8, 3, 10, 5}

// fifthsPosition is the inverse of circleOfFifths.
var fifthsPosition = [12]int{0, 7, 2, 9, 4, 11, 6, 1, 8, 3, 10, 5}

// CirclePosition returns the index of p around the circle of fifths.
func CirclePosition(p PitchClass) int {
	return fifthsPosition[wrap(int(p))]
}

// AngleOf returns the angle of p on the circle of fifths, in [0, 2π).
func AngleOf(p PitchClass) float64 {
	return 2 * math.Pi * float64(CirclePosition(p)) / 12
}

// RawMagnitude is the length of the sum of the unit vectors of every note in s.
func RawMagnitude(s Scale) float64 {
	if s.Len() == 0 {
		return 0.0
	}

	var x, y float64
	for _, n := range s.Notes() {
		a := AngleOf(n)
		x += math.Cos(a)
		y += math.Sin(a)
	}
	return math.Sqrt(x*x + y*y)
}

// RotatedMagnitude pulls every note toward the centroid direction of s before
// summing. The pull is alpha scaled by 1-|d|/π, where d is the note's angular
// distance to the centroid, so notes near the centroid move proportionally more
// than notes opposite it.
func RotatedMagnitude(s Scale, alpha float64) float64 {
	if s.Len() == 0 {
		return 0.0
	}

	notes := s.Notes()
	angles := make([]float64, len(notes))
	var cx, cy float64
	for i, n := range notes {
		a := AngleOf(n)
		angles[i] = a
		cx += math.Cos(a)
		cy += math.Sin(a)
	}
	centroid := math.Atan2(cy, cx)

	var x, y float64
	for _, a := range angles {
		diff := normalizeAngle(centroid - a)
		scaled := alpha * (1 - math.Abs(diff)/math.Pi)
		r := a + scaled*diff
		x += math.Cos(r)
		y += math.Sin(r)
	}
	return math.Sqrt(x*x + y*y)
}

// normalizeAngle folds a into [-π, π]. Both ends are kept as they come: at
// |a| = π the rotation factor is zero, so the sign never matters.
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
