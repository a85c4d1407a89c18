package scale

import "math/rand/v2"

// Generate2d6 builds a descending run of semitones. It starts on a random note
// and repeatedly steps down by the lower of two d6 rolls until it has fallen
// at least an octave below the start. The first value is always in [0,12);
// later values may be negative.
func Generate2d6(rng *rand.Rand) []int {
	start := rng.IntN(12)
	n := start

	var out []int
	for {
		out = append(out, n)
		n -= min(rng.IntN(6)+1, rng.IntN(6)+1)
		if n <= start-12 {
			return out
		}
	}
}

// Ascending reverses a generated run and closes it with its lowest note an octave up.
func Ascending(run []int) []int {
	if len(run) == 0 {
		return nil
	}
	out := make([]int, 0, len(run)+1)
	for i := len(run) - 1; i >= 0; i-- {
		out = append(out, run[i])
	}
	return append(out, out[0]+12)
}

