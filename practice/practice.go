package practice

import (
	"errors"
	"math/rand/v2"

	"github.com/mager/woodshed/woodshed"
)

// ErrEmptyRepertoire is returned when there is nothing to choose from.
var ErrEmptyRepertoire = errors.New("no songs available in repertoire")

// Weight is how far a song is from its target tempo. Untried songs weigh 1.
func Weight(s woodshed.Song) float64 {
	if s.Target == 0 {
		return 1
	}
	return 1 - s.Achieved/s.Target
}

// Tried returns songs that have a target tempo.
func Tried(songs []woodshed.Song) []woodshed.Song {
	return filter(songs, func(s woodshed.Song) bool { return s.Target != 0 })
}

// Untried returns songs without a target tempo.
func Untried(songs []woodshed.Song) []woodshed.Song {
	return filter(songs, func(s woodshed.Song) bool { return s.Target == 0 })
}

// Unachieved returns songs with a target that have never been played at any tempo.
func Unachieved(songs []woodshed.Song) []woodshed.Song {
	return filter(songs, func(s woodshed.Song) bool { return s.Target > 0 && s.Achieved == 0 })
}

// AverageWeight is the mean of the positive weights of tried songs, or 1.
func AverageWeight(songs []woodshed.Song) float64 {
	var sum float64
	var n int
	for _, s := range Tried(songs) {
		if w := Weight(s); w > 0 {
			sum += w
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}

// SongToPractice picks the next song to work on.
//
// Unachieved songs always come first. Otherwise a tried song is drawn with
// probability proportional to its distance from target, competing against one
// random untried song weighted at the average tried weight.
func SongToPractice(rng *rand.Rand, songs []woodshed.Song) (woodshed.Song, error) {
	if unachieved := Unachieved(songs); len(unachieved) > 0 {
		return unachieved[rng.IntN(len(unachieved))], nil
	}

	tried, untried := Tried(songs), Untried(songs)
	if len(tried) == 0 && len(untried) == 0 {
		return woodshed.Song{}, ErrEmptyRepertoire
	}

	pool := append([]woodshed.Song(nil), tried...)
	weights := make([]float64, 0, len(pool)+1)
	for _, s := range tried {
		weights = append(weights, Weight(s))
	}
	if len(untried) > 0 {
		pool = append(pool, untried[rng.IntN(len(untried))])
		weights = append(weights, AverageWeight(songs))
	}

	return weightedChoice(rng, pool, weights), nil
}

func weightedChoice(rng *rand.Rand, items []woodshed.Song, weights []float64) woodshed.Song {
	var total float64
	for _, w := range weights {
		total += w
	}

	r := rng.Float64() * total
	for i, item := range items {
		r -= weights[i]
		if r <= 0 {
			return item
		}
	}
	return items[len(items)-1]
}

func filter(songs []woodshed.Song, keep func(woodshed.Song) bool) []woodshed.Song {
	var out []woodshed.Song
	for _, s := range songs {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
