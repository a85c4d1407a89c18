package util

import (
	"math"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/mager/woodshed/scale"
	"github.com/mager/woodshed/woodshed"
	"golang.org/x/exp/maps"
)

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// RankedScales converts ranking rows to their API form.
func RankedScales(rows []scale.Row) []woodshed.RankedScale {
	out := make([]woodshed.RankedScale, len(rows))
	for i, row := range rows {
		out[i] = woodshed.RankedScale{
			Rank:        row.Rank,
			Magnitude:   Round(row.Magnitude, 4),
			Cardinality: row.Cardinality,
			Pattern:     row.Pattern.String(),
			Major:       row.Major,
			Notes:       row.Scale.Names(),
		}
	}
	return out
}

// GetCardinalityCounts returns the number of scale types per cardinality, smallest first
func GetCardinalityCounts(r scale.Ranking) []woodshed.CardinalityCount {
	counts := make(map[int]int)
	for _, e := range r {
		counts[e.Scale.Len()]++
	}

	keys := maps.Keys(counts)
	sort.Ints(keys)

	out := make([]woodshed.CardinalityCount, len(keys))
	for i, k := range keys {
		out[i] = woodshed.CardinalityCount{Cardinality: k, Count: counts[k]}
	}
	return out
}

// NewRand returns a *rand.Rand that is safe for concurrent use.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)})
}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}
