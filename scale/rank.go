package scale

import (
	"cmp"
	"math"
	"slices"
)

// tieResolution is the grid magnitudes are rounded to before ordering.
// Mirror-image scale types have equal magnitudes that differ only in the last
// bits of the trig results.
const tieResolution = 1e9

// Entry is one scale type in a ranking, represented by its highest-scoring scale.
type Entry struct {
	Magnitude float64
	Scale     Scale
	Pattern   Pattern
}

// Ranking lists unique scale types by descending magnitude.
type Ranking []Entry

// Row is an Entry decorated for display.
type Row struct {
	Rank        int
	Magnitude   float64
	Cardinality int
	Pattern     Pattern
	Major       bool
	Scale       Scale
}

// Rank scores every subset of the chromatic scale with RotatedMagnitude and
// keeps the highest-magnitude representative of each canonical pattern.
//
// Magnitudes equal to within 1e-9 are ordered by cardinality, then by
// ascending note list, so the result depends neither on the sort algorithm nor
// on floating point noise. Entry.Magnitude keeps full precision.
func Rank(alpha float64) Ranking {
	type scored struct {
		magnitude float64
		scale     Scale
	}

	all := make([]scored, Subsets)
	for mask := 0; mask < Subsets; mask++ {
		s := Scale(mask)
		all[mask] = scored{magnitude: RotatedMagnitude(s, alpha), scale: s}
	}

	slices.SortFunc(all, func(a, b scored) int {
		if c := cmp.Compare(quantize(b.magnitude), quantize(a.magnitude)); c != 0 {
			return c
		}
		return compareNotes(a.scale, b.scale)
	})

	seen := make(map[string]struct{})
	var ranking Ranking
	for _, sc := range all {
		p := CanonicalPattern(sc.scale)
		key := p.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ranking = append(ranking, Entry{Magnitude: sc.magnitude, Scale: sc.scale, Pattern: p})
	}
	return ranking
}

func quantize(m float64) float64 {
	return math.Round(m * tieResolution)
}

// FirstMajorRank returns the 1-based rank of the first diatonic scale type.
func (r Ranking) FirstMajorRank() (int, bool) {
	for i, e := range r {
		if IsMajor(e.Scale) {
			return i + 1, true
		}
	}
	return 0, false
}

// Rows returns the first limit entries as display rows. A limit <= 0 returns
// every entry.
func (r Ranking) Rows(limit int) []Row {
	if limit <= 0 || limit > len(r) {
		limit = len(r)
	}
	rows := make([]Row, limit)
	for i, e := range r[:limit] {
		rows[i] = Row{
			Rank:        i + 1,
			Magnitude:   e.Magnitude,
			Cardinality: e.Scale.Len(),
			Pattern:     e.Pattern,
			Major:       IsMajor(e.Scale),
			Scale:       e.Scale,
		}
	}
	return rows
}
