package scale

import (
	"slices"
	"strconv"
	"strings"
)

// Pattern is the cyclic sequence of semitone gaps between consecutive notes of
// a scale, including the wrap from the highest note back to the lowest.
type Pattern []int

// majorModes are the seven rotations of the diatonic major pattern.
var majorModes = [7]Pattern{
	{2, 2, 1, 2, 2, 2, 1}, // Ionian
	{2, 1, 2, 2, 2, 1, 2}, // Dorian
	{1, 2, 2, 2, 1, 2, 2}, // Phrygian
	{2, 2, 2, 1, 2, 2, 1}, // Lydian
	{2, 2, 1, 2, 2, 1, 2}, // Mixolydian
	{2, 1, 2, 2, 1, 2, 2}, // Aeolian
	{1, 2, 2, 1, 2, 2, 2}, // Locrian
}

// IntervalPattern returns the gaps between the sorted notes of s. Scales with
// fewer than two notes have an empty pattern.
func IntervalPattern(s Scale) Pattern {
	notes := s.Notes()
	if len(notes) < 2 {
		return Pattern{}
	}

	p := make(Pattern, len(notes))
	for i, n := range notes {
		next := notes[(i+1)%len(notes)]
		p[i] = wrap(int(next - n))
	}
	return p
}

// CanonicalPattern is the rotation-normalised interval pattern of s.
func CanonicalPattern(s Scale) Pattern {
	return IntervalPattern(s).Canonical()
}

// Canonical returns the lexicographically smallest rotation of p.
func (p Pattern) Canonical() Pattern {
	best := slices.Clone(p)
	if len(p) == 0 {
		return best
	}

	rot := make(Pattern, len(p))
	for i := 1; i < len(p); i++ {
		copy(rot, p[i:])
		copy(rot[len(p)-i:], p[:i])
		if slices.Compare(rot, best) < 0 {
			copy(best, rot)
		}
	}
	return best
}

// Sum returns the total span of the pattern in semitones.
func (p Pattern) Sum() int {
	var total int
	for _, g := range p {
		total += g
	}
	return total
}

// String renders the pattern as comma-joined gaps, e.g. "2,2,1,2,2,2,1".
func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, g := range p {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, ",")
}

// FromPattern builds the scale starting at root whose successive gaps are p.
// The final gap closes the octave and does not add a note.
func FromPattern(root PitchClass, p Pattern) Scale {
	if len(p) == 0 {
		return New(int(root))
	}
	s := New(int(root))
	n := int(root)
	for _, g := range p[:len(p)-1] {
		n += g
		s |= New(n)
	}
	return s
}

// IsMajor reports whether s is one of the seven diatonic modes in any key.
func IsMajor(s Scale) bool {
	p := IntervalPattern(s)
	if len(p) != 7 {
		return false
	}
	for _, m := range majorModes {
		if slices.Equal(p, m) {
			return true
		}
	}
	return false
}
