// Package scale scores pitch-class sets by their spread around the circle of
// fifths and ranks every scale type of the chromatic scale.
package scale

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// PitchClass is one of the 12 equal-tempered semitones, 0 = C.
type PitchClass int

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name returns the sharp spelling of the pitch class.
func (p PitchClass) Name() string {
	return noteNames[wrap(int(p))]
}

// Scale is a set of pitch classes stored as a 12-bit mask, bit n = pitch class n.
type Scale uint16

const (
	// Chromatic contains all 12 pitch classes.
	Chromatic Scale = 1<<12 - 1

	// Subsets is the number of distinct scales, including the empty one.
	Subsets = 1 << 12
)

// New builds a scale from pitch classes. Values outside [0,12) are wrapped.
func New(pcs ...int) Scale {
	var s Scale
	for _, p := range pcs {
		s |= 1 << wrap(p)
	}
	return s
}

// ParseScale parses a comma separated list of pitch classes such as "0,4,7".
func ParseScale(in string) (Scale, error) {
	var s Scale
	in = strings.TrimSpace(in)
	if in == "" {
		return s, nil
	}
	for _, f := range strings.Split(in, ",") {
		p, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return 0, fmt.Errorf("invalid pitch class %q: %w", f, err)
		}
		if p < 0 || p > 11 {
			return 0, fmt.Errorf("pitch class %d out of range [0,12)", p)
		}
		s |= 1 << p
	}
	return s, nil
}

func (s Scale) Len() int {
	return bits.OnesCount16(uint16(s & Chromatic))
}

func (s Scale) Contains(p PitchClass) bool {
	return s&(1<<wrap(int(p))) != 0
}

// Notes returns the pitch classes in ascending order.
func (s Scale) Notes() []PitchClass {
	notes := make([]PitchClass, 0, s.Len())
	for p := 0; p < 12; p++ {
		if s&(1<<p) != 0 {
			notes = append(notes, PitchClass(p))
		}
	}
	return notes
}

func (s Scale) Names() []string {
	notes := s.Notes()
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name()
	}
	return names
}

// Transpose shifts every pitch class up by n semitones.
func (s Scale) Transpose(n int) Scale {
	var out Scale
	for _, p := range s.Notes() {
		out |= 1 << wrap(int(p)+n)
	}
	return out
}

func (s Scale) String() string {
	return strings.Join(s.Names(), " ")
}

// compareNotes orders scales by cardinality, then by their ascending note lists.
func compareNotes(a, b Scale) int {
	if la, lb := a.Len(), b.Len(); la != lb {
		return la - lb
	}
	na, nb := a.Notes(), b.Notes()
	for i := range na {
		if na[i] != nb[i] {
			return int(na[i] - nb[i])
		}
	}
	return 0
}

func wrap(p int) int {
	return ((p % 12) + 12) % 12
}
