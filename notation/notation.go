package notation

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
	letters    = "CDEFGAB"

	blackKeys = map[int]bool{1: true, 3: true, 6: true, 8: true, 10: true}

	enharmonics = map[string]string{
		"C#": "Db", "Db": "C#",
		"D#": "Eb", "Eb": "D#",
		"F#": "Gb", "Gb": "F#",
		"G#": "Ab", "Ab": "G#",
		"A#": "Bb", "Bb": "A#",
	}
)

// Note is a spelled pitch with an octave, rendered as "C#/4". Octave 4 holds middle C.
type Note struct {
	Name   string `json:"name"`
	Octave int    `json:"octave"`
}

func (n Note) String() string {
	return fmt.Sprintf("%s/%d", n.Name, n.Octave)
}

// ParseNote reads a note in "Name/Octave" form.
func ParseNote(s string) (Note, error) {
	name, oct, ok := strings.Cut(s, "/")
	if !ok || name == "" || strings.IndexByte(letters, name[0]) < 0 {
		return Note{}, fmt.Errorf("invalid note %q", s)
	}
	o, err := strconv.Atoi(oct)
	if err != nil {
		return Note{}, fmt.Errorf("invalid octave in %q: %w", s, err)
	}
	return Note{Name: name, Octave: o}, nil
}

// letterIndex returns C=0 through B=6.
func letterIndex(name string) int {
	return strings.IndexByte(letters, name[0])
}

// absoluteLetter counts letter steps from C0.
func (n Note) absoluteLetter() int {
	return n.Octave*7 + letterIndex(n.Name)
}

func pitchClass(s int) int {
	return ((s % 12) + 12) % 12
}

func octaveOf(s int) int {
	o := s / 12
	if s%12 < 0 {
		o--
	}
	return o + 4
}
