package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(notes []Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}

func mustParse(t *testing.T, ss ...string) []Note {
	t.Helper()
	notes := make([]Note, len(ss))
	for i, s := range ss {
		n, err := ParseNote(s)
		require.NoError(t, err)
		notes[i] = n
	}
	return notes
}

func TestChooseAccidentals(t *testing.T) {
	tests := []struct {
		name      string
		semitones []int
		want      []string
	}{
		{"white keys keep plain names", []int{0, 2, 4}, []string{"C/4", "D/4", "E/4"}},
		{"different letters for different notes", []int{0, 1}, []string{"C/4", "Db/4"}},
		{"sharp below a natural", []int{10, 11}, []string{"A#/4", "B/4"}},
		{"minor third above G", []int{7, 10}, []string{"G/4", "Bb/4"}},
		{"minor third below B", []int{8, 11}, []string{"G#/4", "B/4"}},
		{"major third across the octave", []int{10, 14}, []string{"Bb/4", "D/5"}},
		{"consistent sharps", []int{6, 7, 0, 1, 2}, []string{"F#/4", "G/4", "C/4", "C#/4", "D/4"}},
		{"consistent flats", []int{9, 10, 0, 1, 2}, []string{"A/4", "Bb/4", "C/4", "Db/4", "D/4"}},
		{"same name across octaves", []int{1, 3, 4, 8, 10, 12, 13}, []string{"Db/4", "Eb/4", "E/4", "Ab/4", "Bb/4", "C/5", "Db/5"}},
		{"negative offsets", []int{-1, 0}, []string{"B/3", "C/4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(ChooseAccidentals(tt.semitones)))
		})
	}
}

func TestCountLedgerLines(t *testing.T) {
	tests := map[string]int{
		"D/4": 0, "E/4": 0, "G/4": 0, "C/5": 0, "F/5": 0, "G/5": 0,
		"C/4": 1, "B/3": 1, "A/3": 2, "G/3": 2, "F/3": 3,
		"A/5": 1, "C/6": 2, "D/6": 2, "E/6": 3,
	}
	for in, want := range tests {
		n := mustParse(t, in)[0]
		assert.Equal(t, want, CountLedgerLines(n), in)
	}

	sharp := mustParse(t, "C#/4", "C/4", "Bb/5", "B/5")
	assert.Equal(t, CountLedgerLines(sharp[1]), CountLedgerLines(sharp[0]))
	assert.Equal(t, CountLedgerLines(sharp[3]), CountLedgerLines(sharp[2]))
}

func TestOptimizeForTrebleClef(t *testing.T) {
	t.Run("already optimal", func(t *testing.T) {
		in := mustParse(t, "C/5", "D/5", "E/5", "F/5")
		assert.Equal(t, in, OptimizeForTrebleClef(in))
	})

	t.Run("too low moves up", func(t *testing.T) {
		in := mustParse(t, "C/2", "D/2", "E/2")
		out := OptimizeForTrebleClef(in)
		for i := range in {
			assert.Greater(t, out[i].Octave, in[i].Octave)
		}
	})

	t.Run("too high moves down", func(t *testing.T) {
		in := mustParse(t, "C/7", "D/7", "E/7")
		out := OptimizeForTrebleClef(in)
		for i := range in {
			assert.Less(t, out[i].Octave, in[i].Octave)
		}
	})

	t.Run("never worse", func(t *testing.T) {
		in := mustParse(t, "C/3", "E/3", "G/3", "B/3")
		out := OptimizeForTrebleClef(in)
		assert.LessOrEqual(t, totalLedgerLines(out), totalLedgerLines(in))
		assert.Equal(t, []string{"C/4", "E/4", "G/4", "B/4"}, names(out))
	})
}

func TestParseNote(t *testing.T) {
	n, err := ParseNote("Eb/3")
	require.NoError(t, err)
	assert.Equal(t, Note{Name: "Eb", Octave: 3}, n)

	for _, bad := range []string{"", "H/4", "C4", "C/x"} {
		_, err := ParseNote(bad)
		assert.Error(t, err, bad)
	}
}
