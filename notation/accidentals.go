package notation

// validIntervals maps a letter distance to the semitone distances it may span.
var validIntervals = [7][]int{
	{0},      // unison
	{1, 2},   // second
	{3, 4},   // third
	{5, 6},   // fourth
	{6, 7},   // fifth
	{8, 9},   // sixth
	{10, 11}, // seventh
}

// ChooseAccidentals spells semitone offsets from C4, picking sharps or flats
// for black keys so that letter names agree with interval sizes as often as
// possible.
func ChooseAccidentals(semitones []int) []Note {
	if !hasBlackKeys(semitones) {
		return withOctaves(semitones, spell(semitones, sharpNames))
	}

	sharps := spell(semitones, sharpNames)
	flats := spell(semitones, flatNames)
	sharpScore, flatScore := scoreSpelling(semitones, sharps), scoreSpelling(semitones, flats)

	best, bestScore := flats, flatScore
	if sharpScore >= flatScore {
		best, bestScore = sharps, sharpScore
	}

	// Flip single accidentals while that keeps improving the score.
	for i, s := range semitones {
		if !blackKeys[pitchClass(s)] {
			continue
		}
		orig := best[i]
		best[i] = enharmonics[orig]
		if score := scoreSpelling(semitones, best); score > bestScore {
			bestScore = score
		} else {
			best[i] = orig
		}
	}

	return withOctaves(semitones, best)
}

// scoreSpelling subtracts one for every pair of notes whose letter distance
// does not match their semitone distance.
func scoreSpelling(semitones []int, names []string) int {
	score := 0
	for i := 0; i < len(semitones)-1; i++ {
		for j := i + 1; j < len(semitones); j++ {
			lo, hi := i, j
			if semitones[j] < semitones[i] {
				lo, hi = j, i
			}
			semis := (semitones[hi] - semitones[lo]) % 12
			steps := (letterIndex(names[hi]) - letterIndex(names[lo]) + 7) % 7
			if !validInterval(semis, steps) {
				score--
			}
		}
	}
	return score
}

func validInterval(semis, steps int) bool {
	for _, v := range validIntervals[steps] {
		if v == semis {
			return true
		}
	}
	return false
}

func spell(semitones []int, table [12]string) []string {
	names := make([]string, len(semitones))
	for i, s := range semitones {
		names[i] = table[pitchClass(s)]
	}
	return names
}

func hasBlackKeys(semitones []int) bool {
	for _, s := range semitones {
		if blackKeys[pitchClass(s)] {
			return true
		}
	}
	return false
}

func withOctaves(semitones []int, names []string) []Note {
	notes := make([]Note, len(semitones))
	for i, s := range semitones {
		notes[i] = Note{Name: names[i], Octave: octaveOf(s)}
	}
	return notes
}
