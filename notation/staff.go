package notation

// Treble staff bounds as absolute letter indices: E4 and F5.
const (
	trebleLow  = 4*7 + 2
	trebleHigh = 5*7 + 3
)

// CountLedgerLines returns how many ledger lines n needs on a treble staff.
// Accidentals do not matter, only the letter and octave.
func CountLedgerLines(n Note) int {
	switch idx := n.absoluteLetter(); {
	case idx < trebleLow:
		return (trebleLow - idx) / 2
	case idx > trebleHigh:
		return (idx - trebleHigh) / 2
	default:
		return 0
	}
}

// OptimizeForTrebleClef shifts notes by whole octaves to minimise the total
// number of ledger lines. The total is convex in the shift, so it walks down
// while that helps and then up while that helps.
func OptimizeForTrebleClef(notes []Note) []Note {
	current := notes
	score := totalLedgerLines(current)

	for {
		down := transpose(current, -1)
		s := totalLedgerLines(down)
		if s >= score {
			break
		}
		current, score = down, s
	}

	for {
		up := transpose(current, 1)
		s := totalLedgerLines(up)
		if s >= score {
			break
		}
		current, score = up, s
	}

	return current
}

func totalLedgerLines(notes []Note) int {
	total := 0
	for _, n := range notes {
		total += CountLedgerLines(n)
	}
	return total
}

func transpose(notes []Note, octaves int) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = Note{Name: n.Name, Octave: n.Octave + octaves}
	}
	return out
}
