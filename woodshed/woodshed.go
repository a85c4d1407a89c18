package woodshed

import "github.com/mager/woodshed/notation"

// Song is a tune in the speed standards repertoire.
type Song struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	// Achieved is the fastest tempo played cleanly so far, in BPM.
	// Zero means the song has not been achieved at any tempo.
	Achieved float64 `json:"achieved" db:"achieved"`
	// Target is the goal tempo in BPM. Zero means the song has not been tried.
	Target float64 `json:"target" db:"target"`
}

// StrategyCard is a single prompt drawn from the strategy card deck.
type StrategyCard struct {
	ID      int64  `json:"id" db:"id"`
	Content string `json:"content" db:"content"`
}

// RankedScale is one scale type in a circle-of-fifths ranking.
type RankedScale struct {
	// Rank is 1-based.
	Rank int `json:"rank" firestore:"rank"`
	// Magnitude is rounded to 4 decimal places.
	Magnitude   float64 `json:"magnitude" firestore:"magnitude"`
	Cardinality int     `json:"cardinality" firestore:"cardinality"`
	// Pattern is the canonical interval pattern, e.g. "1,2,2,1,2,2,2".
	Pattern string `json:"pattern" firestore:"pattern"`
	Major   bool   `json:"major" firestore:"major"`
	// Notes spells the highest-scoring representative of the type.
	Notes []string `json:"notes" firestore:"notes"`
}

// CardinalityCount is how many unique scale types have a given number of notes.
type CardinalityCount struct {
	Cardinality int `json:"cardinality" firestore:"cardinality"`
	Count       int `json:"count" firestore:"count"`
}

// ScaleAnalysis describes a single pitch-class set.
type ScaleAnalysis struct {
	Notes            []string `json:"notes"`
	PitchClasses     []int    `json:"pitch_classes"`
	IntervalPattern  string   `json:"interval_pattern"`
	CanonicalPattern string   `json:"canonical_pattern"`
	Major            bool     `json:"major"`
	Alpha            float64  `json:"alpha"`
	RawMagnitude     float64  `json:"raw_magnitude"`
	RotatedMagnitude float64  `json:"rotated_magnitude"`
}

// GeneratedScale is a random 2d6 scale ready for display on a treble staff.
type GeneratedScale struct {
	Semitones       []int           `json:"semitones"`
	Notes           []notation.Note `json:"notes"`
	Spelled         []string        `json:"spelled"`
	IntervalPattern string          `json:"interval_pattern"`
}
