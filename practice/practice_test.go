package practice

import (
	"math/rand/v2"
	"testing"

	"github.com/mager/woodshed/woodshed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestWeight(t *testing.T) {
	assert.Equal(t, 1.0, Weight(woodshed.Song{}))
	assert.Equal(t, 0.5, Weight(woodshed.Song{Achieved: 100, Target: 200}))
	assert.Equal(t, 0.0, Weight(woodshed.Song{Achieved: 200, Target: 200}))
	assert.Less(t, Weight(woodshed.Song{Achieved: 220, Target: 200}), 0.0)
}

func TestFilters(t *testing.T) {
	songs := []woodshed.Song{
		{ID: 1, Title: "Untried"},
		{ID: 2, Title: "Unachieved", Target: 180},
		{ID: 3, Title: "Halfway", Achieved: 90, Target: 180},
	}

	assert.Len(t, Tried(songs), 2)
	assert.Len(t, Untried(songs), 1)
	require.Len(t, Unachieved(songs), 1)
	assert.Equal(t, int64(2), Unachieved(songs)[0].ID)
}

func TestAverageWeight(t *testing.T) {
	assert.Equal(t, 1.0, AverageWeight(nil))
	songs := []woodshed.Song{
		{Achieved: 50, Target: 100},
		{Achieved: 75, Target: 100},
		{Achieved: 120, Target: 100},
		{Title: "untried"},
	}
	assert.InDelta(t, 0.375, AverageWeight(songs), 1e-12)
}

func TestSongToPracticeEmpty(t *testing.T) {
	_, err := SongToPractice(newRand(), nil)
	assert.ErrorIs(t, err, ErrEmptyRepertoire)
}

func TestSongToPracticePrefersUnachieved(t *testing.T) {
	songs := []woodshed.Song{
		{ID: 1, Achieved: 10, Target: 200},
		{ID: 2, Target: 150},
		{ID: 3},
	}
	rng := newRand()
	for i := 0; i < 50; i++ {
		s, err := SongToPractice(rng, songs)
		require.NoError(t, err)
		assert.Equal(t, int64(2), s.ID)
	}
}

func TestSongToPracticeWeighted(t *testing.T) {
	songs := []woodshed.Song{
		{ID: 1, Achieved: 200, Target: 200},
		{ID: 2, Achieved: 20, Target: 200},
		{ID: 3},
	}
	rng := newRand()
	counts := make(map[int64]int)
	for i := 0; i < 2000; i++ {
		s, err := SongToPractice(rng, songs)
		require.NoError(t, err)
		counts[s.ID]++
	}

	// A finished song has zero weight and should essentially never come up.
	assert.Less(t, counts[1], 5)
	assert.Greater(t, counts[2], 700)
	assert.Greater(t, counts[3], 700)
}

func TestSongToPracticeOnlyUntried(t *testing.T) {
	songs := []woodshed.Song{{ID: 7}, {ID: 8}}
	s, err := SongToPractice(newRand(), songs)
	require.NoError(t, err)
	assert.Contains(t, []int64{7, 8}, s.ID)
}
