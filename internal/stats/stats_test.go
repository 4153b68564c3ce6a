package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnGameEndWin(t *testing.T) {
	s := New(5)
	s = OnGameEnd(true, 3, s)

	assert.Equal(t, 1, s.Played)
	assert.Equal(t, 1, s.Won)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.MaxStreak)
	assert.Equal(t, []int{0, 0, 1, 0, 0}, s.GuessDistribution)
}

func TestOnGameEndLossResetsStreak(t *testing.T) {
	s := New(5)
	s = OnGameEnd(true, 1, s)
	s = OnGameEnd(true, 2, s)
	require.Equal(t, 2, s.CurrentStreak)

	s = OnGameEnd(false, 5, s)
	assert.Equal(t, 3, s.Played)
	assert.Equal(t, 2, s.Won)
	assert.Zero(t, s.CurrentStreak)
	assert.Equal(t, 2, s.MaxStreak, "max streak survives the loss")
	assert.Equal(t, []int{1, 1, 0, 0, 0}, s.GuessDistribution, "losses don't touch the histogram")
}

func TestOnGameEndPlayedMonotonic(t *testing.T) {
	s := New(5)
	for i := 0; i < 10; i++ {
		prev := s.Played
		s = OnGameEnd(i%2 == 0, 2, s)
		assert.Equal(t, prev+1, s.Played)
	}
}

func TestOnGameEndDoesNotMutateInput(t *testing.T) {
	in := New(5)
	in.Played = 7
	in.CurrentStreak = 3
	in.GuessDistribution[1] = 4

	out := OnGameEnd(true, 2, in)
	assert.Equal(t, 7, in.Played)
	assert.Equal(t, 4, in.GuessDistribution[1])
	assert.Equal(t, 8, out.Played)
	assert.Equal(t, 5, out.GuessDistribution[1])
}

func TestOnGameEndGrowsShortHistogram(t *testing.T) {
	s := PlayerStats{} // e.g. loaded from an older persisted shape
	s = OnGameEnd(true, 4, s)
	require.Len(t, s.GuessDistribution, 4)
	assert.Equal(t, 1, s.GuessDistribution[3])
}

func TestMaxStreakTracksCurrent(t *testing.T) {
	s := New(5)
	s = OnGameEnd(true, 1, s)
	s = OnGameEnd(false, 1, s)
	s = OnGameEnd(true, 1, s)
	s = OnGameEnd(true, 1, s)
	s = OnGameEnd(true, 1, s)
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.MaxStreak)
}
