// internal/stats/stats.go
//
// Player statistics aggregation. PlayerStats is a plain value: OnGameEnd
// returns an updated copy and never mutates its input, so callers can
// persist/compare snapshots and tests stay trivial.
//
// Update rule, applied exactly once per terminated game:
//   - played always increments
//   - win: won++, streak++, max streak tracks, histogram bucket for the
//     winning guess count increments
//   - loss: streak resets to zero

package stats

// PlayerStats accumulates across sessions; persisted indefinitely.
type PlayerStats struct {
	Played            int   `json:"played"`
	Won               int   `json:"won"`
	CurrentStreak     int   `json:"currentStreak"`
	MaxStreak         int   `json:"maxStreak"`
	GuessDistribution []int `json:"guessDistribution"`
}

// New returns zeroed stats with a histogram sized for maxGuesses.
func New(maxGuesses int) PlayerStats {
	if maxGuesses < 1 {
		maxGuesses = 1
	}
	return PlayerStats{GuessDistribution: make([]int, maxGuesses)}
}

// OnGameEnd folds one finished game into s and returns the result.
// guessCount is the number of guesses the winning game took; ignored for
// losses. The input value is left untouched.
func OnGameEnd(won bool, guessCount int, s PlayerStats) PlayerStats {
	out := s
	out.GuessDistribution = append([]int(nil), s.GuessDistribution...)

	out.Played++
	if !won {
		out.CurrentStreak = 0
		return out
	}

	out.Won++
	out.CurrentStreak++
	if out.CurrentStreak > out.MaxStreak {
		out.MaxStreak = out.CurrentStreak
	}
	if guessCount >= 1 {
		for len(out.GuessDistribution) < guessCount {
			out.GuessDistribution = append(out.GuessDistribution, 0)
		}
		out.GuessDistribution[guessCount-1]++
	}
	return out
}
