// internal/game/session.go
//
// Session state machine for a single game.
//
// States: playing → won, playing → lost, playing → playing (self-loop on a
// non-terminal guess). Terminal states accept no further guesses; a new
// session is the only way out (reset / mode switch, owned by the Manager).
//
// Transition on SubmitGuess:
//   1. Duplicate candidate → rejected, no state change.
//   2. Evaluate, append GuessRecord.
//   3. Candidate is the answer → won.
//   4. Move limit reached → lost.
//   5. Otherwise keep playing.

package game

import (
	"errors"

	"github.com/parkdex/coastle/internal/catalog"
)

var (
	// ErrFinished signals a guess against a terminal session.
	ErrFinished = errors.New("game finished")
	// ErrDuplicateGuess signals a candidate already present in the guess list.
	// Transient, non-fatal: the session is unchanged.
	ErrDuplicateGuess = errors.New("already guessed")
)

// NewSession starts a fresh playing session for the given answer.
// seed is the daily seed for daily mode and zero for endless.
func NewSession(mode Mode, seed int, answer catalog.Entity) *Session {
	return &Session{
		Mode:    mode,
		Seed:    seed,
		Answer:  answer,
		Guesses: []GuessRecord{},
		Status:  StatusPlaying,
	}
}

// SubmitGuess validates and applies one guess, returning its record.
// The returned error is one of the sentinels above; any other outcome is a
// legal transition.
func (s *Session) SubmitGuess(candidate catalog.Entity) (GuessRecord, error) {
	if s.Status != StatusPlaying {
		return GuessRecord{}, ErrFinished
	}
	for _, g := range s.Guesses {
		if g.Entity.ID == candidate.ID {
			return GuessRecord{}, ErrDuplicateGuess
		}
	}

	rec := Evaluate(candidate, s.Answer)
	s.Guesses = append(s.Guesses, rec)

	switch {
	case candidate.ID == s.Answer.ID:
		s.Status = StatusWon
	case len(s.Guesses) >= MaxGuesses:
		s.Status = StatusLost
	}
	return rec, nil
}

// Finished reports whether the session reached a terminal state.
func (s *Session) Finished() bool { return s.Status != StatusPlaying }
