// internal/game/types.go
//
// Core type definitions for the guessing game.
// Defines:
//   - Verdict: per-attribute result of a guess (correct/wrong).
//   - GuessRecord: immutable evaluation of one accepted guess.
//   - Session: state for a single in-progress or finished game.

package game

import "github.com/parkdex/coastle/internal/catalog"

// MaxGuesses is the move limit; reaching it without the answer loses the game.
const MaxGuesses = 5

// Verdict is the evaluation result for a single attribute of a guess.
// The product copy mentions a "close" tier for numeric attributes, but the
// shipped behavior is binary: closeness is conveyed by the direction hint.
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictWrong   Verdict = "wrong"
)

// Mode selects daily (seeded, persisted, restorable) or endless (ephemeral).
type Mode string

const (
	ModeDaily   Mode = "daily"
	ModeEndless Mode = "endless"
)

// Status is the session's state-machine position.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Comparison attribute names, in display order. Shared by the evaluator,
// the share-text renderer, and the HTTP layer.
const (
	AttrManufacturer = "manufacturer"
	AttrPark         = "park"
	AttrCountry      = "country"
	AttrYear         = "year"
	AttrInversions   = "inversions"
)

// Attributes is the fixed evaluation/display order.
var Attributes = []string{AttrManufacturer, AttrPark, AttrCountry, AttrYear, AttrInversions}

// GuessRecord is the immutable result of evaluating one guess against the
// answer. NumericDiffs holds guess-minus-answer for numeric attributes; a
// missing value on either side reports 0 (inconclusive, no hint).
type GuessRecord struct {
	Entity       catalog.Entity     `json:"entity"`
	Matches      map[string]Verdict `json:"matches"`
	NumericDiffs map[string]int     `json:"numericDiffs"`
}

// Session holds one game. Mutated only by appending a guess or moving
// Status; replaced wholesale on reset or mode switch.
type Session struct {
	Mode    Mode           `json:"mode"`
	Seed    int            `json:"seed,omitempty"` // daily seed; zero for endless
	Answer  catalog.Entity `json:"answer"`
	Guesses []GuessRecord  `json:"guesses"`
	Status  Status         `json:"status"`
}
