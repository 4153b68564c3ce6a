// internal/game/evaluate.go
//
// Guess evaluation: compares a candidate entity against the answer,
// attribute by attribute. Pure — no dependency on prior guesses, so
// re-evaluating the same pair is idempotent (replay/re-render safe).
//
// Rules:
//   - Categorical: correct iff exactly equal; two absent values are equal.
//   - Numeric: same equality rule, plus diff = guess - answer. A nonzero
//     diff drives a direction hint (positive → the answer is lower,
//     negative → the answer is higher). If either side is unknown the diff
//     is reported as 0: inconclusive, never a false "correct".

package game

import "github.com/parkdex/coastle/internal/catalog"

// Direction hints derived from a numeric diff.
const (
	HintHigher = "higher"
	HintLower  = "lower"
)

// Evaluate scores guess against answer and returns the immutable record.
func Evaluate(guess, answer catalog.Entity) GuessRecord {
	rec := GuessRecord{
		Entity:       guess,
		Matches:      make(map[string]Verdict, len(Attributes)),
		NumericDiffs: make(map[string]int, 2),
	}

	rec.Matches[AttrManufacturer] = categorical(guess.Manufacturer, answer.Manufacturer)
	rec.Matches[AttrPark] = categorical(guess.Park, answer.Park)
	rec.Matches[AttrCountry] = categorical(guess.Country, answer.Country)

	rec.Matches[AttrYear], rec.NumericDiffs[AttrYear] = numeric(guess.YearOpened, answer.YearOpened)
	rec.Matches[AttrInversions], rec.NumericDiffs[AttrInversions] = numeric(guess.Inversions, answer.Inversions)

	return rec
}

// Hint translates a stored diff into a direction hint for the answer.
// Empty string means no hint (exact match or inconclusive comparison).
func Hint(diff int) string {
	switch {
	case diff > 0:
		return HintLower
	case diff < 0:
		return HintHigher
	default:
		return ""
	}
}

func categorical(g, a string) Verdict {
	if g == a {
		return VerdictCorrect
	}
	return VerdictWrong
}

// numeric compares two optional ints. Both nil is a correct match; one nil
// is wrong with a zero (hint-less) diff.
func numeric(g, a *int) (Verdict, int) {
	switch {
	case g == nil && a == nil:
		return VerdictCorrect, 0
	case g == nil || a == nil:
		return VerdictWrong, 0
	case *g == *a:
		return VerdictCorrect, 0
	default:
		return VerdictWrong, *g - *a
	}
}
