// internal/daily/daily.go
//
// Deterministic daily-answer selection.
//
// The answer for a UTC calendar date is a pure function of (date, pool):
// the date encodes to an integer seed (YYYYMMDD), one linear-congruential
// step turns the seed into an index, and an anti-repeat rule guarantees
// that consecutive days never pick the same pool slot when the pool has
// more than one entry.
//
// Anti-repeat walks the adjusted-index chain forward from a fixed epoch:
// each day's raw index is bumped by one slot if it collides with the
// previous day's final index. Comparing against the final (not raw) index
// is what makes the no-repeat guarantee hold for every pool size; the walk
// is cheap (one LCG step per day since 2020) and keeps the function pure.
//
// Index stability under pool reordering is explicitly not provided —
// callers must fix the pool's enumeration order (sort by ID) before use.

package daily

import "time"

// Classic LCG constants (glibc rand). Internal consistency is what matters:
// the same (date, pool) pair must map to the same entity run after run.
const (
	lcgA = 1103515245
	lcgC = 12345
	lcgM = 1 << 31
)

// epoch anchors the anti-repeat chain. Dates before it fall back to the
// raw index; the product did not exist then.
var epoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Seed encodes a UTC calendar date as year*10000 + month*100 + day.
func Seed(t time.Time) int {
	u := t.UTC()
	return u.Year()*10000 + int(u.Month())*100 + u.Day()
}

// rawIndex is one LCG step over the date seed, reduced to the pool size.
func rawIndex(t time.Time, n int) int {
	v := (lcgA*int64(Seed(t)) + lcgC) % lcgM
	if v < 0 {
		v += lcgM
	}
	return int(v % int64(n))
}

// IndexFor returns the adjusted pool index for a date.
// Non-positive n yields 0 so callers can't be handed an out-of-range index.
func IndexFor(t time.Time, n int) int {
	if n <= 1 {
		return 0
	}
	day := time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(epoch) {
		return rawIndex(day, n)
	}
	idx := rawIndex(epoch, n)
	for cur := epoch; cur.Before(day); {
		cur = cur.AddDate(0, 0, 1)
		next := rawIndex(cur, n)
		if next == idx {
			next = (next + 1) % n
		}
		idx = next
	}
	return idx
}

// PickAnswer deterministically selects the answer of the day from pool.
// ok is false only for an empty pool.
func PickAnswer[E any](t time.Time, pool []E) (E, bool) {
	var zero E
	if len(pool) == 0 {
		return zero, false
	}
	return pool[IndexFor(t, len(pool))], true
}
