// internal/rank/rank.go
//
// Multi-key ranking engine for canonical catalog entities.
// Responsibilities:
//   - SortByRank: stable total order by the fixed rank tuple.
//   - RankOf: 1-based position of an entity within an arbitrary subset.
//   - SnapScore: clamp + snap for manual "insert at value" score overrides.
//
// Rank tuple, first difference wins:
//   1. score, descending
//   2. park-flagship flag, descending — only when both entities share a park
//   3. ride count, descending
//   4. last-ridden timestamp, descending (unknown sorts last)
//
// True ties keep input order (stable sort), so the engine is deterministic
// and idempotent for any fixed input. Callers pre-filter via the catalog
// adapter; unrated entities never reach this package.

package rank

import (
	"math"
	"sort"
	"time"

	"github.com/parkdex/coastle/internal/catalog"
)

// SortByRank returns a new slice sorted by the rank tuple. The input is
// never mutated; calling it twice on the same input yields identical output.
func SortByRank(entities []catalog.Entity) []catalog.Entity {
	out := make([]catalog.Entity, len(entities))
	copy(out, entities)
	sort.SliceStable(out, func(i, j int) bool {
		return rankLess(out[i], out[j])
	})
	return out
}

// rankLess reports whether a outranks b per the tuple above.
func rankLess(a, b catalog.Entity) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	// Flagship only breaks ties between coasters of the same park.
	if a.GroupKey != "" && a.GroupKey == b.GroupKey && a.ParkFlagship != b.ParkFlagship {
		return a.ParkFlagship
	}
	if a.RideCount != b.RideCount {
		return a.RideCount > b.RideCount
	}
	at, bt := lastRidden(a), lastRidden(b)
	if !at.Equal(bt) {
		return at.After(bt)
	}
	return false
}

// lastRidden treats a missing timestamp as the zero time (sorts last).
func lastRidden(e catalog.Entity) time.Time {
	if e.LastRiddenAt != nil {
		return e.LastRiddenAt.UTC()
	}
	return time.Time{}
}

// Standing is the result of RankOf. Rank is nil when the entity is absent
// from the subset (dropped by the adapter, or simply not a member).
type Standing struct {
	Rank  *int `json:"rank"`
	Total int  `json:"total"`
}

// RankOf sorts subset by rank and locates id within it. Rank is 1-based.
// There is no second ordering code path: RankOf is always consistent with
// SortByRank by construction.
func RankOf(id string, subset []catalog.Entity) Standing {
	sorted := SortByRank(subset)
	st := Standing{Total: len(sorted)}
	for i, e := range sorted {
		if e.ID == id {
			pos := i + 1
			st.Rank = &pos
			return st
		}
	}
	return st
}

// SnapScore clamps v into [min, max] and snaps it to the nearest multiple
// of step (measured from min). Used by the manual insert-at-value flows;
// out-of-range input is corrected, never rejected.
func SnapScore(v, min, max, step float64) float64 {
	if max < min {
		min, max = max, min
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	if step <= 0 {
		return v
	}
	snapped := min + math.Round((v-min)/step)*step
	if snapped > max {
		snapped = max
	}
	return snapped
}
