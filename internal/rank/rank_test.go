package rank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkdex/coastle/internal/catalog"
)

func entity(id string, score float64) catalog.Entity {
	return catalog.Entity{ID: id, Name: "Coaster " + id, Score: score}
}

// Five entities, B and C tied on score within the same park, B flagship.
func scenarioPool() []catalog.Entity {
	b := entity("B", 8.5)
	b.GroupKey = "park-1"
	b.ParkFlagship = true
	c := entity("C", 8.5)
	c.GroupKey = "park-1"
	return []catalog.Entity{
		entity("A", 9.0), b, c, entity("D", 7.0), entity("E", 6.0),
	}
}

func TestSortByRankFlagshipBreaksSameParkTie(t *testing.T) {
	sorted := SortByRank(scenarioPool())
	require.Len(t, sorted, 5)
	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID, sorted[4].ID}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ids)
}

func TestRankOfScenario(t *testing.T) {
	st := RankOf("D", scenarioPool())
	require.NotNil(t, st.Rank)
	assert.Equal(t, 4, *st.Rank)
	assert.Equal(t, 5, st.Total)
}

func TestRankOfAbsentEntity(t *testing.T) {
	st := RankOf("nope", scenarioPool())
	assert.Nil(t, st.Rank)
	assert.Equal(t, 5, st.Total)
}

func TestSortByRankIdempotent(t *testing.T) {
	once := SortByRank(scenarioPool())
	twice := SortByRank(once)
	assert.Equal(t, once, twice)
}

func TestSortByRankDoesNotMutateInput(t *testing.T) {
	in := scenarioPool()
	_ = SortByRank(in)
	assert.Equal(t, "A", in[0].ID)
	assert.Equal(t, "B", in[1].ID)
}

func TestRankOfConsistentWithSortByRank(t *testing.T) {
	pool := scenarioPool()
	sorted := SortByRank(pool)
	for i, e := range sorted {
		st := RankOf(e.ID, pool)
		require.NotNil(t, st.Rank, e.ID)
		assert.Equal(t, i+1, *st.Rank, e.ID)
	}
}

func TestFlagshipIgnoredAcrossParks(t *testing.T) {
	a := entity("a", 8.0)
	a.GroupKey = "park-1"
	b := entity("b", 8.0)
	b.GroupKey = "park-2"
	b.ParkFlagship = true
	b.RideCount = 0
	a.RideCount = 3

	// b is a flagship but of a different park; ride count decides instead.
	sorted := SortByRank([]catalog.Entity{b, a})
	assert.Equal(t, "a", sorted[0].ID)
}

func TestRideCountAndLastRiddenTiebreaks(t *testing.T) {
	older := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a := entity("a", 8.0)
	a.RideCount = 5
	b := entity("b", 8.0)
	b.RideCount = 9
	sorted := SortByRank([]catalog.Entity{a, b})
	assert.Equal(t, "b", sorted[0].ID, "higher ride count wins")

	c := entity("c", 8.0)
	c.RideCount = 5
	c.LastRiddenAt = &older
	d := entity("d", 8.0)
	d.RideCount = 5
	d.LastRiddenAt = &newer
	sorted = SortByRank([]catalog.Entity{c, d})
	assert.Equal(t, "d", sorted[0].ID, "more recent activity wins")

	e := entity("e", 8.0)
	e.RideCount = 5
	e.LastRiddenAt = &older
	f := entity("f", 8.0)
	f.RideCount = 5
	sorted = SortByRank([]catalog.Entity{f, e})
	assert.Equal(t, "e", sorted[0].ID, "unknown timestamp sorts last")
}

func TestTrueTieKeepsInsertionOrder(t *testing.T) {
	x := entity("x", 7.0)
	y := entity("y", 7.0)
	sorted := SortByRank([]catalog.Entity{x, y})
	assert.Equal(t, "x", sorted[0].ID)
	sorted = SortByRank([]catalog.Entity{y, x})
	assert.Equal(t, "y", sorted[0].ID)
}

func TestSortByRankDegenerateInputs(t *testing.T) {
	assert.Empty(t, SortByRank(nil))
	one := SortByRank([]catalog.Entity{entity("solo", 5)})
	require.Len(t, one, 1)

	st := RankOf("solo", nil)
	assert.Nil(t, st.Rank)
	assert.Zero(t, st.Total)
}

func TestSnapScore(t *testing.T) {
	assert.Equal(t, 0.0, SnapScore(-4, 0, 10, 0.5), "clamped to min")
	assert.Equal(t, 10.0, SnapScore(99, 0, 10, 0.5), "clamped to max")
	assert.Equal(t, 7.5, SnapScore(7.4, 0, 10, 0.5), "snapped to nearest step")
	assert.Equal(t, 7.0, SnapScore(7.1, 0, 10, 0.5))
	assert.Equal(t, 3.3, SnapScore(3.3, 0, 10, 0), "zero step disables snapping")
}
