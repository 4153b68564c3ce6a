package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkdex/coastle/internal/catalog"
)

func testPool() []catalog.Entity {
	return []catalog.Entity{
		{ID: "1", Name: "Maverick", Park: "Cedar Point"},
		{ID: "2", Name: "Steel Vengeance", Park: "Cedar Point"},
		{ID: "3", Name: "Zadra", Park: "Energylandia"},
		{ID: "4", Name: "Hyperion", Park: "Energylandia"},
		{ID: "5", Name: "Schwur des Kärnan", Park: "Hansa-Park"},
		{ID: "6", Name: "Steel Curtain", Park: "Kennywood"},
	}
}

func names(es []catalog.Entity) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}

func TestSuggestEmptyQuery(t *testing.T) {
	assert.Empty(t, Suggest("", testPool(), 10))
	assert.Empty(t, Suggest("   \t ", testPool(), 10))
}

func TestSuggestEmptyPool(t *testing.T) {
	assert.Empty(t, Suggest("maverick", nil, 10))
}

func TestSuggestZeroLimit(t *testing.T) {
	assert.Empty(t, Suggest("maverick", testPool(), 0))
}

func TestSuggestExactMatchFirst(t *testing.T) {
	got := Suggest("maverick", testPool(), 10)
	require.NotEmpty(t, got)
	assert.Equal(t, "Maverick", got[0].Name)
}

func TestSuggestPrefixBeatsSubstring(t *testing.T) {
	got := Suggest("steel", testPool(), 10)
	require.Len(t, got, 2)
	// Both are prefix matches; higher coverage (shorter name) ranks first.
	assert.ElementsMatch(t, []string{"Steel Vengeance", "Steel Curtain"}, names(got))
	assert.Equal(t, "Steel Curtain", got[0].Name)
}

func TestSuggestCaseInsensitive(t *testing.T) {
	got := Suggest("ZADRA", testPool(), 10)
	require.NotEmpty(t, got)
	assert.Equal(t, "Zadra", got[0].Name)
}

func TestSuggestDiacriticsFolded(t *testing.T) {
	got := Suggest("karnan", testPool(), 10)
	require.NotEmpty(t, got, "query without umlaut must find Kärnan")
	assert.Equal(t, "Schwur des Kärnan", got[0].Name)
}

func TestSuggestToleratesTypo(t *testing.T) {
	got := Suggest("mavrick", testPool(), 10)
	require.NotEmpty(t, got)
	assert.Equal(t, "Maverick", got[0].Name)
}

func TestSuggestMatchesParkLabel(t *testing.T) {
	got := Suggest("energylandia", testPool(), 10)
	assert.ElementsMatch(t, []string{"Zadra", "Hyperion"}, names(got))
}

func TestSuggestRespectsLimit(t *testing.T) {
	got := Suggest("steel", testPool(), 1)
	assert.Len(t, got, 1)
}

func TestSuggestNoLooseNoise(t *testing.T) {
	assert.Empty(t, Suggest("xqzzt", testPool(), 10))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "schwur des karnan", Fold("  Schwur   des Kärnan "))
	assert.Equal(t, "", Fold("   "))
}
