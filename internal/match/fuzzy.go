// internal/match/fuzzy.go
//
// Fuzzy name matching: turns partial text input into a bounded, ranked
// list of guess candidates.
//
// Scoring tiers (strongest first):
//   - exact folded name match
//   - name prefix
//   - word-boundary prefix within the name
//   - substring of the name
//   - substring of the park label (weaker; lets "energylandia" surface
//     that park's coasters)
//   - Jaro-Winkler similarity on the folded name, thresholded
//
// Queries and names are folded before comparison: lowercased, diacritics
// stripped (so "voltron" finds "Voltron Nevera"), whitespace collapsed.
// Empty and whitespace-only queries match nothing.

package match

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/parkdex/coastle/internal/catalog"
)

// Score tiers. Fuzzy similarity lands in (0, fuzzyCeil) so even a strong
// fuzzy hit never outranks an exact or prefix match.
const (
	scoreExact      = 1000.0
	scorePrefix     = 900.0
	scoreWordPrefix = 800.0
	scoreSubstring  = 700.0
	scoreGroupHit   = 400.0
	fuzzyCeil       = 300.0

	// minSimilarity rejects loose Jaro-Winkler noise. 0.82 tolerates one or
	// two typos in a short title without matching unrelated names.
	minSimilarity = 0.82
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s, strips diacritical marks, and collapses inner runs of
// whitespace to single spaces.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// scored pairs a pool index with its relevance score.
type scored struct {
	idx   int
	score float64
}

// Suggest returns up to limit entities from pool ordered by descending
// relevance to query. Total for every input: empty query, empty pool, or a
// non-positive limit all yield an empty (nil) result.
func Suggest(query string, pool []catalog.Entity, limit int) []catalog.Entity {
	q := Fold(query)
	if q == "" || len(pool) == 0 || limit <= 0 {
		return nil
	}

	var hits []scored
	for i, e := range pool {
		if s := scoreOne(q, e); s > 0 {
			hits = append(hits, scored{idx: i, score: s})
		}
	}

	// Descending score; ties resolve by folded name, then ID, so output is
	// deterministic regardless of pool order.
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		ni, nj := Fold(pool[hits[i].idx].Name), Fold(pool[hits[j].idx].Name)
		if ni != nj {
			return ni < nj
		}
		return pool[hits[i].idx].ID < pool[hits[j].idx].ID
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]catalog.Entity, len(hits))
	for i, h := range hits {
		out[i] = pool[h.idx]
	}
	return out
}

// scoreOne scores a single entity against the folded query; 0 means no match.
func scoreOne(q string, e catalog.Entity) float64 {
	name := Fold(e.Name)
	switch {
	case name == q:
		return scoreExact
	case strings.HasPrefix(name, q):
		// Longer queries are more specific; reward coverage.
		return scorePrefix + coverage(q, name)
	case wordPrefix(name, q):
		return scoreWordPrefix + coverage(q, name)
	case strings.Contains(name, q):
		return scoreSubstring + coverage(q, name)
	}

	if group := Fold(e.Park); group != "" && strings.Contains(group, q) {
		return scoreGroupHit + coverage(q, group)
	}

	sim := float64(edlib.JaroWinklerSimilarity(q, name))
	if sim < minSimilarity {
		return 0
	}
	return sim * fuzzyCeil
}

// wordPrefix reports whether q starts any word of name past the first.
func wordPrefix(name, q string) bool {
	words := strings.Fields(name)
	if len(words) < 2 {
		return false
	}
	for _, w := range words[1:] {
		if strings.HasPrefix(w, q) {
			return true
		}
	}
	return false
}

// coverage rewards queries that cover more of the candidate (max ~99 so a
// tier never bleeds into the one above it).
func coverage(q, candidate string) float64 {
	if len(candidate) == 0 {
		return 0
	}
	c := 99.0 * float64(len(q)) / float64(len(candidate))
	if c > 99 {
		c = 99
	}
	return c
}
