// internal/catalog/source.go
//
// Catalog sources: where raw records come from.
//
// The catalog itself (schema, CRUD, images) belongs to the surrounding site;
// this package only consumes it. Three sources are provided:
//   - HTTPSource:     one-shot fetch of the site's JSON catalog endpoint.
//   - EmbeddedSource: a snapshot baked into the binary (assets package),
//     so the server boots with no catalog configured.
//   - SQLiteSource:   direct read of the site's SQLite store (sqlite.go).
//
// JSON payloads are duck-typed upstream (scores as strings, nulls), so
// extraction goes through gjson and lands in Raw's any-typed fields;
// Normalize does the actual coercion.

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// Source delivers raw catalog records. Fetch is one-shot, at session start.
type Source interface {
	Fetch(ctx context.Context) ([]Raw, error)
}

// HTTPSource fetches the catalog from the site's REST endpoint.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource constructs an HTTPSource with a bounded default client.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{URL: url, Client: &http.Client{Timeout: 15 * time.Second}}
}

// Fetch downloads and parses the catalog payload.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch: unexpected status %d", res.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}
	return ParseJSON(body), nil
}

// EmbeddedSource serves a fixed JSON snapshot (see assets package).
type EmbeddedSource struct {
	JSON []byte
}

// Fetch parses the embedded snapshot. Never fails; a bad snapshot just
// yields zero records, which the caller surfaces as an empty catalog.
func (s *EmbeddedSource) Fetch(ctx context.Context) ([]Raw, error) {
	return ParseJSON(s.JSON), nil
}

// ParseJSON extracts raw records from a catalog payload. Accepts either a
// bare array or an object with a "coasters" array. Records missing entirely
// (non-object elements) are skipped; field-level junk survives into Raw and
// is handled by Normalize.
func ParseJSON(body []byte) []Raw {
	root := gjson.ParseBytes(body)
	items := root
	if root.IsObject() {
		items = root.Get("coasters")
	}
	if !items.IsArray() {
		return nil
	}

	var out []Raw
	items.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		out = append(out, Raw{
			ID:           item.Get("id").Value(),
			Name:         item.Get("name").String(),
			Score:        item.Get("score").Value(),
			GroupID:      item.Get("parkId").Value(),
			ParkFlagship: item.Get("parkFlagship").Value(),
			RideCount:    item.Get("rideCount").Value(),
			LastRiddenAt: item.Get("lastRiddenAt").Value(),
			Manufacturer: item.Get("manufacturer").String(),
			Park:         item.Get("park").String(),
			Country:      item.Get("country").String(),
			YearOpened:   item.Get("yearOpened").Value(),
			Inversions:   item.Get("inversions").Value(),
		})
		return true
	})
	return out
}
