package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
  "coasters": [
    {"id": "c-1", "name": "Alpha", "score": 9.0, "parkId": "p-1", "yearOpened": 2018},
    {"id": "c-2", "name": "Beta", "score": "8.5", "parkId": "p-1", "inversions": "2"},
    {"id": "c-3", "name": "Unrated", "score": null},
    "junk-element"
  ]
}`

func TestParseJSONObjectWrapper(t *testing.T) {
	raws := ParseJSON([]byte(samplePayload))
	require.Len(t, raws, 3, "non-object elements are skipped, junk fields are kept for Normalize")

	pool := Normalize(raws)
	require.Len(t, pool, 2)
	assert.Equal(t, "Alpha", pool[0].Name)
	assert.Equal(t, 8.5, pool[1].Score, "string score coerced")
	require.NotNil(t, pool[1].Inversions)
	assert.Equal(t, 2, *pool[1].Inversions)
}

func TestParseJSONBareArray(t *testing.T) {
	raws := ParseJSON([]byte(`[{"id":"x","name":"Solo","score":5}]`))
	require.Len(t, raws, 1)
	assert.Equal(t, "Solo", raws[0].Name)
}

func TestParseJSONGarbage(t *testing.T) {
	assert.Nil(t, ParseJSON([]byte(`{"unrelated":true}`)))
	assert.Nil(t, ParseJSON([]byte(`not json at all`)))
	assert.Nil(t, ParseJSON(nil))
}

func TestHTTPSourceFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer ts.Close()

	src := NewHTTPSource(ts.URL)
	raws, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, raws, 3)
}

func TestHTTPSourceFetchErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewHTTPSource(ts.URL).Fetch(context.Background())
	require.Error(t, err)
}

func TestEmbeddedSourceNeverFails(t *testing.T) {
	raws, err := (&EmbeddedSource{JSON: []byte(`broken`)}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, raws)
}
