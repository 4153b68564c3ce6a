// internal/catalog/adapter.go
//
// The Catalog Adapter: turns loosely-typed Raw records into canonical
// Entities. This is the single coercion boundary for the core.
//
// Drop rule: a record is excluded when its score is missing, non-numeric
// after coercion, or not strictly positive. Scores are never zero-filled —
// an entity is either rated and usable or absent from every ranked and
// guessable set.

package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Normalize converts raw records to canonical entities, dropping any record
// without a valid positive score. Order of survivors follows input order.
func Normalize(raws []Raw) []Entity {
	out := make([]Entity, 0, len(raws))
	for _, r := range raws {
		e, ok := normalizeOne(r)
		if !ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// normalizeOne coerces a single record. ok is false when the drop rule fires.
func normalizeOne(r Raw) (Entity, bool) {
	score, ok := coerceFloat(r.Score)
	if !ok || math.IsNaN(score) || math.IsInf(score, 0) || score <= 0 {
		return Entity{}, false
	}
	id, ok := coerceID(r.ID)
	if !ok {
		return Entity{}, false
	}

	e := Entity{
		ID:           id,
		Name:         strings.TrimSpace(r.Name),
		Score:        score,
		ParkFlagship: coerceBool(r.ParkFlagship),
		Manufacturer: strings.TrimSpace(r.Manufacturer),
		Park:         strings.TrimSpace(r.Park),
		Country:      strings.TrimSpace(r.Country),
	}
	if g, ok := coerceID(r.GroupID); ok {
		e.GroupKey = g
	}
	if n, ok := coerceInt(r.RideCount); ok && n >= 0 {
		e.RideCount = n
	}
	if t, ok := coerceTime(r.LastRiddenAt); ok {
		e.LastRiddenAt = &t
	}
	if y, ok := coerceInt(r.YearOpened); ok && y > 0 {
		e.YearOpened = &y
	}
	if inv, ok := coerceInt(r.Inversions); ok && inv >= 0 {
		e.Inversions = &inv
	}
	return e, true
}

// coerceFloat accepts numbers, json.Number, and numeric-looking strings.
func coerceFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// coerceInt truncates fractional input; "2015.0" and 2015 both coerce to 2015.
func coerceInt(v any) (int, bool) {
	f, ok := coerceFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// coerceID renders string or numeric identifiers as a decimal string.
func coerceID(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(x)
		return s, s != ""
	case float64:
		return strconv.FormatInt(int64(x), 10), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case json.Number:
		return x.String(), true
	default:
		return "", false
	}
}

// coerceBool accepts bools, 0/1 numerics, and common string spellings.
func coerceBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		return s == "true" || s == "1" || s == "yes"
	default:
		if f, ok := coerceFloat(v); ok {
			return f != 0
		}
		return false
	}
}

// coerceTime accepts RFC3339 strings, date-only strings, and unix seconds.
func coerceTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC(), true
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t.UTC(), true
		}
		return time.Time{}, false
	default:
		if f, ok := coerceFloat(v); ok && f > 0 {
			return time.Unix(int64(f), 0).UTC(), true
		}
		return time.Time{}, false
	}
}
