// internal/catalog/sqlite.go
//
// SQLite-backed catalog source. Reads the surrounding site's coasters table
// directly when the game server is co-deployed with the catalog database.
// The schema is owned elsewhere; this source only issues one read-only query
// and treats every nullable column as potentially absent.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteSource reads raw records from the site's SQLite store.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource wraps an already-open database handle.
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

// Fetch loads every coaster row. Nullable columns map to nil in Raw so the
// adapter's drop/coerce rules apply uniformly across sources.
func (s *SQLiteSource) Fetch(ctx context.Context) ([]Raw, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, score, park_id, park_flagship, ride_count,
               last_ridden_at, manufacturer, park, country, year_opened, inversions
        FROM coasters`)
	if err != nil {
		return nil, fmt.Errorf("query coasters: %w", err)
	}
	defer rows.Close()

	var out []Raw
	for rows.Next() {
		var (
			id, name                 string
			score                    sql.NullString // stored loosely; text in legacy rows
			parkID                   sql.NullString
			flagship                 sql.NullBool
			rideCount, year, inv     sql.NullInt64
			lastRidden               sql.NullString
			manufacturer, park, ctry sql.NullString
		)
		if err := rows.Scan(&id, &name, &score, &parkID, &flagship, &rideCount,
			&lastRidden, &manufacturer, &park, &ctry, &year, &inv); err != nil {
			return nil, fmt.Errorf("scan coaster row: %w", err)
		}
		r := Raw{
			ID:           id,
			Name:         name,
			Manufacturer: manufacturer.String,
			Park:         park.String,
			Country:      ctry.String,
		}
		if score.Valid {
			r.Score = score.String
		}
		if parkID.Valid {
			r.GroupID = parkID.String
		}
		if flagship.Valid {
			r.ParkFlagship = flagship.Bool
		}
		if rideCount.Valid {
			r.RideCount = rideCount.Int64
		}
		if lastRidden.Valid {
			r.LastRiddenAt = lastRidden.String
		}
		if year.Valid {
			r.YearOpened = year.Int64
		}
		if inv.Valid {
			r.Inversions = inv.Int64
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
