// internal/catalog/types.go
//
// Core type definitions for the catalog boundary.
// Defines:
//   - Raw: a loosely-typed catalog record as delivered by the site API/DB.
//   - Entity: the canonical, validated record the game and ranking core use.
//
// Raw is the only place tolerant of malformed shapes; everything past
// Normalize (adapter.go) works on Entity and can assume Score > 0.

package catalog

import "time"

// Raw is one catalog record before coercion. Fields that the upstream store
// is known to deliver inconsistently (numbers as strings, nullable columns)
// are typed any and resolved in Normalize.
type Raw struct {
	ID           any    `json:"id"`
	Name         string `json:"name"`
	Score        any    `json:"score"`        // rating; nullable, sometimes a string
	GroupID      any    `json:"parkId"`       // owning park
	ParkFlagship any    `json:"parkFlagship"` // best-in-park flag
	RideCount    any    `json:"rideCount"`
	LastRiddenAt any    `json:"lastRiddenAt"` // RFC3339 string or unix seconds

	Manufacturer string `json:"manufacturer"`
	Park         string `json:"park"`
	Country      string `json:"country"`
	YearOpened   any    `json:"yearOpened"`
	Inversions   any    `json:"inversions"`
}

// Entity is a canonical coaster record. Instances only exist post-Normalize,
// so Score is always finite and strictly positive.
type Entity struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Score        float64    `json:"score"`
	GroupKey     string     `json:"parkId"`
	ParkFlagship bool       `json:"parkFlagship"`
	RideCount    int        `json:"rideCount"`
	LastRiddenAt *time.Time `json:"lastRiddenAt,omitempty"`

	// Comparison attributes for the guessing game. Categorical values compare
	// by exact equality; numeric values additionally carry a direction hint.
	// nil means unknown and never compares equal to a present value's hint.
	Manufacturer string `json:"manufacturer"`
	Park         string `json:"park"`
	Country      string `json:"country"`
	YearOpened   *int   `json:"yearOpened,omitempty"`
	Inversions   *int   `json:"inversions,omitempty"`
}
