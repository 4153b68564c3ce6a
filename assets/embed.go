package assets

import (
	"embed"
)

//go:embed catalog.json
var fs embed.FS

// CatalogJSON returns the embedded catalog snapshot. The snapshot keeps the
// server bootable with no catalog source configured; real deployments point
// CATALOG_URL or CATALOG_DB at the live catalog instead.
func CatalogJSON() []byte {
	b, err := fs.ReadFile("catalog.json")
	if err != nil {
		return nil
	}
	return b
}
