package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/parkdex/coastle/assets"
	"github.com/parkdex/coastle/internal/catalog"
	"github.com/parkdex/coastle/internal/config"
	"github.com/parkdex/coastle/internal/game"
	"github.com/parkdex/coastle/internal/httpserver"
	"github.com/parkdex/coastle/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Catalog fetch is one-shot at startup; if it fails or comes back empty
	// the game is unplayable and we say so instead of starting degraded.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	raws, err := catalogSource(cfg).Fetch(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("fetch catalog")
	}
	pool := catalog.Normalize(raws)
	if len(pool) == 0 {
		log.Fatal().Int("raw", len(raws)).Msg("no guessable entities in catalog")
	}
	log.Info().Int("raw", len(raws)).Int("pool", len(pool)).Msg("catalog loaded")

	if dir := filepath.Dir(cfg.KVPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("create kv dir")
		}
	}
	kv, err := store.NewBolt(cfg.KVPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open kv store")
	}
	defer kv.Close()

	mgr := game.NewManager(pool, kv, cfg.GameVariant, time.Now)
	srv := httpserver.New(mgr, cfg.ClientOrigin)
	log.Info().Str("port", cfg.Port).Msg("starting coastle server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// catalogSource picks the configured catalog boundary: local SQLite wins,
// then the HTTP endpoint, then the embedded snapshot.
func catalogSource(cfg *config.Config) catalog.Source {
	switch {
	case cfg.CatalogDB != "":
		db, err := openDB(cfg.CatalogDB)
		if err != nil {
			log.Fatal().Err(err).Msg("open catalog db")
		}
		return catalog.NewSQLiteSource(db)
	case cfg.CatalogURL != "":
		return catalog.NewHTTPSource(cfg.CatalogURL)
	default:
		return &catalog.EmbeddedSource{JSON: assets.CatalogJSON()}
	}
}
