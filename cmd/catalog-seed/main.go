package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/bet-compare/internal/odds-board/board"
	"github.com/radieske/bet-compare/internal/odds-board/catalog"
	"github.com/radieske/bet-compare/internal/odds-board/repo"
	"github.com/radieske/bet-compare/internal/shared/config"
	"github.com/radieske/bet-compare/internal/shared/db"
	"github.com/radieske/bet-compare/internal/shared/logger"
)

// Grava o catálogo no Postgres: CATALOG_FILE se definido, senão o mock
func main() {
	cfg := config.Load()
	log, err := logger.New("catalog-seed", cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	games := catalog.MockGames()
	if cfg.CatalogFile != "" {
		games, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			log.Fatal("failed to load catalog file", zap.String("path", cfg.CatalogFile), zap.Error(err))
		}
	} else {
		games = catalog.Sanitize(games)
	}
	if err := catalog.Validate(games); err != nil {
		log.Fatal("invalid catalog", zap.Error(err))
	}

	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	r := repo.NewCatalogRepo(pg)
	if err := r.EnsureSchema(ctx); err != nil {
		log.Fatal("schema", zap.Error(err))
	}
	if err := r.ReplaceAll(ctx, games); err != nil {
		log.Fatal("seed", zap.Error(err))
	}

	log.Info("catalog seeded", zap.Int("games", len(games)), zap.Strings("sports", sports(games)))
}

func sports(games []board.Game) []string {
	seen := map[board.Category]bool{}
	var out []string
	for _, g := range games {
		if !seen[g.Sport] {
			seen[g.Sport] = true
			out = append(out, string(g.Sport))
		}
	}
	return out
}
