package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/radieske/bet-compare/internal/odds-board/board"
	"github.com/radieske/bet-compare/internal/odds-board/catalog"
	"github.com/radieske/bet-compare/internal/odds-board/cli"
	"github.com/radieske/bet-compare/internal/odds-board/repo"
	"github.com/radieske/bet-compare/internal/shared/config"
	"github.com/radieske/bet-compare/internal/shared/db"
	"github.com/radieske/bet-compare/internal/shared/logger"
)

// Imprime a tela de odds no terminal para um estado:
//
//	board-snapshot -sport NBA -open 1,2 -props 2
func main() {
	sport := flag.String("sport", "All", "categoria selecionada")
	open := flag.String("open", "", "ids expandidos, separados por vírgula")
	props := flag.Int("props", 0, "id do jogo com prop bets visíveis (0 = nenhum)")
	flag.Parse()

	cfg := config.Load()
	log, err := logger.New("board-snapshot", cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	var src catalog.Source
	switch cfg.CatalogSource {
	case config.SourceFile:
		games, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			log.Fatal("failed to load catalog file", zap.Error(err))
		}
		src = catalog.NewStatic(games)
	case config.SourcePostgres:
		pg, err := db.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()
		src = repo.NewCatalogRepo(pg)
	default:
		src = catalog.NewStatic(catalog.MockGames())
	}

	games, err := src.Games(context.Background())
	if err != nil {
		log.Fatal("catalog read failed", zap.Error(err))
	}

	state := board.Reduce(board.NewViewState(), board.SelectCategory{Category: board.ParseCategory(*sport)})
	for _, part := range strings.Split(*open, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || state.IsExpanded(id) {
			continue
		}
		state = board.Reduce(state, board.ToggleExpansion{GameID: id})
	}
	if *props != 0 {
		state = board.Reduce(state, board.ToggleProps{GameID: *props})
	}

	cli.RenderBoard(os.Stdout, board.BuildView(games, state))
}
