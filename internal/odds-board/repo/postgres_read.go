package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/radieske/bet-compare/internal/odds-board/board"
)

// Schema cria as tabelas do catálogo (idempotente)
const Schema = `
	CREATE TABLE IF NOT EXISTS games (
		id             INTEGER PRIMARY KEY,
		sport          TEXT NOT NULL,
		home_team      TEXT NOT NULL,
		away_team      TEXT NOT NULL,
		start_label    TEXT NOT NULL DEFAULT '',
		betting_volume DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_live        BOOLEAN NOT NULL DEFAULT FALSE,
		position       INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS game_offers (
		game_id   INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		bookmaker TEXT NOT NULL,
		moneyline TEXT NOT NULL,
		spread    TEXT NOT NULL,
		total     TEXT NOT NULL,
		PRIMARY KEY (game_id, position)
	);
	CREATE TABLE IF NOT EXISTS game_props (
		game_id  INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		label    TEXT NOT NULL,
		PRIMARY KEY (game_id, position)
	);
`

// CatalogRepo lê o catálogo de jogos do Postgres e implementa catalog.Source
type CatalogRepo struct {
	DB *sql.DB
}

// NewCatalogRepo retorna uma instância do repositório de catálogo
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{DB: db}
}

// EnsureSchema aplica o Schema
func (r *CatalogRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Games retorna os jogos na ordem de position, com ofertas e props
func (r *CatalogRepo) Games(ctx context.Context) ([]board.Game, error) {
	const q = `
		SELECT id, sport, home_team, away_team, start_label, betting_volume, is_live
		FROM games
		ORDER BY position, id;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var out []board.Game
	index := make(map[int]int)
	for rows.Next() {
		var g board.Game
		var sport string
		if err := rows.Scan(&g.ID, &sport, &g.HomeTeam, &g.AwayTeam, &g.Time, &g.BettingVolume, &g.IsLive); err != nil {
			return nil, err
		}
		g.Sport = board.Category(sport)
		index[g.ID] = len(out)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadOffers(ctx, out, index); err != nil {
		return nil, err
	}
	if err := r.loadProps(ctx, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepo) loadOffers(ctx context.Context, games []board.Game, index map[int]int) error {
	const q = `
		SELECT game_id, bookmaker, moneyline, spread, total
		FROM game_offers
		ORDER BY game_id, position;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("query offers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		var o board.Offer
		if err := rows.Scan(&id, &o.Bookmaker, &o.Moneyline, &o.Spread, &o.Total); err != nil {
			return err
		}
		if i, ok := index[id]; ok {
			games[i].Odds = append(games[i].Odds, o)
		}
	}
	return rows.Err()
}

func (r *CatalogRepo) loadProps(ctx context.Context, games []board.Game, index map[int]int) error {
	const q = `
		SELECT game_id, label
		FROM game_props
		ORDER BY game_id, position;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("query props: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		var label string
		if err := rows.Scan(&id, &label); err != nil {
			return err
		}
		if i, ok := index[id]; ok {
			games[i].Props = append(games[i].Props, label)
		}
	}
	return rows.Err()
}
