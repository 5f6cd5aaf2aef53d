package repo

import (
	"context"
	"fmt"

	"github.com/radieske/bet-compare/internal/odds-board/board"
)

// ReplaceAll substitui o catálogo inteiro numa única transação.
// A ordem do slice vira a coluna position.
func (r *CatalogRepo) ReplaceAll(ctx context.Context, games []board.Game) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// offers e props caem junto via ON DELETE CASCADE
	if _, err := tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}

	for pos, g := range games {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO games (id, sport, home_team, away_team, start_label, betting_volume, is_live, position)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			g.ID, string(g.Sport), g.HomeTeam, g.AwayTeam, g.Time, g.BettingVolume, g.IsLive, pos,
		)
		if err != nil {
			return fmt.Errorf("insert game %d: %w", g.ID, err)
		}

		for i, o := range g.Odds {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO game_offers (game_id, position, bookmaker, moneyline, spread, total)
				VALUES ($1,$2,$3,$4,$5,$6)`,
				g.ID, i, o.Bookmaker, o.Moneyline, o.Spread, o.Total,
			)
			if err != nil {
				return fmt.Errorf("insert offer %d/%d: %w", g.ID, i, err)
			}
		}

		for i, p := range g.Props {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO game_props (game_id, position, label)
				VALUES ($1,$2,$3)`, g.ID, i, p); err != nil {
				return fmt.Errorf("insert prop %d/%d: %w", g.ID, i, err)
			}
		}
	}

	return tx.Commit()
}
