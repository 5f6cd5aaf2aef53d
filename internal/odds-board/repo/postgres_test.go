package repo

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/radieske/bet-compare/internal/odds-board/board"
	"github.com/radieske/bet-compare/internal/shared/db"
)

func TestSchema_Tables(t *testing.T) {
	for _, token := range []string{
		"CREATE TABLE IF NOT EXISTS games",
		"CREATE TABLE IF NOT EXISTS game_offers",
		"CREATE TABLE IF NOT EXISTS game_props",
		"ON DELETE CASCADE",
	} {
		if !strings.Contains(Schema, token) {
			t.Fatalf("schema missing token %q", token)
		}
	}
}

// Roda só com um Postgres disponível: POSTGRES_TEST_DSN=postgres://...
func TestCatalogRepo_RoundTrip(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	pg, err := db.ConnectPostgres(dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pg.Close()

	ctx := context.Background()
	r := NewCatalogRepo(pg)
	if err := r.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}

	in := []board.Game{
		{ID: 20, Sport: board.MLB, HomeTeam: "Yankees", AwayTeam: "Red Sox", Time: "1:05 PM ET", BettingVolume: 410000,
			Odds:  []board.Offer{{Bookmaker: "BetMGM", Moneyline: "-120", Spread: "-1.5 (+140)", Total: "O 8.5 (-110)"}},
			Props: []string{"Home Runs", "Strikeouts"}},
		{ID: 5, Sport: board.Tennis, HomeTeam: "Sinner", AwayTeam: "Alcaraz", Time: "LIVE", IsLive: true, BettingVolume: 1200000},
	}
	if err := r.ReplaceAll(ctx, in); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := r.Games(ctx)
	if err != nil {
		t.Fatalf("games: %v", err)
	}
	if len(got) != 2 || got[0].ID != 20 || got[1].ID != 5 {
		t.Fatalf("Expected order [20 5], got %+v", got)
	}
	if len(got[0].Odds) != 1 || got[0].Odds[0].Bookmaker != "BetMGM" {
		t.Errorf("Unexpected offers: %+v", got[0].Odds)
	}
	if len(got[0].Props) != 2 || got[0].Props[1] != "Strikeouts" {
		t.Errorf("Unexpected props: %+v", got[0].Props)
	}
	if got[1].HasProps() || len(got[1].Odds) != 0 || !got[1].IsLive {
		t.Errorf("Unexpected tennis game: %+v", got[1])
	}
}
