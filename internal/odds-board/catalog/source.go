package catalog

import (
	"context"

	"github.com/radieske/bet-compare/internal/odds-board/board"
)

// Source fornece a sequência ordenada de jogos exibida na tela.
// Implementações: Static (memória/fixture), repo.CatalogRepo (Postgres)
// e cache.CachedSource (Redis na frente de outra Source).
type Source interface {
	Games(ctx context.Context) ([]board.Game, error)
}

// Static é uma Source sobre um catálogo fixo montado na inicialização
type Static struct {
	games []board.Game
}

// NewStatic cria uma Source fixa. O slice não deve ser alterado depois.
func NewStatic(games []board.Game) *Static {
	return &Static{games: games}
}

// Games retorna o catálogo fixo; nunca falha
func (s *Static) Games(ctx context.Context) ([]board.Game, error) {
	return s.games, nil
}
