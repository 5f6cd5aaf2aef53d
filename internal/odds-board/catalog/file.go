package catalog

import (
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/radieske/bet-compare/internal/odds-board/board"
)

var (
	ErrDuplicateID = errors.New("duplicate game id")
	ErrInvalidGame = errors.New("invalid game")
)

// fixture é o formato do arquivo YAML de catálogo
//
//	games:
//	  - id: 1
//	    sport: NFL
//	    home_team: New York Giants
//	    ...
type fixture struct {
	Games []board.Game `yaml:"games"`
}

// LoadFile lê um catálogo em YAML do disco
func LoadFile(path string) ([]board.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode lê o catálogo em YAML, limpa markup dos textos e valida os jogos
func Decode(r io.Reader) ([]board.Game, error) {
	var fx fixture
	if err := yaml.NewDecoder(r).Decode(&fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	games := Sanitize(fx.Games)
	if err := Validate(games); err != nil {
		return nil, err
	}
	return games, nil
}

// Validate garante ids únicos e positivos e participantes preenchidos
func Validate(games []board.Game) error {
	seen := make(map[int]struct{}, len(games))
	for i, g := range games {
		if g.ID <= 0 {
			return fmt.Errorf("%w: game #%d has no id", ErrInvalidGame, i)
		}
		if g.HomeTeam == "" || g.AwayTeam == "" {
			return fmt.Errorf("%w: game %d missing teams", ErrInvalidGame, g.ID)
		}
		if _, ok := seen[g.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, g.ID)
		}
		seen[g.ID] = struct{}{}
	}
	return nil
}

// Sanitize remove qualquer markup dos textos vindos de fora (arquivo, banco).
// Retorna novos valores; a entrada não é alterada.
func Sanitize(games []board.Game) []board.Game {
	p := bluemonday.StrictPolicy()
	clean := func(s string) string {
		// StrictPolicy escapa entidades; o template escapa de novo na saída
		return strings.TrimSpace(html.UnescapeString(p.Sanitize(s)))
	}

	out := make([]board.Game, 0, len(games))
	for _, g := range games {
		ng := g
		ng.Sport = board.ParseCategory(clean(string(g.Sport)))
		ng.HomeTeam = clean(g.HomeTeam)
		ng.AwayTeam = clean(g.AwayTeam)
		ng.Time = clean(g.Time)

		if g.Odds != nil {
			ng.Odds = make([]board.Offer, 0, len(g.Odds))
			for _, o := range g.Odds {
				ng.Odds = append(ng.Odds, board.Offer{
					Bookmaker: clean(o.Bookmaker),
					Moneyline: clean(o.Moneyline),
					Spread:    clean(o.Spread),
					Total:     clean(o.Total),
				})
			}
		}
		if g.Props != nil {
			ng.Props = make([]string, 0, len(g.Props))
			for _, prop := range g.Props {
				ng.Props = append(ng.Props, clean(prop))
			}
		}
		out = append(out, ng)
	}
	return out
}
