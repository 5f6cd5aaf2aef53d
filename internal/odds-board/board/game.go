package board

// Offer representa as cotações de uma casa de apostas para um jogo.
// Os preços são strings de exibição e nunca são interpretados.
type Offer struct {
	Bookmaker string `json:"bookmaker" yaml:"bookmaker"`
	Moneyline string `json:"moneyline" yaml:"moneyline"`
	Spread    string `json:"spread" yaml:"spread"` // ex: "+3.5 (-110)"
	Total     string `json:"total" yaml:"total"`   // ex: "O 47.5 (-115)"
}

// Game representa um evento esportivo com suas ofertas de odds
// Imutável depois que o catálogo é montado
type Game struct {
	ID            int      `json:"id" yaml:"id"`
	Sport         Category `json:"sport" yaml:"sport"`
	HomeTeam      string   `json:"homeTeam" yaml:"home_team"`
	AwayTeam      string   `json:"awayTeam" yaml:"away_team"`
	Time          string   `json:"time" yaml:"time"` // "LIVE" ou horário de exibição
	BettingVolume float64  `json:"bettingVolume" yaml:"betting_volume"`
	IsLive        bool     `json:"isLive" yaml:"is_live"`
	Odds          []Offer  `json:"odds" yaml:"odds"`
	Props         []string `json:"props,omitempty" yaml:"props"`
}

// Matchup retorna o confronto no formato "visitante @ mandante"
func (g Game) Matchup() string {
	return g.AwayTeam + " @ " + g.HomeTeam
}

// HasProps indica se o jogo tem prop bets para exibir
func (g Game) HasProps() bool { return len(g.Props) > 0 }
