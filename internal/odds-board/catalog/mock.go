package catalog

import "github.com/radieske/bet-compare/internal/odds-board/board"

// MockGames retorna o catálogo de exemplo usado quando nenhuma fonte é configurada
func MockGames() []board.Game {
	return []board.Game{
		{
			ID:            1,
			Sport:         board.NFL,
			HomeTeam:      "New York Giants",
			AwayTeam:      "Dallas Cowboys",
			Time:          "2:00 PM ET",
			BettingVolume: 1500000,
			Odds: []board.Offer{
				{Bookmaker: "FanDuel", Moneyline: "+165", Spread: "+3.5 (-110)", Total: "O 47.5 (-115)"},
				{Bookmaker: "DraftKings", Moneyline: "+170", Spread: "+3.5 (-108)", Total: "O 47.5 (-110)"},
				{Bookmaker: "BetMGM", Moneyline: "+160", Spread: "+3.5 (-115)", Total: "O 47 (-110)"},
			},
			Props: []string{"First TD Scorer", "Total Passing Yards", "Team Total Points", "Quarter Results"},
		},
		{
			ID:            2,
			Sport:         board.NBA,
			HomeTeam:      "Los Angeles Lakers",
			AwayTeam:      "Boston Celtics",
			Time:          board.LiveLabel,
			BettingVolume: 950000,
			IsLive:        true,
			Odds: []board.Offer{
				{Bookmaker: "BetRivers", Moneyline: "-130", Spread: "-2.5 (-110)", Total: "O 221.5 (-110)"},
				{Bookmaker: "Bovada", Moneyline: "-135", Spread: "-2.5 (-110)", Total: "O 222 (-112)"},
				{Bookmaker: "Fanatics", Moneyline: "-125", Spread: "-2.5 (-112)", Total: "O 221.5 (-108)"},
			},
			Props: []string{"Player Points", "Rebounds", "Assists", "First Basket"},
		},
		{
			ID:            3,
			Sport:         board.UFC,
			HomeTeam:      "Alexander Volkanovski",
			AwayTeam:      "Yair Rodriguez",
			Time:          "Tomorrow 9:00 PM ET",
			BettingVolume: 750000,
			Odds: []board.Offer{
				{Bookmaker: "BetOnline.ag", Moneyline: "-280", Spread: "N/A", Total: "O 2.5 (-175)"},
				{Bookmaker: "LowVig.ag", Moneyline: "-285", Spread: "N/A", Total: "O 2.5 (-180)"},
				{Bookmaker: "MyBookie.ag", Moneyline: "-275", Spread: "N/A", Total: "O 2.5 (-170)"},
			},
			Props: []string{"Method of Victory", "Round Betting", "Fight to Go Distance", "Total Rounds"},
		},
	}
}
