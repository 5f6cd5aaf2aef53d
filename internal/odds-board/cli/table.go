package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/radieske/bet-compare/internal/odds-board/board"
)

// RenderBoard escreve a tela em formato de tabela para terminal.
// Jogos expandidos ganham a tabela de odds logo abaixo; props visíveis viram uma linha extra.
func RenderBoard(w io.Writer, v board.View) {
	var tabs []string
	for _, t := range v.Categories {
		if t.Selected {
			tabs = append(tabs, "["+string(t.Category)+"]")
			continue
		}
		tabs = append(tabs, string(t.Category))
	}
	fmt.Fprintln(w, "BetCompare · "+strings.Join(tabs, " "))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Popular Games")
	t.AppendHeader(table.Row{"#", "Sport", "Game", "When", "Volume", ""})
	for _, r := range v.Rows {
		marker := "v"
		if r.Expanded {
			marker = "^"
		}
		t.AppendRow(table.Row{r.Game.ID, r.Game.Sport, r.Game.Matchup(), r.Schedule, r.Volume + " in bets", marker})
	}
	if len(v.Rows) == 0 {
		t.AppendRow(table.Row{"", "", "No games in this category.", "", "", ""})
	}
	t.Render()

	for _, r := range v.Rows {
		if !r.Expanded {
			continue
		}
		ot := table.NewWriter()
		ot.SetOutputMirror(w)
		ot.SetTitle(r.Game.Matchup())
		ot.AppendHeader(table.Row{"Sportsbook", "Moneyline", "Spread", "Total"})
		for _, o := range r.Game.Odds {
			ot.AppendRow(table.Row{o.Bookmaker, o.Moneyline, o.Spread, o.Total})
		}
		if r.PropsLabel != "" {
			ot.AppendFooter(table.Row{r.PropsLabel, "", "", ""})
		}
		ot.Render()

		if r.PropsVisible {
			fmt.Fprintln(w, "  props: "+strings.Join(r.Props, " | "))
		}
	}
}
