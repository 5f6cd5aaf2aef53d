package httpapi

import (
	"embed"
	"html/template"
	"io"

	"github.com/radieske/bet-compare/internal/odds-board/board"
)

//go:embed templates/*.html
var templateFS embed.FS

var boardTmpl = template.Must(template.ParseFS(templateFS, "templates/board.html"))

const footerAbout = "Compare sports betting odds across multiple platforms to find the best value."

// Colunas de links do rodapé, na ordem de exibição (após "About Us")
var footerColumns = []footerColumn{
	{Title: "Sportsbooks", Items: []string{"FanDuel", "DraftKings", "BetMGM", "BetRivers"}},
	{Title: "Resources", Items: []string{"How to Compare Odds", "Betting Glossary", "Responsible Gambling"}},
	{Title: "Legal", Items: []string{"Terms of Service", "Privacy Policy", "Cookie Policy"}},
}

type footerColumn struct {
	Title string
	Items []string
}

type page struct {
	Tabs          []tab
	Rows          []row
	FooterAbout   string
	FooterColumns []footerColumn
}

type tab struct {
	board.CategoryTab
	Href string
}

type row struct {
	board.Row
	ToggleHref string
	PropsHref  string
}

// newPage junta o modelo da tela com os links de cada interação
func newPage(v board.View, state board.ViewState) page {
	p := page{FooterAbout: footerAbout, FooterColumns: footerColumns}
	for _, t := range v.Categories {
		p.Tabs = append(p.Tabs, tab{
			CategoryTab: t,
			Href:        actionURL(state, board.SelectCategory{Category: t.Category}),
		})
	}
	for _, r := range v.Rows {
		rw := row{Row: r, ToggleHref: actionURL(state, board.ToggleExpansion{GameID: r.Game.ID})}
		if r.PropsLabel != "" {
			rw.PropsHref = actionURL(state, board.ToggleProps{GameID: r.Game.ID})
		}
		p.Rows = append(p.Rows, rw)
	}
	return p
}

func renderBoard(w io.Writer, p page) error {
	return boardTmpl.ExecuteTemplate(w, "board.html", p)
}
