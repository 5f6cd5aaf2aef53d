package board

import "strconv"

// View é o modelo de renderização da tela, derivado em uma única passada
// a partir do catálogo e do ViewState.
type View struct {
	Categories []CategoryTab `json:"categories"`
	Selected   Category      `json:"selected"`
	Rows       []Row         `json:"rows"`
}

// CategoryTab é um botão do seletor de categorias
type CategoryTab struct {
	Category Category `json:"category"`
	Selected bool     `json:"selected"`
}

// Row é uma linha de jogo na lista
type Row struct {
	Game         Game     `json:"game"`
	Schedule     string   `json:"schedule"` // "LIVE" ou horário
	Volume       string   `json:"volume"`
	Expanded     bool     `json:"expanded"`
	Chevron      string   `json:"chevron"` // "up" | "down"
	PropsLabel   string   `json:"propsLabel,omitempty"`
	PropsVisible bool     `json:"propsVisible"`
	PropsChevron string   `json:"propsChevron,omitempty"`
	Props        []string `json:"props,omitempty"` // só preenchido quando visível
}

// LiveLabel é o texto exibido no lugar do horário para jogos ao vivo
const LiveLabel = "LIVE"

// BuildView aplica o filtro e monta as linhas com os estados de expansão e props
func BuildView(games []Game, state ViewState) View {
	selected := state.Category()

	v := View{Selected: selected}
	for _, c := range categories {
		v.Categories = append(v.Categories, CategoryTab{Category: c, Selected: c == selected})
	}

	visible := Filter(games, selected)
	v.Rows = make([]Row, 0, len(visible))
	for _, g := range visible {
		row := Row{
			Game:     g,
			Schedule: g.Time,
			Volume:   FormatVolume(g.BettingVolume),
			Expanded: state.IsExpanded(g.ID),
			Chevron:  chevron(state.IsExpanded(g.ID)),
		}
		if g.IsLive {
			row.Schedule = LiveLabel
		}
		if g.HasProps() {
			row.PropsLabel = "View " + strconv.Itoa(len(g.Props)) + " prop bets"
			row.PropsVisible = state.PropsVisible(g.ID)
			row.PropsChevron = chevron(row.PropsVisible)
			if row.PropsVisible {
				row.Props = g.Props
			}
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

func chevron(open bool) string {
	if open {
		return "up"
	}
	return "down"
}
