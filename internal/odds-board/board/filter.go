package board

// Filter reduz o catálogo aos jogos da categoria selecionada, preservando a ordem.
// All devolve o próprio slice de entrada (sem cópia); quem chama não deve alterá-lo.
func Filter(games []Game, c Category) []Game {
	if c == All {
		return games
	}
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if g.Sport == c {
			out = append(out, g)
		}
	}
	return out
}
