package board

import "strings"

// Category é o agrupamento por esporte/liga usado no filtro
type Category string

const (
	All    Category = "All" // sentinela: sem filtro
	NFL    Category = "NFL"
	NBA    Category = "NBA"
	MLB    Category = "MLB"
	NHL    Category = "NHL"
	Soccer Category = "Soccer"
	Tennis Category = "Tennis"
	UFC    Category = "UFC"
	Boxing Category = "Boxing"
)

var categories = []Category{All, NFL, NBA, MLB, NHL, Soccer, Tennis, UFC, Boxing}

// Categories retorna a enumeração fixa na ordem de exibição
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory converte o valor bruto (ex: query string) em Category.
// Vazio vira All; valor desconhecido é mantido como veio e filtra para lista vazia.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	if s == "" {
		return All
	}
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return Category(s)
}

// Known indica se a categoria faz parte da enumeração
func (c Category) Known() bool {
	for _, k := range categories {
		if c == k {
			return true
		}
	}
	return false
}
