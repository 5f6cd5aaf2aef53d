package board

import "sort"

// ViewState é o estado local da tela: categoria selecionada, jogos expandidos
// e o jogo com prop bets visíveis (no máximo um).
// Imutável: toda mudança passa por Reduce e gera um novo valor.
type ViewState struct {
	category Category
	expanded map[int]struct{}
	props    int
	hasProps bool
}

// NewViewState retorna o estado inicial: All, nada expandido, nenhuma prop aberta
func NewViewState() ViewState {
	return ViewState{category: All}
}

// Action é uma interação do usuário com a tela
type Action interface {
	actionName() string
}

// SelectCategory troca o filtro ativo
type SelectCategory struct {
	Category Category
}

// ToggleExpansion abre/fecha o painel de odds de um jogo
type ToggleExpansion struct {
	GameID int
}

// ToggleProps abre/fecha as prop bets de um jogo
type ToggleProps struct {
	GameID int
}

func (SelectCategory) actionName() string  { return "select" }
func (ToggleExpansion) actionName() string { return "expand" }
func (ToggleProps) actionName() string     { return "props" }

// ActionName retorna o nome curto da ação, usado em métricas e no log de ações
func ActionName(a Action) string { return a.actionName() }

// Reduce é uma função pura: dado o estado atual e uma ação, retorna o próximo estado.
// O estado de entrada nunca é alterado.
func Reduce(state ViewState, action Action) ViewState {
	switch act := action.(type) {
	case SelectCategory:
		next := state
		next.category = act.Category
		if next.category == "" {
			next.category = All
		}
		return next

	case ToggleExpansion:
		next := state
		next.expanded = make(map[int]struct{}, len(state.expanded)+1)
		for id := range state.expanded {
			next.expanded[id] = struct{}{}
		}
		if _, ok := next.expanded[act.GameID]; ok {
			delete(next.expanded, act.GameID)
		} else {
			next.expanded[act.GameID] = struct{}{}
		}
		return next

	case ToggleProps:
		next := state
		if state.hasProps && state.props == act.GameID {
			next.props, next.hasProps = 0, false
		} else {
			next.props, next.hasProps = act.GameID, true
		}
		return next
	}

	// ação desconhecida, mantém o estado
	return state
}

// Category retorna a categoria selecionada
func (s ViewState) Category() Category {
	if s.category == "" {
		return All
	}
	return s.category
}

// IsExpanded indica se o painel de odds do jogo está aberto
func (s ViewState) IsExpanded(id int) bool {
	_, ok := s.expanded[id]
	return ok
}

// ExpandedIDs retorna os ids expandidos em ordem crescente
func (s ViewState) ExpandedIDs() []int {
	ids := make([]int, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ActiveProps retorna o jogo com prop bets visíveis, se houver
func (s ViewState) ActiveProps() (int, bool) {
	return s.props, s.hasProps
}

// PropsVisible indica se as prop bets do jogo estão visíveis
func (s ViewState) PropsVisible(id int) bool {
	return s.hasProps && s.props == id
}

// Equal compara dois estados por valor (a ordem do conjunto não importa)
func (s ViewState) Equal(o ViewState) bool {
	if s.Category() != o.Category() || s.hasProps != o.hasProps {
		return false
	}
	if s.hasProps && s.props != o.props {
		return false
	}
	if len(s.expanded) != len(o.expanded) {
		return false
	}
	for id := range s.expanded {
		if _, ok := o.expanded[id]; !ok {
			return false
		}
	}
	return true
}
