package events

import "time"

// BoardState é o estado da tela serializado junto com cada ação
type BoardState struct {
	Sport string `json:"sport"`
	Open  []int  `json:"open"`
	Props *int   `json:"props,omitempty"` // nil = nenhuma prop aberta
}

// Evento publicado no tópico "board_actions" a cada interação do usuário
type BoardAction struct {
	ID     string     `json:"id"`
	Type   string     `json:"type"` // "select" | "expand" | "props"
	Sport  string     `json:"sport,omitempty"`
	GameID *int       `json:"game_id,omitempty"`
	State  BoardState `json:"state"` // estado depois da ação
	Ts     time.Time  `json:"ts"`
}
