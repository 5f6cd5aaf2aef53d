package topics

const (
	// Log de interações com a tela de odds
	BoardActions = "board_actions"
)
