package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/radieske/bet-compare/internal/odds-board/board"
	"github.com/radieske/bet-compare/internal/odds-board/producer"
)

// index renderiza a tela para o estado da query string
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	games, err := s.source.Games(r.Context())
	if err != nil {
		s.log.Error("catalog read failed", zap.Error(err))
		s.countCatalogError()
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
		return
	}

	state := parseState(r.URL.Query())
	page := newPage(board.BuildView(games, state), state)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderBoard(w, page); err != nil {
		s.log.Error("render failed", zap.Error(err))
		return
	}
	s.countRender("html")
}

// apply aplica uma ação ao estado atual, publica no log de ações
// e redireciona para a tela com o próximo estado
func (s *Server) apply(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	action, err := parseAction(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	next := board.Reduce(parseState(q), action)

	ev := producer.NewBoardAction(action, next)
	if err := s.publ.PublishBoardAction(r.Context(), ev); err != nil {
		// log de ações é best-effort, a navegação segue
		s.log.Warn("board action publish failed", zap.String("action", producer.Key(ev)), zap.Error(err))
		if s.metrics != nil {
			s.metrics.PublishErrors.Inc()
		}
	}
	if s.metrics != nil {
		s.metrics.Actions.WithLabelValues(board.ActionName(action)).Inc()
	}

	http.Redirect(w, r, boardURL(next), http.StatusSeeOther)
}

// listCategories retorna a enumeração fixa de categorias
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, board.Categories())
}

// listGames retorna os jogos filtrados pela categoria ?sport= (default All)
func (s *Server) listGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.source.Games(r.Context())
	if err != nil {
		s.countCatalogError()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	out := board.Filter(games, board.ParseCategory(r.URL.Query().Get("sport")))
	if out == nil {
		out = []board.Game{}
	}
	s.countRender("json")
	writeJSON(w, http.StatusOK, out)
}

// getBoard retorna o modelo da tela para o estado da query string
func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	games, err := s.source.Games(r.Context())
	if err != nil {
		s.countCatalogError()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.countRender("json")
	writeJSON(w, http.StatusOK, board.BuildView(games, parseState(r.URL.Query())))
}
