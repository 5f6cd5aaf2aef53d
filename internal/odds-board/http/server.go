package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/radieske/bet-compare/internal/odds-board/catalog"
	"github.com/radieske/bet-compare/internal/odds-board/producer"
	"github.com/radieske/bet-compare/internal/shared/metrics"
)

// Server expõe a tela de odds (HTML) e os endpoints JSON de consulta
type Server struct {
	log     *zap.Logger
	source  catalog.Source     // catálogo de jogos
	publ    producer.Publisher // log de ações (kafka ou noop)
	metrics *metrics.Board     // opcional
}

// NewServer cria o servidor; publ nil vira Noop e m nil desliga as métricas
func NewServer(log *zap.Logger, src catalog.Source, publ producer.Publisher, m *metrics.Board) *Server {
	if publ == nil {
		publ = producer.Noop{}
	}
	return &Server{log: log, source: src, publ: publ, metrics: m}
}

// Router retorna o roteador HTTP
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/", s.index)                       // Tela de odds
	r.Get("/do", s.apply)                     // Aplica uma ação e redireciona
	r.Get("/v1/categories", s.listCategories) // Enumeração de categorias
	r.Get("/v1/games", s.listGames)           // Jogos filtrados por ?sport=
	r.Get("/v1/board", s.getBoard)            // Modelo da tela para um estado
	return r
}

// accessLog registra método, rota, status e duração de cada request
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) countRender(format string) {
	if s.metrics != nil {
		s.metrics.Renders.WithLabelValues(format).Inc()
	}
}

func (s *Server) countCatalogError() {
	if s.metrics != nil {
		s.metrics.CatalogErrors.Inc()
	}
}
