package metrics

import "github.com/prometheus/client_golang/prometheus"

// Board agrupa as métricas da tela de odds
type Board struct {
	Renders       *prometheus.CounterVec // por formato: html | json
	Actions       *prometheus.CounterVec // por ação: select | expand | props
	CatalogCache  *prometheus.CounterVec // por resultado: hit | miss
	CatalogErrors prometheus.Counter
	PublishErrors prometheus.Counter
}

// NewBoard cria e registra as métricas no registerer
func NewBoard(reg prometheus.Registerer) *Board {
	m := &Board{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "board_renders_total", Help: "renderizações da tela por formato",
		}, []string{"format"}),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "board_actions_total", Help: "ações aplicadas por tipo",
		}, []string{"action"}),
		CatalogCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_cache_total", Help: "leituras do cache de catálogo por resultado",
		}, []string{"result"}),
		CatalogErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_errors_total", Help: "falhas ao ler o catálogo",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "board_action_publish_errors_total", Help: "falhas ao publicar ações no kafka",
		}),
	}
	reg.MustRegister(m.Renders, m.Actions, m.CatalogCache, m.CatalogErrors, m.PublishErrors)
	return m
}
