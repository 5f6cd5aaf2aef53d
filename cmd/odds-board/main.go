package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	boardcache "github.com/radieske/bet-compare/internal/odds-board/cache"
	"github.com/radieske/bet-compare/internal/odds-board/catalog"
	httpapi "github.com/radieske/bet-compare/internal/odds-board/http"
	"github.com/radieske/bet-compare/internal/odds-board/producer"
	"github.com/radieske/bet-compare/internal/odds-board/repo"
	"github.com/radieske/bet-compare/internal/shared/cache"
	"github.com/radieske/bet-compare/internal/shared/config"
	"github.com/radieske/bet-compare/internal/shared/db"
	"github.com/radieske/bet-compare/internal/shared/kafka"
	"github.com/radieske/bet-compare/internal/shared/logger"
	"github.com/radieske/bet-compare/internal/shared/metrics"
)

func main() {
	// carrega config
	cfg := config.Load()

	// inicia logger
	log, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("catalog_source", cfg.CatalogSource))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewBoard(reg)

	// fonte do catálogo
	var pg *sql.DB
	var src catalog.Source
	switch cfg.CatalogSource {
	case config.SourceStatic:
		src = catalog.NewStatic(catalog.MockGames())
	case config.SourceFile:
		games, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			log.Fatal("failed to load catalog file", zap.String("path", cfg.CatalogFile), zap.Error(err))
		}
		src = catalog.NewStatic(games)
		log.Info("catalog loaded", zap.Int("games", len(games)))
	case config.SourcePostgres:
		pg, err = db.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()
		src = repo.NewCatalogRepo(pg)
		log.Info("postgres connected")
	default:
		log.Fatal("unknown catalog source", zap.String("catalog_source", cfg.CatalogSource))
	}

	// cache Redis na frente da fonte (opcional)
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		src = &boardcache.CachedSource{
			Source: src,
			Store:  boardcache.NewRedisStore(rdb),
			TTL:    cfg.CatalogCacheTTL,
			Log:    log,
			OnHit:  func() { m.CatalogCache.WithLabelValues("hit").Inc() },
			OnMiss: func() { m.CatalogCache.WithLabelValues("miss").Inc() },
		}
		log.Info("redis connected", zap.Duration("catalog_ttl", cfg.CatalogCacheTTL))
	}

	// log de ações no Kafka (opcional)
	var publ producer.Publisher = producer.Noop{}
	if cfg.KafkaBrokers != "" {
		writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBoardActions)
		defer writer.Close()
		publ = producer.NewKafkaPublisher(writer, cfg.TopicBoardActions)
		log.Info("kafka writer ready", zap.String("topic", cfg.TopicBoardActions))
	}

	// métricas e health
	health := func(ctx context.Context) error {
		if pg != nil {
			if err := pg.PingContext(ctx); err != nil {
				return fmt.Errorf("postgres: %w", err)
			}
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis: %w", err)
			}
		}
		return nil
	}
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, reg, health, log)

	api := httpapi.NewServer(log, src, publ, m)
	apiSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("odds-board listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
	log.Info("odds-board stopped")
}
