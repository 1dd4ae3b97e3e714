package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"spc-gateway/internal/audit"
	"spc-gateway/internal/bureau"
	"spc-gateway/internal/bureau/cache"
	"spc-gateway/internal/bureau/handler"
	"spc-gateway/internal/bureau/metrics"
	"spc-gateway/internal/bureau/store"
	httpapi "spc-gateway/internal/http"
	jwttoken "spc-gateway/internal/jwt_token"
	"spc-gateway/internal/platform/config"
	"spc-gateway/internal/platform/httpserver"
	"spc-gateway/internal/platform/logger"
	platformredis "spc-gateway/internal/platform/redis"
	"spc-gateway/internal/ratelimit"
)

const auditInboxSize = 256

// main wires dependencies from config and runs the HTTP server plus the audit
// worker until a shutdown signal arrives. Business logic lives in internal.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Audit pipeline. Kafka is optional; the in-memory store always receives
	// events so local runs stay inspectable.
	inbox := make(chan audit.Event, auditInboxSize)
	sinks := []audit.Store{audit.NewMemoryStore()}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka sink init failed", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
	}
	worker := audit.NewWorker(inbox, log, sinks...)
	publisher := audit.NewPublisher(inbox, log)

	serviceOpts := []bureau.Option{
		bureau.WithAuditor(publisher),
		bureau.WithMetrics(metrics.New()),
	}

	redisClient, err := platformredis.Dial(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		serviceOpts = append(serviceOpts, bureau.WithCache(cache.New(redisClient, config.ContextCacheTTL)))
	}

	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.New(ctx, cfg.Postgres.URL)
		if err != nil {
			log.Error("postgres init failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		serviceOpts = append(serviceOpts, bureau.WithArchive(store.NewPostgres(pool)))
	} else {
		serviceOpts = append(serviceOpts, bureau.WithArchive(store.NewMemory()))
	}

	// TODO: replace the mock client once the SOAP bridge exposes its endpoint.
	client := bureau.MockAcertaClient{Latency: 50 * time.Millisecond}

	service, err := bureau.NewService(client, log, serviceOpts...)
	if err != nil {
		log.Error("service init failed", "error", err)
		os.Exit(1)
	}

	jwtService := jwttoken.NewService(cfg.Server.JWTSigningKey, "spc-gateway", "spc-gateway-api")
	limiter := ratelimit.New(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	router := httpapi.NewRouter(handler.New(service, log), jwtService, limiter, log)
	srv := httpserver.New(cfg.Server.Addr, router)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := worker.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		log.Info("starting spc-gateway", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("shutdown with error", "error", err)
		os.Exit(1)
	}
	log.Info("spc-gateway stopped")
}
