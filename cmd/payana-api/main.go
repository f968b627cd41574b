// README: Entry point; loads config, wires the generator, history, quota, maps and identity, then serves HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payana/internal/ai"
	"payana/internal/config"
	"payana/internal/contacts"
	"payana/internal/history"
	httptransport "payana/internal/http"
	"payana/internal/infra"
	"payana/internal/logging"
	"payana/internal/maps"
	"payana/internal/quota"
	"payana/internal/suggestion"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run wires and serves until SIGINT/SIGTERM; deferred closes run on every return path.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, closeGen, err := ai.NewFromConfig(ctx, cfg.AI)
	if err != nil {
		return fmt.Errorf("ai provider: %w", err)
	}
	defer func() { _ = closeGen() }()

	deps := httptransport.Deps{
		Suggestions:       suggestion.NewNormalizer(gen, logger.Named("suggestion")),
		Logger:            logger,
		SuggestionTimeout: cfg.AI.Timeout,
	}

	if cfg.History.RedisAddr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.History.RedisAddr)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rdb.Close()
		deps.History = history.NewRedisStore(rdb, cfg.History.Limit)
		deps.Contacts = contacts.NewRedisStore(rdb)
	} else {
		deps.History = history.NewMemoryStore(cfg.History.Limit)
		deps.Contacts = contacts.NewMemoryStore()
	}
	deps.Dispatcher = contacts.NewLogDispatcher(logger.Named("sos"))

	if cfg.Quota.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.Quota.DSN)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer pool.Close()
		deps.Quota = quota.NewService(quota.NewStore(pool, cfg.Quota.Monthly))
	}

	if cfg.Maps.APIKey != "" {
		routes, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			return fmt.Errorf("maps: %w", err)
		}
		deps.Routes = routes
	}

	if cfg.Firebase.ProjectID != "" {
		verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			return fmt.Errorf("firebase init: %w", err)
		}
		deps.Verifier = verifier
	}

	logger.Info("starting",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("provider", cfg.AI.Provider),
		zap.Bool("redis_history", cfg.History.RedisAddr != ""),
		zap.Bool("quota", deps.Quota != nil),
		zap.Bool("maps", deps.Routes != nil),
		zap.Bool("identity", deps.Verifier != nil),
	)

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(deps)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	logger.Info("stopped")
	return nil
}
