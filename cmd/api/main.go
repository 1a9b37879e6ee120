package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/promobeats/backoffice/internal/api"
	"github.com/promobeats/backoffice/internal/core/usecase"
	"github.com/promobeats/backoffice/internal/infrastructure/activity"
	"github.com/promobeats/backoffice/internal/infrastructure/clock"
	mongodb "github.com/promobeats/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/promobeats/backoffice/internal/infrastructure/db/redis"
	"github.com/promobeats/backoffice/internal/infrastructure/security"
	"github.com/promobeats/backoffice/internal/pkg/config"
	"github.com/promobeats/backoffice/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := mongodb.EnsureIndexes(ctx, conn.DB); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	clk := clock.NewSystem()
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, clk)

	sink := activity.NewRedisStreamSink(rdb, cfg.Activity.Stream, cfg.Activity.MaxLen)
	dispatcher := activity.NewDispatcher(cfg.Activity.Workers, sink, clk, log)
	dispatcher.Start(ctx)

	repos := mongodb.NewRepoSet(conn.DB)
	uow := mongodb.NewUnitOfWork(conn.Client, conn.DB)

	roleService := usecase.NewRoleService(repos, uow, log)
	if err := roleService.EnsureBuiltins(ctx); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	if cfg.Bootstrap.AdminEmail != "" && cfg.Bootstrap.AdminPassword != "" {
		accountService := usecase.NewAccountService(repos, uow, hasher, dispatcher, log)
		res, err := accountService.BootstrapSuperAdmin(ctx,
			cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("super admin bootstrap failed")
		}
		if res.OK() && res.Value() != nil {
			log.Info().Str("email", cfg.Bootstrap.AdminEmail).Msg("super admin created")
		}
	}

	e := api.NewRouter(api.Deps{
		Client:   conn.Client,
		DB:       conn.DB,
		Redis:    rdb,
		Hasher:   hasher,
		Signer:   signer,
		Activity: dispatcher,
		TokenTTL: cfg.TokenTTL,
		Log:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
