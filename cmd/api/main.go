package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/legalsuccessindia/portfolio-backend/internal/api"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/service"
	"github.com/legalsuccessindia/portfolio-backend/internal/infrastructure/config"
	"github.com/legalsuccessindia/portfolio-backend/internal/infrastructure/db/mysql"
	redisdb "github.com/legalsuccessindia/portfolio-backend/internal/infrastructure/db/redis"
	"github.com/legalsuccessindia/portfolio-backend/pkg/logger"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if insecure := cfg.InsecureDefaults(); len(insecure) > 0 {
		log.Warn().
			Str("env", cfg.Env).
			Str("variables", strings.Join(insecure, ", ")).
			Msg("running with built-in development secrets; override these in production")
	}

	db, err := mysql.Connect(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mysql")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	// Seed the initial admin account. Safe to run from several processes at
	// once: the loser of the insert race treats the duplicate as success.
	authService := service.NewAuthService(mysql.NewAdminRepository(db), cfg.JWTSecret, tokenTTL, log)
	if err := authService.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default admin")
	}

	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable; login rate limiting disabled")
			rdb = nil
		}
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
