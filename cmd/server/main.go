// Package main boots the portfolio backend: configuration, logging, MongoDB,
// Redis, object storage, the HTTP router, and graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litogalan/portfolio-cms/internal/api"
	"github.com/litogalan/portfolio-cms/internal/infrastructure/config"
	mongodb "github.com/litogalan/portfolio-cms/internal/infrastructure/db/mongo"
	redisdb "github.com/litogalan/portfolio-cms/internal/infrastructure/db/redis"
	"github.com/litogalan/portfolio-cms/internal/infrastructure/mail"
	"github.com/litogalan/portfolio-cms/internal/infrastructure/storage"
	"github.com/litogalan/portfolio-cms/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	media, err := storage.New(ctx, storage.Config{
		Endpoint:      cfg.Media.Endpoint,
		AccessKey:     cfg.Media.AccessKey,
		SecretKey:     cfg.Media.SecretKey,
		Bucket:        cfg.Media.Bucket,
		UseSSL:        cfg.Media.UseSSL,
		PublicBaseURL: cfg.Media.PublicBaseURL,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage unavailable")
	}

	e := api.NewRouter(api.Deps{
		Mongo:       db,
		Redis:       rdb,
		Media:       media,
		Images:      storage.NewImageProcessor(),
		Mailer:      mail.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From),
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    time.Duration(cfg.TokenTTLMin) * time.Minute,
		FrontendURL: cfg.FrontendURL,
		Logger:      log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}

// ensureIndexes creates the indexes the uniqueness rules rely on. They are
// the authoritative guard; service-level pre-checks only improve error
// messages.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	for name, ensure := range map[string]func(context.Context) error{
		"users":       mongodb.NewUserRepository(db).EnsureIndexes,
		"projects":    mongodb.NewProjectRepository(db).EnsureIndexes,
		"skills":      mongodb.NewSkillRepository(db).EnsureIndexes,
		"employment":  mongodb.NewEmploymentRepository(db).EnsureIndexes,
		"subscribers": mongodb.NewSubscriberRepository(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return fmt.Errorf("indexes for %s: %w", name, err)
		}
	}
	return nil
}
