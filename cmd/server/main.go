package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/devport/portfolio-api/internal/auth"
	"github.com/devport/portfolio-api/internal/config"
	"github.com/devport/portfolio-api/internal/db"
	"github.com/devport/portfolio-api/internal/handlers"
	"github.com/devport/portfolio-api/internal/logger"
	"github.com/devport/portfolio-api/internal/server"
	"github.com/devport/portfolio-api/internal/services"
	"github.com/devport/portfolio-api/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting portfolio backend",
		zap.String("env", cfg.AppEnv),
		zap.String("port", cfg.Port),
	)

	ctx := context.Background()

	mongo, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("mongodb connection failed", zap.Error(err))
	}
	if err := mongo.EnsureIndexes(ctx); err != nil {
		log.Fatal("index bootstrap failed", zap.Error(err))
	}
	log.Info("connected to mongodb", zap.String("database", cfg.MongoDB))

	media, err := storage.NewMediaStore(ctx, storage.Options{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
		PublicURL: cfg.MinioPublicURL,
	})
	if err != nil {
		log.Fatal("media host connection failed", zap.Error(err))
	}
	if media.Configured() {
		log.Info("media host configured", zap.String("bucket", cfg.MinioBucket))
	} else {
		log.Warn("media host not configured, uploads fall back to inline data URLs")
	}

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.JWTExpiresIn)
	authSvc := services.NewAuthService(mongo.Database(), tokens)

	app := server.New(cfg, server.Deps{
		Tokens:  tokens,
		Users:   authSvc,
		Auth:    handlers.NewAuthHandler(authSvc, cfg.AllowRegister),
		Project: handlers.NewProjectHandler(services.NewProjectService(mongo.Database())),
		Skill:   handlers.NewSkillHandler(services.NewSkillService(mongo.Database())),
		About:   handlers.NewAboutHandler(services.NewAboutService(mongo.Database())),
		Contact: handlers.NewContactHandler(services.NewContactService(mongo.Database())),
		Upload:  handlers.NewUploadHandler(services.NewUploadService(media, cfg.MaxUploadMB), cfg.MaxBatchSize),
		Health:  handlers.NewHealthHandler(cfg.AppEnv),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal("server stopped", zap.Error(err))
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := mongo.Close(ctx); err != nil {
		log.Error("mongodb disconnect failed", zap.Error(err))
	}
	log.Info("shutdown complete")
}
