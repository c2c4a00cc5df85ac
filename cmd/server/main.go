package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/resume-builder/internal/config"
	"github.com/fadilmartias/resume-builder/internal/database"
	"github.com/fadilmartias/resume-builder/internal/logger"
	"github.com/fadilmartias/resume-builder/internal/router"
	"github.com/fadilmartias/resume-builder/internal/service"
	"github.com/fadilmartias/resume-builder/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("could not load .env file, using the environment")
	}

	appConfig := config.LoadAppConfig()
	logger.New(appConfig.Env, appConfig.Name)

	db, err := database.Connect(config.LoadDBConfig(), appConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}

	storageConfig := config.LoadStorageConfig()
	images, err := service.NewImageStore(ctx, storageConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("image storage setup failed")
	}

	reviewer, err := service.NewReviewer(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("reviewer setup failed")
	}
	if reviewer == nil {
		log.Info().Msg("resume review disabled")
	}

	sessionConfig := config.LoadSessionConfig()
	var sessionStorage fiber.Storage
	if sessionConfig.Store == "redis" {
		client, err := storage.NewRedisClient(ctx, sessionConfig.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("session storage setup failed")
		}
		redisStorage := storage.NewRedisStorage(client)
		defer redisStorage.Close()
		sessionStorage = redisStorage
	}

	app := router.New(router.Options{
		DB:             db,
		Images:         images,
		Reviewer:       reviewer,
		App:            appConfig,
		Session:        sessionConfig,
		Storage:        storageConfig,
		SessionStorage: sessionStorage,
		AccessLog:      true,
	})

	if !appConfig.IsProduction() {
		go func() {
			ticker := time.NewTicker(1 * time.Minute)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					log.Debug().Int("goroutines", runtime.NumGoroutine()).Msg("runtime stats")
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", appConfig.Port).Msg("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
