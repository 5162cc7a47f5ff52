package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/example/lookbook/internal/config"
	"github.com/example/lookbook/internal/database"
	"github.com/example/lookbook/internal/logger"
	"github.com/example/lookbook/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init("lookbook", cfg.AppEnv == "development")
	logger.SetLevel(cfg.LogLevel)

	db := database.Connect(cfg.DatabaseURL)

	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, catalog caching disabled")
			cache = nil
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "Lookbook Backend",
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())

	routes.Register(app, db, cache, cfg)

	log.Info().Str("port", cfg.AppPort).Msg("starting server")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("fiber.Listen error")
	}
}
