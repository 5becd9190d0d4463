package main

import (
	"log"

	"campus_market/cache"
	"campus_market/config"
	"campus_market/handler"
	"campus_market/helper"
	"campus_market/router"
	"campus_market/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	cache.Connect(cfg.Redis)

	core := upstream.New(cfg.Upstream)
	handler.Init(cfg, core)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
	}))

	helper.StartUpstreamMonitor(core)
	defer helper.StopUpstreamMonitor()

	router.SetupRoutes(app)

	log.Printf("Gateway starting on port %s (core API at %s)", cfg.Server.Port, cfg.Upstream.BaseURL)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
