package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/dailyquiz/internal/config"
	"github.com/example/dailyquiz/internal/database"
	"github.com/example/dailyquiz/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	loc, err := time.LoadLocation(cfg.QuizTimezone)
	if err != nil {
		log.Fatalf("invalid QUIZ_TIMEZONE %q: %v", cfg.QuizTimezone, err)
	}

	app := fiber.New(fiber.Config{
		AppName: "Daily Quiz Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg, loc)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
