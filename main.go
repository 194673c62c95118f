package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"backoffice/config"
	"backoffice/database"
	"backoffice/jobs"
	"backoffice/routes"
	tasks "backoffice/task"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using process environment")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("LOG_PRETTY") == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	schedulesPath := os.Getenv("SCHEDULES_CONFIG")
	if schedulesPath == "" {
		schedulesPath = "schedules.yaml"
	}
	cfg := config.Load(schedulesPath)

	database.Connect()
	config.ConnectRedis()
	tasks.SeedSchedules(cfg.Schedules)

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3000"
	}

	app := fiber.New()
	routes.Setup(app)
	jobs.StartAutoApproveScheduler()

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Info().Str("addr", addr).Msg("Server running")

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Panic().Err(err).Msg("Failed to start server")
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info().Msg("Gracefully shutting down")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited cleanly")
}
