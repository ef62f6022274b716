package main

import (
	"flag"

	"github.com/lshigami/qa-service/config"
	"github.com/lshigami/qa-service/database"
	"github.com/lshigami/qa-service/internal/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	if *direction != "up" && *direction != "down" {
		log.Fatal().Str("direction", *direction).Msg("direction must be up or down")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if _, err := logger.Init(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise logger")
	}
	cfg.LogSummary()

	if err := database.MigrateSQL(cfg.Database.DSN(), *direction == "up"); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
