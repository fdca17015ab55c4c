package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/simulator/internal/cli"
	"github.com/iamasit07/4-in-a-row/simulator/internal/config"
)

func main() {
	// console output for the config warnings; the command applies --log-level
	if err := cli.SetupLogging(zerolog.LevelInfoValue, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("setting up logging")
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cli.Execute(config.LoadConfig())
}
