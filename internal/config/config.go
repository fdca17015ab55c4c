package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
	"github.com/iamasit07/4-in-a-row/simulator/internal/service/bot"
)

type Config struct {
	Player1       string
	Player2       string
	Games         int
	Depth         int
	Seed          uint64
	Rules         domain.Rules
	RedisURL      string
	RedisPassword string
	LogLevel      string
}

// LoadConfig reads the environment, falling back to defaults for anything
// missing or malformed. Call godotenv.Load first to pick up a .env file.
func LoadConfig() *Config {
	standard := domain.StandardRules()

	return &Config{
		Player1: GetEnv("C4_PLAYER1", bot.NameRandom),
		Player2: GetEnv("C4_PLAYER2", bot.NameWinOrBlock),
		Games:   GetEnvAsInt("C4_GAMES", 100),
		Depth:   GetEnvAsInt("C4_DEPTH", bot.DefaultMinimaxDepth),
		Seed:    GetEnvAsUint64("C4_SEED", 0),
		Rules: domain.Rules{
			Rows:    GetEnvAsInt("C4_ROWS", standard.Rows),
			Columns: GetEnvAsInt("C4_COLUMNS", standard.Columns),
			ToWin:   GetEnvAsInt("C4_CONNECT", standard.ToWin),
		},
		RedisURL:      GetEnv("REDIS_URL", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("Invalid unsigned value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
