package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Gateway selects which remote data gateway implementation the server runs
// against. "remote" talks to the hosted Postgres service and requires
// GATEWAY_URL and GATEWAY_KEY; "memory" keeps everything in-process.
const (
	GatewayRemote = "remote"
	GatewayMemory = "memory"
)

type Config struct {
	Gateway      string
	GatewayURL   string // Postgres DSN of the hosted service
	GatewayKey   string // service key used to sign session tokens
	ServerPort   string
	TestLogins   bool
	FetchLatency time.Duration
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := &Config{
		Gateway:      getEnv("GATEWAY", GatewayRemote),
		GatewayURL:   os.Getenv("GATEWAY_URL"),
		GatewayKey:   os.Getenv("GATEWAY_KEY"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		TestLogins:   getBoolEnv("TEST_LOGINS", true),
		FetchLatency: time.Duration(getIntEnv("FETCH_LATENCY_MS", 0)) * time.Millisecond,
	}

	if cfg.Gateway == GatewayRemote {
		if cfg.GatewayURL == "" {
			return nil, fmt.Errorf("config: GATEWAY_URL is required")
		}
		if cfg.GatewayKey == "" {
			return nil, fmt.Errorf("config: GATEWAY_KEY is required")
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
