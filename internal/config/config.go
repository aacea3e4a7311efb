package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultAppPort = "8090"

type Config struct {
	AppPort           string
	AppEnv            string
	LogLevel          string
	BankSimulatorURL  string
	InternalSecretKey string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           getenv("APP_PORT", defaultAppPort),
		AppEnv:            os.Getenv("APP_ENV"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		BankSimulatorURL:  os.Getenv("BANK_SIMULATOR_URL"),
		InternalSecretKey: os.Getenv("INTERNAL_SECRET_KEY"),
	}

	if cfg.BankSimulatorURL == "" {
		log.Fatal("BANK_SIMULATOR_URL is not set")
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
