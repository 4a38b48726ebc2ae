package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port            string
	APIPrefix       string
	DBType          string
	PostgresURL     string
	MongoURL        string
	JWTSecret       string
	TokenTTLMinutes int
	BcryptCost      int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:            os.Getenv("PORT"),
		APIPrefix:       os.Getenv("API_PREFIX"),
		DBType:          os.Getenv("DB_TYPE"),
		PostgresURL:     os.Getenv("POSTGRES_URL"),
		MongoURL:        os.Getenv("MONGO_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTLMinutes: getInt("TOKEN_TTL_MINUTES", 60),
		BcryptCost:      getInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api"
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}
	return cfg
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
