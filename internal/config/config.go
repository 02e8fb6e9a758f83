package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI      string
	DBName        string
	ClerkJWKSURL  string
	SessionSecret string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:      getEnvOrDefault("MONGODB_URI", ""),
		DBName:        getEnvOrDefault("MONGODB_DB", "paw-places"),
		ClerkJWKSURL:  getEnvOrDefault("CLERK_JWKS_URL", ""),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", ""),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
