package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the service reads from the environment.
// Loaded once in main and passed down; nothing else touches os.Getenv.
type Config struct {
	Port        string
	Origin      string
	MongoURI    string
	Database    string
	TokenKey    string
	TokenTTL    time.Duration
	AIKey       string
	AIBaseURL   string
	AIChatModel string
}

const defaultTokenTTL = time.Hour * 24 * 7

func Load() Config {
	return Config{
		Port:        env("PORT", "3005"),
		Origin:      env("ORIGIN", "http://localhost:3000"),
		MongoURI:    env("MONGODB_URI", "mongodb://localhost:27017"),
		Database:    env("MONGODB_DATABASE", "careerkit"),
		TokenKey:    env("TOKEN_KEY", "YEk9b2KT7Hv6bYuthSzckXKkqkYZawhq"),
		TokenTTL:    envDuration("TOKEN_TTL", defaultTokenTTL),
		AIKey:       env("AI_API_KEY", ""),
		AIBaseURL:   env("AI_BASE_URL", ""),
		AIChatModel: env("AI_CHAT_MODEL", "gpt-4o-mini"),
	}
}

func env(key, fallbackValue string) string {
	s := os.Getenv(key)
	if s == "" {
		return fallbackValue
	}

	return s
}

func envDuration(key string, fallbackValue time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallbackValue
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	// plain number of hours also accepted
	if h, err := strconv.Atoi(s); err == nil {
		return time.Duration(h) * time.Hour
	}
	return fallbackValue
}
