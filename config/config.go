package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	GeminiKey      string
	GmailUser      string
	GmailPass      string
	MediaBucket    string
	AllowedOrigins []string
}

func LoadConfig() Config {
	// .env is optional; real deployments inject env vars directly
	_ = godotenv.Load()

	return Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		GeminiKey:      os.Getenv("GEMINI_KEY"),
		GmailUser:      os.Getenv("GMAIL_USER"),
		GmailPass:      os.Getenv("GMAIL_APP_PASSWORD"),
		MediaBucket:    os.Getenv("MEDIA_BUCKET"),
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"http://localhost:3000"}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
