package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	JWTSecret   string
	FrontendURL string
	// Spaces (S3-compatible) object storage
	SpacesEndpoint    string // e.g. https://nyc3.digitaloceanspaces.com
	SpacesCDNEndpoint string // e.g. https://nyc3.cdn.digitaloceanspaces.com
	SpacesRegion      string
	SpacesAccessKey   string
	SpacesSecretKey   string
	// SMTP configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// Redis (rate limiting)
	RedisURL      string
	RedisPassword string
	// Upload limits
	UploadRateLimitWindowSeconds int
	UploadRateLimitThreshold     int
	MaxResumeSizeBytes           int64
	MaxVideoSizeBytes            int64
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		SpacesEndpoint:    strings.TrimRight(getEnv("SPACES_ENDPOINT", ""), "/"),
		SpacesCDNEndpoint: strings.TrimRight(getEnv("SPACES_CDN_ENDPOINT", ""), "/"),
		SpacesRegion:      getEnv("SPACES_REGION", "us-east-1"),
		SpacesAccessKey:   getEnv("SPACES_ACCESS_KEY", ""),
		SpacesSecretKey:   getEnv("SPACES_SECRET_KEY", ""),

		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@skilledup.io"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		UploadRateLimitWindowSeconds: getEnvInt("UPLOAD_RATE_LIMIT_WINDOW_SECONDS", 60),
		UploadRateLimitThreshold:     getEnvInt("UPLOAD_RATE_LIMIT_THRESHOLD", 10),
		MaxResumeSizeBytes:           getEnvInt64("MAX_RESUME_SIZE_BYTES", 10<<20),
		MaxVideoSizeBytes:            getEnvInt64("MAX_VIDEO_SIZE_BYTES", 100<<20),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SpacesAccessKey == "" || cfg.SpacesSecretKey == "" {
		log.Println("WARNING: Spaces credentials not configured. Media uploads will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}
