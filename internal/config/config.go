package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DatabaseURL string

	RedisURL        string
	CommentCacheTTL time.Duration

	JWTSecret       string
	JWTAccessExpiry time.Duration

	MinIOEndpoint   string
	MinIOAccessKey  string
	MinIOSecretKey  string
	MinIOBucket     string
	MinIOUseSSL     bool
	UploadURLExpiry time.Duration

	CORSOrigins string

	ResendAPIKey string
	FromEmail    string
	Domain       string

	LocalesPath   string
	DefaultLocale string
}

var defaults = map[string]interface{}{
	"PORT":        "8080",
	"ENVIRONMENT": "development",
	"LOG_LEVEL":   "info",

	"DATABASE_URL": "",

	"REDIS_URL":         "redis://localhost:6379",
	"COMMENT_CACHE_TTL": 5 * time.Minute,

	"JWT_SECRET":        "",
	"JWT_ACCESS_EXPIRY": 15 * time.Minute,

	"MINIO_ENDPOINT":    "localhost:9000",
	"MINIO_ACCESS_KEY":  "minioadmin",
	"MINIO_SECRET_KEY":  "minioadmin",
	"MINIO_BUCKET":      "blogsphere-media",
	"MINIO_USE_SSL":     false,
	"UPLOAD_URL_EXPIRY": 1000 * time.Second,

	"CORS_ORIGINS": "http://localhost:5173",

	"RESEND_API_KEY": "",
	"FROM_EMAIL":     "noreply@example.com",
	"DOMAIN":         "localhost:5173",

	"LOCALES_PATH":   "locales",
	"DEFAULT_LOCALE": "fr",
}

// Load resolves the configuration from the process environment. Call
// godotenv.Load first to pick up a local .env file.
func Load() *Config {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DatabaseURL: v.GetString("DATABASE_URL"),

		RedisURL:        v.GetString("REDIS_URL"),
		CommentCacheTTL: v.GetDuration("COMMENT_CACHE_TTL"),

		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTAccessExpiry: v.GetDuration("JWT_ACCESS_EXPIRY"),

		MinIOEndpoint:   v.GetString("MINIO_ENDPOINT"),
		MinIOAccessKey:  v.GetString("MINIO_ACCESS_KEY"),
		MinIOSecretKey:  v.GetString("MINIO_SECRET_KEY"),
		MinIOBucket:     v.GetString("MINIO_BUCKET"),
		MinIOUseSSL:     v.GetBool("MINIO_USE_SSL"),
		UploadURLExpiry: v.GetDuration("UPLOAD_URL_EXPIRY"),

		CORSOrigins: v.GetString("CORS_ORIGINS"),

		ResendAPIKey: v.GetString("RESEND_API_KEY"),
		FromEmail:    v.GetString("FROM_EMAIL"),
		Domain:       v.GetString("DOMAIN"),

		LocalesPath:   v.GetString("LOCALES_PATH"),
		DefaultLocale: v.GetString("DEFAULT_LOCALE"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
