package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL     string `env:"DATABASE_URL"`
	DatabaseMaxConn int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	HTTPPort        string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"LOG_FORMAT" envDefault:"json"`
	MigrationsPath  string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr    string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass    string        `env:"REDIS_PASSWORD"`
	RedisDB      int           `env:"REDIS_DB" envDefault:"0"`
	CaseCacheTTL time.Duration `env:"CASE_CACHE_TTL" envDefault:"5m"`

	// Evidence storage (MinIO / S3)
	MinioEndpoint   string        `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	MinioAccessKey  string        `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey  string        `env:"MINIO_SECRET_KEY"`
	MinioBucket     string        `env:"MINIO_BUCKET" envDefault:"sos-evidence"`
	MinioUseSSL     bool          `env:"MINIO_USE_SSL" envDefault:"false"`
	EvidenceURLTTL  time.Duration `env:"EVIDENCE_URL_TTL" envDefault:"15m"`
	MaxUploadMemory int64         `env:"MAX_UPLOAD_MEMORY" envDefault:"33554432"`

	// Emergency dispatch webhook (phone call + SMS gateway)
	WebhookURL        string        `env:"EMERGENCY_WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"5"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Confirmation email
	SendGridAPIKey    string `env:"SENDGRID_API_KEY"`
	SendGridFromEmail string `env:"SENDGRID_FROM_EMAIL" envDefault:"sos@prashiskshan.in"`
	SendGridFromName  string `env:"SENDGRID_FROM_NAME" envDefault:"Prashiskshan SOS"`
	HelplineNumber    string `env:"HELPLINE_NUMBER" envDefault:"1800-XXX-XXXX"`

	// SLA monitor
	SLASweepSchedule string `env:"SLA_SWEEP_SCHEDULE" envDefault:"@every 1m"`
	SLASweepBatch    int    `env:"SLA_SWEEP_BATCH" envDefault:"100"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DatabaseMaxConn:   int32(getEnvAsInt("DATABASE_MAX_CONNS", 10)),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		CaseCacheTTL:      getEnvAsDuration("CASE_CACHE_TTL", 5*time.Minute),
		MinioEndpoint:     getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:    os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:    os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:       getEnv("MINIO_BUCKET", "sos-evidence"),
		MinioUseSSL:       getEnvAsBool("MINIO_USE_SSL", false),
		EvidenceURLTTL:    getEnvAsDuration("EVIDENCE_URL_TTL", 15*time.Minute),
		MaxUploadMemory:   getEnvAsInt64("MAX_UPLOAD_MEMORY", 32<<20),
		WebhookURL:        os.Getenv("EMERGENCY_WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 5),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "sos@prashiskshan.in"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Prashiskshan SOS"),
		HelplineNumber:    getEnv("HELPLINE_NUMBER", "1800-XXX-XXXX"),
		SLASweepSchedule:  getEnv("SLA_SWEEP_SCHEDULE", "@every 1m"),
		SLASweepBatch:     getEnvAsInt("SLA_SWEEP_BATCH", 100),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.WebhookMaxRetries < 1 {
		cfg.WebhookMaxRetries = 1
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
