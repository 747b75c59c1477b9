package config

import (
	"fmt"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RedisConfig struct {
	Addr       string
	Enabled    bool
	TTLSeconds int
}

type PredictionConfig struct {
	URL            string
	TimeoutSeconds int
	MaxRetries     int
	RetryBackoffMs int
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	GRPCPort    int
	HTTPPort    int
	DB          DatabaseConfig
	Kafka       KafkaConfig
	Redis       RedisConfig
	Prediction  PredictionConfig
	Log         LogConfig
	ServiceName string
}

// Validate panics on missing required settings. An empty PREDICTION_URL is
// allowed: the service falls back to the stub prediction client.
func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9095),
		HTTPPort: getEnvInt("HTTP_PORT", 8095),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "risk"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "risk_scoring"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "risk-events"),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			Enabled:    getEnv("REDIS_ENABLED", "true") == "true",
			TTLSeconds: getEnvInt("REDIS_DECISION_TTL_SECONDS", 900),
		},
		Prediction: PredictionConfig{
			URL:            getEnv("PREDICTION_URL", ""),
			TimeoutSeconds: getEnvInt("PREDICTION_TIMEOUT_SECONDS", 10),
			MaxRetries:     getEnvInt("PREDICTION_MAX_RETRIES", 0),
			RetryBackoffMs: getEnvInt("PREDICTION_RETRY_BACKOFF_MS", 200),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		ServiceName: "risk-service",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
