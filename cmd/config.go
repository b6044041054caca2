package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	KafkaBrokers          []string
	KafkaOrderEventsTopic string
	ServiceName           string
	SystemActor           string
	OutboxBatchSize       int
	OutboxMaxRetries      int
	LogLevel              slog.Level
}

// LoadConfig reads the configuration from the environment after loading
// envFile into it. A missing envFile is not an error; variables already set
// in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		DBHost:                envOrDefault("DB_HOST", "localhost"),
		DBPort:                envOrDefault("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOrDefault("DB_SSLMODE", "disable"),
		KafkaBrokers:          splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaOrderEventsTopic: envOrDefault("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),
		ServiceName:           envOrDefault("SERVICE_NAME", "ordering"),
		SystemActor:           envOrDefault("SYSTEM_ACTOR", "system"),
	}

	var errBatch, errRetries, errLevel error
	cfg.OutboxBatchSize, errBatch = intOrDefault("OUTBOX_BATCH_SIZE", 100)
	cfg.OutboxMaxRetries, errRetries = intOrDefault("OUTBOX_MAX_RETRIES", 10)
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if errLevel = cfg.LogLevel.UnmarshalText([]byte(raw)); errLevel != nil {
			errLevel = fmt.Errorf("LOG_LEVEL: %w", errLevel)
		}
	}
	if err := errors.Join(errBatch, errRetries, errLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether events go to Kafka instead of the log.
func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intOrDefault(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(csv string) []string {
	var items []string
	for _, item := range strings.Split(csv, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
