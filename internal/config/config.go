package config

import (
	"fmt"
	"strings"

	"github.com/fieldhouse/service-booking/internal/platform/database"
	"github.com/spf13/viper"
)

// KafkaConfig holds broker settings for event publishing.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// BookingConfig holds the business limits for the booking workflow.
type BookingConfig struct {
	MaxMinutesPerDay int
}

// ServiceConfig holds all configuration for the pitch booking service.
type ServiceConfig struct {
	Port          string
	AppEnv        string
	MigrationsDir string
	DBConfig      database.PostgresConfig
	KafkaConfig   KafkaConfig
	BookingConfig BookingConfig
}

// Load reads configuration from environment variables with the PITCH prefix.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("PITCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MIGRATIONS_DIR", "migrations")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "pitch_booking")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_GROUP_PREFIX", "fieldhouse.")

	v.SetDefault("MAX_BOOKING_MINUTES", 120)

	cfg := &ServiceConfig{
		Port:          ":" + v.GetString("SERVICE_PORT"),
		AppEnv:        v.GetString("APP_ENV"),
		MigrationsDir: v.GetString("MIGRATIONS_DIR"),
		DBConfig: database.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		KafkaConfig: KafkaConfig{
			Brokers:     strings.Split(v.GetString("KAFKA_BROKERS"), ","),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
		BookingConfig: BookingConfig{
			MaxMinutesPerDay: v.GetInt("MAX_BOOKING_MINUTES"),
		},
	}

	if cfg.BookingConfig.MaxMinutesPerDay <= 0 {
		return nil, fmt.Errorf("PITCH_MAX_BOOKING_MINUTES must be positive, got %d", cfg.BookingConfig.MaxMinutesPerDay)
	}

	return cfg, nil
}
