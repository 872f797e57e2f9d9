// Package config читает конфигурацию сервиса из переменных окружения.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config описывает конфигурацию процесса.
type Config struct {
	// Env — окружение: development или production.
	Env string
	// Host и Port — адрес HTTP-сервера.
	Host string
	Port string
	// DBDSN — строка подключения к PostgreSQL.
	DBDSN string
	// ReminderPollInterval — период опроса планировщика напоминаний.
	ReminderPollInterval time.Duration
}

// Load собирает конфигурацию из окружения. Файл .env, если он есть,
// подгружается без перекрытия уже установленных переменных.
// DB_DSN обязателен.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:                  getEnv("APP_ENV", "development"),
		Host:                 getEnv("HOST", "127.0.0.1"),
		Port:                 getEnv("PORT", "5000"),
		DBDSN:                os.Getenv("DB_DSN"),
		ReminderPollInterval: 5 * time.Minute,
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}

	if v := os.Getenv("REMINDER_POLL_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse REMINDER_POLL_INTERVAL: %w", err)
		}
		if interval <= 0 {
			return Config{}, fmt.Errorf("REMINDER_POLL_INTERVAL must be positive")
		}
		cfg.ReminderPollInterval = interval
	}

	return cfg, nil
}

// Addr возвращает адрес для прослушивания HTTP-сервером.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
