package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "3000"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  getduration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getduration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			DSN:             getenv("DATABASE_DSN", "root:@tcp(localhost:3306)/holocron?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    getint("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getint("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getduration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			Secret: getenv("JWT_SECRET", "change-me-in-production"),
			Expiry: getduration("JWT_EXPIRY", 24*time.Hour),
			Issuer: getenv("JWT_ISSUER", "holocron"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
