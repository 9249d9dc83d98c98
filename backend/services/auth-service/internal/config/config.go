package config

import (
	"errors"
	"fmt"
	"strings"

	libconfig "hackathon/backend/libs/config"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config represents service configuration loaded from YAML/env.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Password PasswordConfig `yaml:"password"`
}

type HTTPConfig struct {
	Port string `yaml:"port" env:"AUTH_HTTP_PORT"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"AUTH_STORAGE_DRIVER"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"AUTH_POSTGRES_DSN"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"AUTH_REDIS_ADDR"`
	Password string `yaml:"password" env:"AUTH_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"AUTH_REDIS_DB"`
}

type PasswordConfig struct {
	BcryptCost int `yaml:"bcryptCost" env:"AUTH_BCRYPT_COST"`
}

// Load reads configuration using the shared config loader.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP:    HTTPConfig{Port: "3001"},
		Storage: StorageConfig{Driver: DriverPostgres},
	}

	if err := libconfig.Load(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the storage settings required by the selected driver.
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return errors.New("config: database DSN is required for postgres storage")
		}
	case DriverRedis:
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return errors.New("config: redis addr is required for redis storage")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// HTTPAddress ensures we always return host:port formatted string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "3001"
	}
	if strings.Contains(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
