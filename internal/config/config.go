// Package config loads application settings from an optional YAML file
// with environment-variable overrides on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN builds a libpq-compatible connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":8080".
	Listen string `yaml:"listen"`

	// Timezone is the IANA zone all day/month boundaries are computed
	// in. Both boundary computations of a scope must use this single
	// zone.
	Timezone string `yaml:"timezone"`

	// JWTSecret is the HMAC key used to verify bearer tokens.
	JWTSecret string `yaml:"jwt_secret"`

	Database DatabaseConfig `yaml:"database"`
}

// Default returns the configuration used when no file and no
// environment overrides are present.
func Default() *Config {
	return &Config{
		Listen:    ":8080",
		Timezone:  "UTC",
		JWTSecret: "dev-secret-change-me",
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "daybook",
			SSLMode:  "disable",
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty or the
// file does not exist) and then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to env/defaults
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("config timezone: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func applyEnv(cfg *Config) {
	setEnv(&cfg.Listen, "LISTEN_ADDR")
	setEnv(&cfg.Timezone, "TIMEZONE")
	setEnv(&cfg.JWTSecret, "JWT_SECRET")
	setEnv(&cfg.Database.Host, "DB_HOST")
	setEnv(&cfg.Database.Port, "DB_PORT")
	setEnv(&cfg.Database.User, "DB_USER")
	setEnv(&cfg.Database.Password, "DB_PASSWORD")
	setEnv(&cfg.Database.Name, "DB_NAME")
	setEnv(&cfg.Database.SSLMode, "DB_SSLMODE")
}

func setEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
