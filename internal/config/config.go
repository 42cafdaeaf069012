package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Timezone string         `yaml:"timezone"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	SecretKey     string `yaml:"secret_key"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func Default() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Path: filepath.Join("data", "modest.db")},
		Auth:     AuthConfig{SecretKey: "change_me_in_production", TokenTTLHours: 72},
		Log: LogConfig{
			Level:      "info",
			Console:    true,
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
		Timezone: "UTC",
	}
}

// Load starts from defaults, merges an optional YAML file, then applies env
// overrides, so a bare binary still starts with sane settings.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if port, ok := envInt("PORT"); ok {
		cfg.Server.Port = port
	}
	if value := os.Getenv("DB_PATH"); value != "" {
		cfg.Database.Path = value
	}
	if value := os.Getenv("SECRET_KEY"); value != "" {
		cfg.Auth.SecretKey = value
	}
	if value := os.Getenv("TZ"); value != "" {
		cfg.Timezone = value
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		cfg.Log.Level = value
	}
	if value := os.Getenv("LOG_FILE"); value != "" {
		cfg.Log.File = value
	}
}

func envInt(key string) (int, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
