package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Port: "8080",
			AllowedOrigins: []string{
				"http://localhost:80",
				"http://localhost:3000",
				"http://localhost:5174",
			},
		},
		Postgres: PostgresConfig{
			Host: "localhost",
			Port: "5432",
			User: "postgres",
			Name: "marketlens",
		},
		Redis: RedisConfig{
			Channel: "orchestration",
		},
		Otel: OtelConfig{
			ServiceName: "marketlens",
			Environment: "development",
		},
	}
}

// Load reads the optional YAML config file (ML_CONFIG_PATH, falling back to
// ./config/config.yaml) and then applies env-var overrides on top, so a bare
// environment still produces a runnable config.
func Load() (*Config, error) {
	cfg := defaultConfig()

	cfgPath := strings.TrimSpace(os.Getenv("ML_CONFIG_PATH"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}

	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if strings.TrimSpace(cfg.HTTP.Port) == "" {
		cfg.HTTP.Port = "8080"
	}
	if strings.TrimSpace(cfg.Postgres.Host) == "" {
		cfg.Postgres.Host = "localhost"
	}
	if strings.TrimSpace(cfg.Postgres.Port) == "" {
		cfg.Postgres.Port = "5432"
	}
	if strings.TrimSpace(cfg.Redis.Channel) == "" {
		cfg.Redis.Channel = "orchestration"
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("LOG_MODE")); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.HTTP.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		if len(origins) > 0 {
			cfg.HTTP.AllowedOrigins = origins
		}
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_HOST")); v != "" {
		cfg.Postgres.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_PORT")); v != "" {
		cfg.Postgres.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_USER")); v != "" {
		cfg.Postgres.User = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_PASSWORD")); v != "" {
		cfg.Postgres.Password = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_NAME")); v != "" {
		cfg.Postgres.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_ADDR")); v != "" {
		cfg.Redis.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_CHANNEL")); v != "" {
		cfg.Redis.Channel = v
	}
	if v := strings.TrimSpace(os.Getenv("OTEL_ENABLED")); v != "" {
		cfg.Otel.Enabled = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv("OTEL_SERVICE_NAME")); v != "" {
		cfg.Otel.ServiceName = v
	}
}

// DSN renders the Postgres connection string the way gorm's postgres driver
// expects it.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.Name)
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}
