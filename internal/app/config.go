package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/yungbote/claimline-backend/internal/data/db"
	"github.com/yungbote/claimline-backend/internal/events"
	"github.com/yungbote/claimline-backend/internal/observability"
)

type Config struct {
	Port        int
	LogMode     string
	ServiceName string
	Environment string
	CORSOrigins []string

	DB    db.Config
	Redis events.RedisConfig

	MetricsEnabled bool
	Otel           observability.OtelConfig

	ReadCacheTTL time.Duration
}

// SetDefaults registers every key so AutomaticEnv can resolve it from the
// matching upper-case environment variable.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("log_mode", "development")
	v.SetDefault("service_name", "core-svc")
	v.SetDefault("environment", "local")
	v.SetDefault("cors_origins", "")

	v.SetDefault("db_driver", db.DriverPostgres)
	v.SetDefault("postgres_host", "localhost")
	v.SetDefault("postgres_port", "5432")
	v.SetDefault("postgres_user", "postgres")
	v.SetDefault("postgres_password", "")
	v.SetDefault("postgres_name", "claimline")
	v.SetDefault("postgres_sslmode", "disable")
	v.SetDefault("sqlite_path", "claimline.db")
	v.SetDefault("db_max_open_conns", 20)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", "30m")
	v.SetDefault("db_slow_threshold", "1s")

	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_channel", "claimline.events")

	v.SetDefault("metrics_enabled", true)
	v.SetDefault("otel_enabled", false)
	v.SetDefault("otel_endpoint", "")
	v.SetDefault("otel_headers", "")
	v.SetDefault("otel_insecure", false)
	v.SetDefault("otel_sample_ratio", 1.0)
	v.SetDefault("service_version", "dev")

	v.SetDefault("read_cache_ttl", "5m")
}

// LoadConfig reads the effective configuration from v. Values come from
// environment variables, then the config file, then defaults.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		Port:        v.GetInt("port"),
		LogMode:     strings.TrimSpace(v.GetString("log_mode")),
		ServiceName: strings.TrimSpace(v.GetString("service_name")),
		Environment: strings.TrimSpace(v.GetString("environment")),
		CORSOrigins: splitList(v.GetString("cors_origins")),
		DB: db.Config{
			Driver:          strings.ToLower(strings.TrimSpace(v.GetString("db_driver"))),
			Host:            v.GetString("postgres_host"),
			Port:            v.GetString("postgres_port"),
			User:            v.GetString("postgres_user"),
			Password:        v.GetString("postgres_password"),
			Name:            v.GetString("postgres_name"),
			SSLMode:         v.GetString("postgres_sslmode"),
			SQLitePath:      v.GetString("sqlite_path"),
			MaxOpenConns:    v.GetInt("db_max_open_conns"),
			MaxIdleConns:    v.GetInt("db_max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db_conn_max_lifetime"),
			SlowThreshold:   v.GetDuration("db_slow_threshold"),
		},
		Redis: events.RedisConfig{
			Addr:     strings.TrimSpace(v.GetString("redis_addr")),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
			Channel:  strings.TrimSpace(v.GetString("redis_channel")),
		},
		MetricsEnabled: v.GetBool("metrics_enabled"),
		Otel: observability.OtelConfig{
			Enabled:     v.GetBool("otel_enabled"),
			Endpoint:    strings.TrimSpace(v.GetString("otel_endpoint")),
			Headers:     v.GetString("otel_headers"),
			Insecure:    v.GetBool("otel_insecure"),
			SampleRatio: v.GetFloat64("otel_sample_ratio"),
			Version:     v.GetString("service_version"),
		},
		ReadCacheTTL: v.GetDuration("read_cache_ttl"),
	}
	cfg.Otel.ServiceName = cfg.ServiceName
	cfg.Otel.Environment = cfg.Environment

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.DB.Driver {
	case db.DriverPostgres:
		if strings.TrimSpace(c.DB.Host) == "" || strings.TrimSpace(c.DB.Name) == "" {
			return fmt.Errorf("postgres host and name are required")
		}
	case db.DriverSQLite:
		if strings.TrimSpace(c.DB.SQLitePath) == "" {
			return fmt.Errorf("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported db driver %q (want postgres or sqlite)", c.DB.Driver)
	}
	return nil
}

// Settings flattens c into the same keys LoadConfig reads, so the output
// of `config show` can be used as a config file.
func (c Config) Settings() map[string]any {
	return map[string]any{
		"port":                 c.Port,
		"log_mode":             c.LogMode,
		"service_name":         c.ServiceName,
		"environment":          c.Environment,
		"cors_origins":         strings.Join(c.CORSOrigins, ","),
		"db_driver":            c.DB.Driver,
		"postgres_host":        c.DB.Host,
		"postgres_port":        c.DB.Port,
		"postgres_user":        c.DB.User,
		"postgres_password":    c.DB.Password,
		"postgres_name":        c.DB.Name,
		"postgres_sslmode":     c.DB.SSLMode,
		"sqlite_path":          c.DB.SQLitePath,
		"db_max_open_conns":    c.DB.MaxOpenConns,
		"db_max_idle_conns":    c.DB.MaxIdleConns,
		"db_conn_max_lifetime": c.DB.ConnMaxLifetime.String(),
		"db_slow_threshold":    c.DB.SlowThreshold.String(),
		"redis_addr":           c.Redis.Addr,
		"redis_password":       c.Redis.Password,
		"redis_db":             c.Redis.DB,
		"redis_channel":        c.Redis.Channel,
		"metrics_enabled":      c.MetricsEnabled,
		"otel_enabled":         c.Otel.Enabled,
		"otel_endpoint":        c.Otel.Endpoint,
		"otel_headers":         c.Otel.Headers,
		"otel_insecure":        c.Otel.Insecure,
		"otel_sample_ratio":    c.Otel.SampleRatio,
		"service_version":      c.Otel.Version,
		"read_cache_ttl":       c.ReadCacheTTL.String(),
	}
}

// Addr is the HTTP listen address.
func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	out := c
	if out.DB.Password != "" {
		out.DB.Password = "[REDACTED]"
	}
	if out.Redis.Password != "" {
		out.Redis.Password = "[REDACTED]"
	}
	if out.Otel.Headers != "" {
		out.Otel.Headers = "[REDACTED]"
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
