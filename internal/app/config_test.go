package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(viper.New())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("port: want=8080 got=%d", cfg.Port)
	}
	if cfg.DB.Driver != "postgres" {
		t.Fatalf("driver: want=postgres got=%q", cfg.DB.Driver)
	}
	if cfg.ReadCacheTTL != 5*time.Minute {
		t.Fatalf("read cache ttl: want=5m got=%s", cfg.ReadCacheTTL)
	}
	if cfg.Redis.Channel != "claimline.events" {
		t.Fatalf("redis channel: got=%q", cfg.Redis.Channel)
	}
	if cfg.Otel.ServiceName != "core-svc" {
		t.Fatalf("otel service name: got=%q", cfg.Otel.ServiceName)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/claims.db")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("READ_CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig(viper.New())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("port: want=9090 got=%d", cfg.Port)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.SQLitePath != "/tmp/claims.db" {
		t.Fatalf("db: got=%+v", cfg.DB)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis addr: got=%q", cfg.Redis.Addr)
	}
	if cfg.ReadCacheTTL != 30*time.Second {
		t.Fatalf("read cache ttl: got=%s", cfg.ReadCacheTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("cors origins: got=%v", cfg.CORSOrigins)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claimline.yaml")
	if err := os.WriteFile(path, []byte("port: 7070\ndb_driver: sqlite\nsqlite_path: file.db\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}
	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != 7070 || cfg.DB.Driver != "sqlite" || cfg.DB.SQLitePath != "file.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := LoadConfig(viper.New()); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestRedactedHidesSecrets(t *testing.T) {
	cfg := Config{}
	cfg.DB.Password = "hunter2"
	cfg.Redis.Password = "r"
	red := cfg.Redacted()
	if red.DB.Password != "[REDACTED]" || red.Redis.Password != "[REDACTED]" {
		t.Fatalf("secrets not redacted: %+v", red)
	}
	if cfg.DB.Password != "hunter2" {
		t.Fatal("Redacted mutated the receiver")
	}
}
