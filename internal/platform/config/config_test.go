package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv deja las variables sin definir durante el test y las restaura al final.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, "PORT", "STORE_DRIVER", "SHUTDOWN_TIMEOUT")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDriver != DriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.StoreDriver)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Addr())
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoad_ReadsEnvFileWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "STORE_DRIVER=sqlite\nSQLITE_PATH=/tmp/events.db\nPORT=9000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv escribe en el entorno del proceso; clearEnv restaura al terminar
	clearEnv(t, "STORE_DRIVER", "SQLITE_PATH")
	t.Setenv("PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDriver != DriverSQLite || cfg.SQLitePath != "/tmp/events.db" {
		t.Fatalf("env file not applied: %+v", cfg)
	}
	if cfg.Port != "9100" {
		t.Fatalf("expected process env to win, got port %q", cfg.Port)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "unknown driver", env: map[string]string{"STORE_DRIVER": "etcd"}, want: "unknown STORE_DRIVER"},
		{name: "postgres without dsn", env: map[string]string{"STORE_DRIVER": "postgres", "DB_DSN": ""}, want: "DB_DSN"},
		{name: "bad redis db", env: map[string]string{"REDIS_DB": "zero"}, want: "parse env"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %v", tc.want, err)
			}
			if tc.want != "parse env" && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
