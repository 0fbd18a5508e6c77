package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/freightdesk/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "30s"
write_timeout = "3m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "freightdesk"
user = "freightdesk"
password = "freightdesk"
ssl_mode = "disable"

[storage]
container_name = "emails"

[api]
base_path = "/api"
max_body_size = "512KB"

[api.pagination]
default_limit = 25
max_limit = 50

[gateway]
default_provider = "anthropic"
timeout = "45s"

[gateway.anthropic]
model = "claude-3-haiku-20240307"
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"

[gateway]
default_provider = "openai"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func loadBase(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return cfg
}

func TestLoad(t *testing.T) {
	cfg := loadBase(t)

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("db host: got %s, want localhost", cfg.Database.Host)
	}
	if cfg.Storage.Enabled() {
		t.Error("storage should be disabled without a connection string")
	}
	if cfg.API.Pagination.DefaultLimit != 25 || cfg.API.Pagination.MaxLimit != 50 {
		t.Errorf("pagination: got %+v", cfg.API.Pagination)
	}
	if cfg.Gateway.DefaultProvider != "anthropic" {
		t.Errorf("default provider: got %s", cfg.Gateway.DefaultProvider)
	}
	if cfg.Gateway.Anthropic.Model != "claude-3-haiku-20240307" {
		t.Errorf("anthropic model: got %s", cfg.Gateway.Anthropic.Model)
	}
	if cfg.Gateway.TimeoutDuration() != 45*time.Second {
		t.Errorf("gateway timeout: got %v", cfg.Gateway.TimeoutDuration())
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)

	t.Setenv("FREIGHTDESK_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("db host: got %s, want prodhost (from overlay)", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("db port: got %d, want 5432 (from base)", cfg.Database.Port)
	}
	if cfg.Gateway.DefaultProvider != "openai" {
		t.Errorf("default provider: got %s, want openai (from overlay)", cfg.Gateway.DefaultProvider)
	}
	if cfg.Gateway.Anthropic.Model != "claude-3-haiku-20240307" {
		t.Errorf("anthropic model should survive overlay, got %s", cfg.Gateway.Anthropic.Model)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("FREIGHTDESK_VERSION", "2.0.0")
	t.Setenv("FREIGHTDESK_SERVER_PORT", "3000")
	t.Setenv("FREIGHTDESK_PAGINATION_DEFAULT_LIMIT", "10")
	t.Setenv("FREIGHTDESK_PAGINATION_MAX_LIMIT", "200")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.API.Pagination.DefaultLimit != 10 || cfg.API.Pagination.MaxLimit != 200 {
		t.Errorf("pagination: got %+v", cfg.API.Pagination)
	}
}

func TestGatewayEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("DEFAULT_PROVIDER", "openrouter")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("OPENROUTER_MODEL", "openai/gpt-4o")
	t.Setenv("FREIGHTDESK_GATEWAY_TIMEOUT", "10s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Gateway.DefaultProvider != "openrouter" {
		t.Errorf("default provider: got %s", cfg.Gateway.DefaultProvider)
	}
	if cfg.Gateway.OpenRouter.APIKey != "sk-or-test" || cfg.Gateway.OpenRouter.Model != "openai/gpt-4o" {
		t.Errorf("openrouter: got %+v", cfg.Gateway.OpenRouter)
	}
	if cfg.Gateway.TimeoutDuration() != 10*time.Second {
		t.Errorf("timeout: got %v", cfg.Gateway.TimeoutDuration())
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("FREIGHTDESK_DB_NAME", "testdb")
	t.Setenv("FREIGHTDESK_STORAGE_CONNECTION_STRING", "conn")
	t.Setenv("DEFAULT_PROVIDER", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "testdb" {
		t.Errorf("db name from env: got %s, want testdb", cfg.Database.Name)
	}
	if !cfg.Storage.Enabled() {
		t.Error("storage should be enabled by the env connection string")
	}
	if cfg.API.Pagination.DefaultLimit != 50 || cfg.API.Pagination.MaxLimit != 100 {
		t.Errorf("pagination defaults: got %+v", cfg.API.Pagination)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("base path default: got %s", cfg.API.BasePath)
	}
	if cfg.Gateway.DefaultProvider != "openrouter" {
		t.Errorf("default provider: got %s, want openrouter", cfg.Gateway.DefaultProvider)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `server = [`)
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestEnv(t *testing.T) {
	cfg := loadBase(t)
	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}

	t.Setenv("FREIGHTDESK_ENV", "production")
	if cfg.Env() != "production" {
		t.Errorf("env: got %s, want production", cfg.Env())
	}
}

func TestDurationsAndAddr(t *testing.T) {
	cfg := loadBase(t)

	if d := cfg.ShutdownTimeoutDuration(); d != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", d)
	}
	if d := cfg.Server.WriteTimeoutDuration(); d != 3*time.Minute {
		t.Errorf("write timeout: got %v, want 3m", d)
	}
	if addr := cfg.Server.Addr(); addr != "0.0.0.0:8080" {
		t.Errorf("addr: got %s, want 0.0.0.0:8080", addr)
	}
}

func TestMaxBodySizeBytes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"valid 1MB", "1MB", 1024 * 1024},
		{"valid 512KB", "512KB", 512 * 1024},
		{"bare bytes", "2048", 2048},
		{"invalid falls back to 1MB", "bad", 1024 * 1024},
		{"empty falls back to 1MB", "", 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.APIConfig{MaxBodySize: tt.size}
			if got := cfg.MaxBodySizeBytes(); got != tt.want {
				t.Errorf("MaxBodySizeBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxBodySizeEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("FREIGHTDESK_API_MAX_BODY_SIZE", "2MB")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := cfg.API.MaxBodySizeBytes(); got != 2*1024*1024 {
		t.Errorf("MaxBodySizeBytes() = %d, want %d", got, 2*1024*1024)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{"invalid port", "[server]\nport = 99999\n", "invalid port"},
		{"invalid read_timeout", "[server]\nread_timeout = \"bad\"\n", "invalid read_timeout"},
		{"invalid shutdown_timeout", "shutdown_timeout = \"soon\"\n", "invalid shutdown_timeout"},
		{"limit above max", "[api.pagination]\ndefault_limit = 200\nmax_limit = 100\n", "default_limit cannot exceed max_limit"},
		{"unknown provider", "[gateway]\ndefault_provider = \"cohere\"\n", "invalid default_provider"},
		{"write timeout below model budget", "[server]\nwrite_timeout = \"90s\"\n[gateway]\ntimeout = \"60s\"\n", "shorter than a submission's model budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "config.toml", tt.config)
			chdir(t, dir)
			t.Setenv("DEFAULT_PROVIDER", "")

			_, err := config.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
