package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	writeFile(t, configPath, `
server:
  port: 4444
database:
  dsn: "test.db"
storage:
  provider: local
  base_path: "./blobs"
openai:
  api_key: "sk-test"
  completion_model: "gpt-4"
`)

	var cfg Config
	if err := Load(&cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 4444 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Database.DSN != "test.db" {
		t.Errorf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.OpenAI.CompletionModel != "gpt-4" {
		t.Errorf("completion model = %q", cfg.OpenAI.CompletionModel)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("UPLOADAI_OPENAI_API_KEY", "sk-env")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	writeFile(t, configPath, "server:\n  host: \"127.0.0.1\"\n")

	var cfg Config
	if err := Load(&cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 3333 {
		t.Errorf("default port = %d", cfg.Server.Port)
	}
	if cfg.Server.MaxBodySize != "26MB" {
		t.Errorf("default max body size = %q", cfg.Server.MaxBodySize)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("default driver = %q", cfg.Database.Driver)
	}
	if cfg.Storage.Provider == "" {
		t.Error("expected a default storage provider")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("UPLOADAI_OPENAI_API_KEY", "sk-from-env")
	t.Setenv("UPLOADAI_SERVER_PORT", "5555")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	writeFile(t, configPath, `
server:
  port: 4444
openai:
  api_key: "sk-from-file"
`)

	var cfg Config
	if err := Load(&cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 5555 {
		t.Errorf("port = %d, want env override", cfg.Server.Port)
	}
	if cfg.OpenAI.APIKey != "sk-from-env" {
		t.Errorf("api key = %q, want env override", cfg.OpenAI.APIKey)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	writeFile(t, envPath, "UPLOADAI_OPENAI_API_KEY=sk-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("UPLOADAI_OPENAI_API_KEY") })

	var cfg Config
	if err := Load(&cfg, WithEnvFile(envPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-dotenv" {
		t.Errorf("api key = %q, want value from .env", cfg.OpenAI.APIKey)
	}
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	var cfg Config
	err := Load(&cfg, WithConfigFile(filepath.Join(t.TempDir(), "absent.yml")))
	if err == nil {
		t.Fatal("expected validation error without an api key")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("UPLOADAI_OPENAI_API_KEY", "sk-test")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	writeFile(t, configPath, "server:\n  port: 99999\n")

	var cfg Config
	if err := Load(&cfg, WithConfigFile(configPath)); err == nil {
		t.Fatal("expected validation error for out-of-range port")
	}
}
