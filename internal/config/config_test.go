package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearCloudflareEnv blanks every setting for the duration of one test;
// t.Setenv restores the originals afterwards. Load treats empty values
// as unset.
func clearCloudflareEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CF_EMAIL", "CF_API_KEY", "CF_DOMAIN", "CF_API_BASE", "CF_HTTP_TIMEOUT_SEC", "CFDNS_CONFIG", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	clearCloudflareEnv(t)
	t.Setenv("CF_EMAIL", "admin@example.com")
	t.Setenv("CF_API_KEY", "secret-key")
	t.Setenv("CF_DOMAIN", "example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Email != "admin@example.com" {
		t.Errorf("Expected email admin@example.com, got %s", cfg.Email)
	}
	if cfg.Domain != "example.com" {
		t.Errorf("Expected domain example.com, got %s", cfg.Domain)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("Expected default timeout 10s, got %s", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "warning" {
		t.Errorf("Expected default log level warning, got %s", cfg.LogLevel)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	clearCloudflareEnv(t)
	t.Setenv("CF_EMAIL", "admin@example.com")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error when CF_API_KEY and CF_DOMAIN are missing")
	}
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Expected ErrMissingCredentials, got %v", err)
	}
	if !strings.Contains(err.Error(), "CF_API_KEY") || !strings.Contains(err.Error(), "CF_DOMAIN") {
		t.Errorf("Error should name the missing variables, got %v", err)
	}
}

func TestLoad_INIFallback(t *testing.T) {
	clearCloudflareEnv(t)

	iniPath := filepath.Join(t.TempDir(), "cfdns.ini")
	content := `[cloudflare]
email = ini@example.com
api_key = ini-key
domain = ini.example.com

[http]
timeout_sec = 30
`
	if err := os.WriteFile(iniPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write INI file: %v", err)
	}
	t.Setenv("CFDNS_CONFIG", iniPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Email != "ini@example.com" {
		t.Errorf("Expected email from INI, got %s", cfg.Email)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("Expected timeout 30s from INI, got %s", cfg.HTTPTimeout)
	}
}

func TestLoad_EnvOverridesINI(t *testing.T) {
	clearCloudflareEnv(t)

	iniPath := filepath.Join(t.TempDir(), "cfdns.ini")
	content := `[cloudflare]
email = ini@example.com
api_key = ini-key
domain = ini.example.com
`
	if err := os.WriteFile(iniPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write INI file: %v", err)
	}
	t.Setenv("CFDNS_CONFIG", iniPath)
	t.Setenv("CF_EMAIL", "env@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Email != "env@example.com" {
		t.Errorf("Environment should override INI, got %s", cfg.Email)
	}
	if cfg.APIKey != "ini-key" {
		t.Errorf("Expected api_key from INI, got %s", cfg.APIKey)
	}
}
