package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// ErrMissingCredentials is returned when any of the required Cloudflare
// settings is absent.
var ErrMissingCredentials = errors.New("missing credentials")

// DefaultTimeoutSec is the HTTP client timeout applied when none is
// configured.
const DefaultTimeoutSec = 10

// Config holds all configuration, constructed once at startup and
// passed into the API client; there is no ambient global state.
type Config struct {
	Email       string
	APIKey      string
	Domain      string
	APIBase     string // empty means the provider default
	HTTPTimeout time.Duration
	LogLevel    string
}

// Load loads configuration from environment variables. A .env file is
// read first when present (absence is not an error). If CFDNS_CONFIG
// points at an INI file, it supplies fallback values; precedence is
// ENV > INI > default, same scheme as the rest of our tooling.
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	var cfgFile *ini.File
	if path := os.Getenv("CFDNS_CONFIG"); path != "" {
		f, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load INI file: %w", err)
		}
		cfgFile = f
	}

	getValue := func(envKey, iniSection, iniKey, defaultValue string) string {
		if value := os.Getenv(envKey); value != "" {
			return value
		}
		if cfgFile != nil {
			if value := cfgFile.Section(iniSection).Key(iniKey).String(); value != "" {
				return value
			}
		}
		return defaultValue
	}

	getValueInt := func(envKey, iniSection, iniKey string, defaultValue int) int {
		if value := os.Getenv(envKey); value != "" {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		if cfgFile != nil && cfgFile.Section(iniSection).HasKey(iniKey) {
			if value, err := cfgFile.Section(iniSection).Key(iniKey).Int(); err == nil {
				return value
			}
		}
		return defaultValue
	}

	cfg := &Config{
		Email:       getValue("CF_EMAIL", "cloudflare", "email", ""),
		APIKey:      getValue("CF_API_KEY", "cloudflare", "api_key", ""),
		Domain:      getValue("CF_DOMAIN", "cloudflare", "domain", ""),
		APIBase:     getValue("CF_API_BASE", "http", "api_base", ""),
		HTTPTimeout: time.Duration(getValueInt("CF_HTTP_TIMEOUT_SEC", "http", "timeout_sec", DefaultTimeoutSec)) * time.Second,
		LogLevel:    getValue("LOG_LEVEL", "log", "level", "warning"),
	}

	var missing []string
	if cfg.Email == "" {
		missing = append(missing, "CF_EMAIL")
	}
	if cfg.APIKey == "" {
		missing = append(missing, "CF_API_KEY")
	}
	if cfg.Domain == "" {
		missing = append(missing, "CF_DOMAIN")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s must be set in the environment or .env file", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return cfg, nil
}
