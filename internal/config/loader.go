package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	maxConfigFileSize = 1024 * 1024 // 1MB

	// EnvPrefix namespaces environment overrides: PORTFOLIO_SERVER_PORT -> server.port.
	EnvPrefix = "PORTFOLIO_"
)

// legacyEnv maps the bare variable names the site has always read to their
// config keys. Prefixed variables take precedence over these.
var legacyEnv = map[string]string{
	"PORT":           "server.port",
	"GIN_MODE":       "server.mode",
	"SMTP_HOST":      "smtp.host",
	"SMTP_PORT":      "smtp.port",
	"SMTP_USER":      "smtp.user",
	"SMTP_PASS":      "smtp.pass",
	"TO_EMAIL":       "smtp.to",
	"ADMIN_USERNAME": "admin.username",
	"ADMIN_PASSWORD": "admin.password",
}

// Load reads configuration.
//
// Precedence (highest to lowest):
//  1. PORTFOLIO_ prefixed environment variables (PORTFOLIO_SMTP_HOST -> smtp.host)
//  2. Bare legacy variables (PORT, SMTP_HOST, ADMIN_PASSWORD, ...)
//  3. The YAML file at path, when path is not empty
//  4. Hardcoded defaults
//
// A .env file is expected to have been loaded into the environment already.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return legacyEnv[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load legacy environment: %w", err)
	}

	// Split on the first underscore only so field names keep theirs:
	// PORTFOLIO_SERVER_SHUTDOWN_TIMEOUT -> server.shutdown_timeout
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		section, field, ok := strings.Cut(lower, "_")
		if !ok {
			return lower
		}
		return section + "." + field
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}
