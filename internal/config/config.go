// Package config provides configuration loading for the portfolio server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/scroll"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete server configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Log     LogConfig     `koanf:"log"`
	Content ContentConfig `koanf:"content"`
	Store   StoreConfig   `koanf:"store"`
	SMTP    SMTPConfig    `koanf:"smtp"`
	Admin   AdminConfig   `koanf:"admin"`
	Scroll  ScrollConfig  `koanf:"scroll"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Mode            string        `koanf:"mode"`
	StaticDir       string        `koanf:"static_dir"`
	ImagesDir       string        `koanf:"images_dir"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ContentConfig points at the content file; empty uses built-in content.
type ContentConfig struct {
	Path string `koanf:"path"`
}

// StoreConfig controls visitor tracking storage.
type StoreConfig struct {
	Path      string        `koanf:"path"`
	Retention time.Duration `koanf:"retention"`
}

// SMTPConfig controls contact form delivery.
type SMTPConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	User string `koanf:"user"`
	Pass Secret `koanf:"pass"`
	To   string `koanf:"to"`
}

// Configured reports whether credentials are present.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.Pass.IsSet()
}

// AdminConfig holds dashboard credentials.
type AdminConfig struct {
	Username string `koanf:"username"`
	Password Secret `koanf:"password"`
}

// ScrollConfig tunes the gallery's progress smoothing.
type ScrollConfig struct {
	Stiffness  float64 `koanf:"stiffness"`
	Damping    float64 `koanf:"damping"`
	Mass       float64 `koanf:"mass"`
	FPS        int     `koanf:"fps"`
	Breakpoint int     `koanf:"breakpoint"`
}

// Default returns a configuration holding only default values.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Spring returns the progress smoothing parameters.
func (s ScrollConfig) Spring() scroll.SpringConfig {
	return scroll.SpringConfig{
		Stiffness: s.Stiffness,
		Damping:   s.Damping,
		Mass:      s.Mass,
		FPS:       s.FPS,
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "./static"
	}
	if cfg.Server.ImagesDir == "" {
		cfg.Server.ImagesDir = "./images"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = "portfolio.db"
	}
	if cfg.Store.Retention == 0 {
		cfg.Store.Retention = 365 * 24 * time.Hour
	}

	if cfg.SMTP.Host == "" {
		cfg.SMTP.Host = "smtp.gmail.com"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}

	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}

	if cfg.Scroll.Stiffness == 0 {
		cfg.Scroll.Stiffness = 200
	}
	if cfg.Scroll.Damping == 0 {
		cfg.Scroll.Damping = 25
	}
	if cfg.Scroll.Mass == 0 {
		cfg.Scroll.Mass = 1
	}
	if cfg.Scroll.FPS == 0 {
		cfg.Scroll.FPS = 60
	}
	if cfg.Scroll.Breakpoint == 0 {
		cfg.Scroll.Breakpoint = 768
	}
}

// Validate checks the configuration for values the server cannot use.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalid, c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server.mode %q must be debug, release or test", ErrInvalid, c.Server.Mode)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q must be json or console", ErrInvalid, c.Log.Format)
	}
	if c.Store.Retention < 0 {
		return fmt.Errorf("%w: store.retention cannot be negative", ErrInvalid)
	}
	if c.SMTP.Port < 1 || c.SMTP.Port > 65535 {
		return fmt.Errorf("%w: smtp.port %d out of range", ErrInvalid, c.SMTP.Port)
	}
	if c.Scroll.Stiffness <= 0 || c.Scroll.Damping <= 0 || c.Scroll.Mass <= 0 {
		return fmt.Errorf("%w: scroll spring parameters must be positive", ErrInvalid)
	}
	if c.Scroll.FPS <= 0 || c.Scroll.FPS > 240 {
		return fmt.Errorf("%w: scroll.fps %d out of range", ErrInvalid, c.Scroll.FPS)
	}
	return nil
}

// Secret wraps strings that should be redacted in logs and serialization.
type Secret string

// String implements fmt.Stringer. Always returns the redacted value.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}

// GoString implements fmt.GoStringer for %#v formatting.
func (s Secret) GoString() string {
	return "Secret([REDACTED])"
}

// Value returns the actual secret value.
func (s Secret) Value() string {
	return string(s)
}

// IsSet returns true if the secret has a non-empty value.
func (s Secret) IsSet() bool {
	return s != ""
}

// MarshalJSON implements json.Marshaler. Always returns the redacted value.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
