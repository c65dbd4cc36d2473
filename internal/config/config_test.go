package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for name := range legacyEnv {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "portfolio.db", cfg.Store.Path)
	assert.Equal(t, 365*24*time.Hour, cfg.Store.Retention)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Configured())
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 200.0, cfg.Scroll.Stiffness)
	assert.Equal(t, 25.0, cfg.Scroll.Damping)
	assert.Equal(t, 60, cfg.Scroll.FPS)
	assert.Equal(t, 768, cfg.Scroll.Breakpoint)
	assert.Equal(t, ":8080", cfg.Server.Addr())
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9000
  shutdown_timeout: 3s
log:
  format: console
smtp:
  user: me@example.com
scroll:
  stiffness: 150
`)

	t.Setenv("PORT", "7000")
	t.Setenv("SMTP_PASS", "app-password")
	t.Setenv("PORTFOLIO_SERVER_PORT", "7500")
	t.Setenv("PORTFOLIO_SCROLL_FPS", "120")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7500, cfg.Server.Port, "prefixed env beats legacy env and file")
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 150.0, cfg.Scroll.Stiffness)
	assert.Equal(t, 120, cfg.Scroll.FPS)
	assert.Equal(t, "app-password", cfg.SMTP.Pass.Value())
	assert.True(t, cfg.SMTP.Configured())
}

func TestLoadLegacyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("ADMIN_USERNAME", "zach")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("TO_EMAIL", "inbox@example.com")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "zach", cfg.Admin.Username)
	assert.Equal(t, "hunter2", cfg.Admin.Password.Value())
	assert.Equal(t, "inbox@example.com", cfg.SMTP.To)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(t.TempDir())
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [broken"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server:\n  port: 70000\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		var c Config
		applyDefaults(&c)
		return c
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"negative retention", func(c *Config) { c.Store.Retention = -time.Hour }},
		{"bad smtp port", func(c *Config) { c.SMTP.Port = -1 }},
		{"negative damping", func(c *Config) { c.Scroll.Damping = -1 }},
		{"fps too high", func(c *Config) { c.Scroll.FPS = 1000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}

	c := valid()
	assert.NoError(t, c.Validate())
}

func TestSecretRedaction(t *testing.T) {
	s := Secret("hunter2")
	assert.Equal(t, "[REDACTED]", s.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", s))
	assert.Equal(t, "Secret([REDACTED])", fmt.Sprintf("%#v", s))
	assert.Equal(t, "hunter2", s.Value())

	b, err := json.Marshal(AdminConfig{Username: "a", Password: s})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hunter2")

	assert.Equal(t, "", Secret("").String())
	assert.False(t, Secret("").IsSet())
}

func TestDefaultSpring(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	spring := cfg.Scroll.Spring()
	assert.Equal(t, 200.0, spring.Stiffness)
	assert.Equal(t, 25.0, spring.Damping)
	assert.Equal(t, 1.0, spring.Mass)
	assert.Equal(t, 60, spring.FPS)
	assert.InDelta(t, 0.8839, spring.DampingRatio(), 1e-4)
}
