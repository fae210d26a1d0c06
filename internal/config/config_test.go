package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestLoad_FromFile(t *testing.T) {
	path := writeFile(t, "ajudaja.yaml", `
ibge:
  baseURL: http://localhost:8080/api
  timeout: 5s
http:
  maxRetries: 2
  minDelay: 100ms
  maxDelay: 200ms
cache:
  redisURL: redis://localhost:6379
  ttl: 1h
submit:
  delay: 10ms
theme: dark
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.IBGE.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.IBGE.Timeout)
	assert.Equal(t, 2, cfg.HTTP.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.HTTP.MaxDelay)
	assert.Equal(t, 2*time.Second, cfg.HTTP.Backoff, "unset keys keep defaults")
	assert.Equal(t, "redis://localhost:6379", cfg.Cache.RedisURL)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 10*time.Millisecond, cfg.Submit.Delay)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: reading")
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().IBGE.BaseURL, cfg.IBGE.BaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Submit.Delay)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "ajudaja.yaml", "theme: light\n")
	t.Setenv("AJUDAJA_THEME", "dark")
	t.Setenv("AJUDAJA_SUBMIT_DELAY", "250ms")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 250*time.Millisecond, cfg.Submit.Delay)
	assert.Equal(t, "redis://cache:6379/1", cfg.Cache.RedisURL)
}

func TestLoad_InvalidEnvDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AJUDAJA_SUBMIT_DELAY", "soon")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AJUDAJA_SUBMIT_DELAY")
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad theme", func(c *Config) { c.Theme = "sepia" }, "validation failed"},
		{"missing base url", func(c *Config) { c.IBGE.BaseURL = "" }, "validation failed"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "validation failed"},
		{"zero retries", func(c *Config) { c.HTTP.MaxRetries = 0 }, "validation failed"},
		{"negative delay", func(c *Config) { c.Submit.Delay = -time.Second }, "submit.delay"},
		{"inverted delays", func(c *Config) { c.HTTP.MinDelay = time.Second }, "http.maxDelay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, ".env", "# comment\nAJUDAJA_TEST_A = one\nAJUDAJA_TEST_B=two\nnot-a-pair\n")
	t.Setenv("AJUDAJA_TEST_A", "")
	t.Setenv("AJUDAJA_TEST_B", "preset")

	LoadEnv(path)

	assert.Equal(t, "one", os.Getenv("AJUDAJA_TEST_A"))
	assert.Equal(t, "preset", os.Getenv("AJUDAJA_TEST_B"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
}
