package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when no
// explicit path is given.
const DefaultPath = "ajudaja.yaml"

// IBGEConfig points the geo lookup client at the IBGE localidades API.
type IBGEConfig struct {
	BaseURL string        `yaml:"baseURL" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout"`
}

// HTTPConfig tunes the shared HTTP client.
type HTTPConfig struct {
	ProxyURL   string        `yaml:"proxyURL,omitempty" validate:"omitempty,url"`
	MaxRetries int           `yaml:"maxRetries" validate:"gte=1,lte=10"`
	MinDelay   time.Duration `yaml:"minDelay"`
	MaxDelay   time.Duration `yaml:"maxDelay"`
	Backoff    time.Duration `yaml:"backoff"`
}

// CacheConfig enables the Redis cache in front of geo lookups when RedisURL is set.
type CacheConfig struct {
	RedisURL string        `yaml:"redisURL,omitempty" validate:"omitempty,url"`
	TTL      time.Duration `yaml:"ttl"`
}

// SubmitConfig controls the simulated form submission.
type SubmitConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// TelegramConfig holds the bot used by "list --telegram".
type TelegramConfig struct {
	Token  string `yaml:"token,omitempty"`
	ChatID string `yaml:"chatID,omitempty"`
}

// DiscordConfig holds the webhook used by "list --discord".
type DiscordConfig struct {
	WebhookURL string `yaml:"webhookURL,omitempty" validate:"omitempty,url"`
}

// Config represents the application configuration
type Config struct {
	IBGE     IBGEConfig     `yaml:"ibge"`
	HTTP     HTTPConfig     `yaml:"http"`
	Cache    CacheConfig    `yaml:"cache"`
	Submit   SubmitConfig   `yaml:"submit"`
	Theme    string         `yaml:"theme" validate:"oneof=light dark"`
	Log      LogConfig      `yaml:"log"`
	Telegram TelegramConfig `yaml:"telegram"`
	Discord  DiscordConfig  `yaml:"discord"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		IBGE: IBGEConfig{
			BaseURL: "https://servicodados.ibge.gov.br/api/v1/localidades",
		},
		HTTP: HTTPConfig{
			MaxRetries: 3,
			Backoff:    2 * time.Second,
		},
		Cache: CacheConfig{
			TTL: 24 * time.Hour,
		},
		Submit: SubmitConfig{
			Delay: 1500 * time.Millisecond,
		},
		Theme: "light",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment, in that order of precedence (environment wins).
// An empty path reads DefaultPath if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints and the relations between delays.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}

	for name, d := range map[string]time.Duration{
		"ibge.timeout":  cfg.IBGE.Timeout,
		"http.minDelay": cfg.HTTP.MinDelay,
		"http.maxDelay": cfg.HTTP.MaxDelay,
		"http.backoff":  cfg.HTTP.Backoff,
		"cache.ttl":     cfg.Cache.TTL,
		"submit.delay":  cfg.Submit.Delay,
	} {
		if d < 0 {
			return fmt.Errorf("config: %s must not be negative", name)
		}
	}
	if cfg.HTTP.MaxDelay < cfg.HTTP.MinDelay {
		return fmt.Errorf("config: http.maxDelay (%v) is lower than http.minDelay (%v)", cfg.HTTP.MaxDelay, cfg.HTTP.MinDelay)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("AJUDAJA_IBGE_BASE_URL", &cfg.IBGE.BaseURL)
	setString("AJUDAJA_THEME", &cfg.Theme)
	setString("AJUDAJA_LOG_LEVEL", &cfg.Log.Level)
	setString("AJUDAJA_LOG_FILE", &cfg.Log.File)
	setString("REDIS_URL", &cfg.Cache.RedisURL)
	setString("TELEGRAM_TOKEN", &cfg.Telegram.Token)
	setString("TELEGRAM_CHAT_ID", &cfg.Telegram.ChatID)
	setString("DISCORD_WEBHOOK_URL", &cfg.Discord.WebhookURL)

	if v := os.Getenv("AJUDAJA_SUBMIT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: AJUDAJA_SUBMIT_DELAY: %w", err)
		}
		cfg.Submit.Delay = d
	}
	return nil
}

// LoadEnv sets variables from a KEY=VALUE file without overriding ones
// already present in the environment. A missing file is not an error.
func LoadEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if os.Getenv(key) == "" {
			os.Setenv(key, val)
		}
	}
}
