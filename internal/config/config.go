package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration, populated from environment
// variables.
type Config struct {
	Telegram TelegramConfig
	Gemini   GeminiConfig
	Database DatabaseConfig
	Voice    VoiceConfig
	Log      LogConfig
}

// TelegramConfig holds bot transport settings.
type TelegramConfig struct {
	Token       string `env:"BOT_TOKEN" env-required:"true"`
	PollTimeout int    `env:"BOT_POLL_TIMEOUT" env-default:"30"`
}

// GeminiConfig holds settings for the extraction model. The API key itself is
// read by the genai client from its own environment variable.
type GeminiConfig struct {
	Model          string        `env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
	Timeout        time.Duration `env:"GEMINI_TIMEOUT" env-default:"30s"`
	CountryTimeout time.Duration `env:"GEMINI_COUNTRY_TIMEOUT" env-default:"15s"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `env:"SQLITE_DB_PATH" env-default:"smart_expense_bot.db"`
}

// VoiceConfig holds the speech-to-text endpoint settings. An empty URL
// disables transcription: voice messages then get the "not available" reply.
type VoiceConfig struct {
	TranscriberURL string        `env:"TRANSCRIBER_URL" env-default:""`
	Timeout        time.Duration `env:"TRANSCRIBER_TIMEOUT" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that cleanenv tags cannot express.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("config: BOT_TOKEN is required")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("config: GEMINI_TIMEOUT must be positive")
	}
	if c.Gemini.CountryTimeout <= 0 {
		return fmt.Errorf("config: GEMINI_COUNTRY_TIMEOUT must be positive")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("config: SQLITE_DB_PATH is required")
	}
	return nil
}
