package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"caresam-backend/internal/chat"
	"caresam-backend/internal/database"

	"github.com/caarlos0/env/v11"
)

type DBConfig struct {
	Driver          string        `env:"DATABASE_DRIVER" envDefault:"mysql"`
	URL             string        `env:"DATABASE_URL,notEmpty,required"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

func (c DBConfig) Options() database.Options {
	return database.Options{
		Driver:          c.Driver,
		DSN:             c.URL,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
	}
}

type CompletionConfig struct {
	APIKey      string        `env:"OPENAI_API_KEY,notEmpty,required"`
	BaseURL     string        `env:"OPENAI_BASE_URL"`
	Provider    string        `env:"LLM_PROVIDER" envDefault:"openai"`
	Model       string        `env:"COMPLETION_MODEL" envDefault:"gpt-4-turbo-preview"`
	MaxTokens   int           `env:"COMPLETION_MAX_TOKENS" envDefault:"4096"`
	Temperature float64       `env:"COMPLETION_TEMPERATURE" envDefault:"1.0"`
	Timeout     time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"60s"`
}

func (c CompletionConfig) Options() chat.Options {
	return chat.Options{
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		Timeout:     c.Timeout,
	}
}

type Config struct {
	DB         DBConfig
	Completion CompletionConfig

	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	APIPort        string        `env:"API_PORT" envDefault:"8000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"90s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

// LoadDB parses only the database settings, for tools that never call the
// completion API.
func LoadDB() (DBConfig, error) {
	var cfg DBConfig
	if err := env.Parse(&cfg); err != nil {
		return DBConfig{}, fmt.Errorf("error parsing database config: %w", err)
	}
	return cfg, nil
}

func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s'", level)
	}
}
