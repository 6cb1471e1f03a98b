package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string        `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string        `envconfig:"DATABASE_URL" default:"sqlite:///./activities.db"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:"static"`
	ResetDB         bool          `envconfig:"RESET_DB" default:"false"`
	Debug           bool          `envconfig:"DEBUG" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	SwaggerHost     string        `envconfig:"SWAGGER_HOST"`
	Log             Log           `envconfig:"LOG"`
}

// Log configures the process logger. Keys are read with the LOG_ prefix.
type Log struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	File       string `envconfig:"FILE"`
	MaxSizeMB  int    `envconfig:"MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"MAX_BACKUPS" default:"3"`
	MaxAgeDays int    `envconfig:"MAX_AGE_DAYS" default:"28"`
}

// Load builds Config from environment with sensible defaults. A .env file in the
// working directory is read first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
