package internal

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the configuration surface of the ingestor. It is loaded once in
// main and passed in explicitly; nothing below main reads the environment.
type Config struct {
	InputPath   string `envconfig:"LOG_FILE_PATH" default:"/data/logs/logs.txt"`
	WorkerCount int    `envconfig:"WORKER_COUNT" default:"4"`
	OutputPath  string `envconfig:"OUTPUT_FILE_PATH" default:""`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}
	return &cfg, nil
}
