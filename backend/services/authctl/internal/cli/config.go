package cli

import (
	"time"

	libconfig "hackathon/backend/libs/config"
	"hackathon/backend/libs/httpclient"
)

// Config holds authctl settings loaded from YAML/env; flags override it.
type Config struct {
	Client struct {
		BaseURL string        `yaml:"baseUrl" env:"AUTHCTL_BASE_URL"`
		Timeout time.Duration `yaml:"timeout" env:"AUTHCTL_TIMEOUT"`
	} `yaml:"client"`
	Log struct {
		Level string `yaml:"level" env:"AUTHCTL_LOG_LEVEL"`
	} `yaml:"log"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Client.BaseURL = httpclient.DefaultBaseURL
	cfg.Client.Timeout = httpclient.DefaultTimeout
	cfg.Log.Level = "warn"

	if path == "" {
		if err := libconfig.Load(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err := libconfig.LoadFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
