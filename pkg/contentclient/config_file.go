package contentclient

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/contentkit-io/contentkit/pkg/content"
)

// fileConfig is the on-disk shape of a client configuration.
type fileConfig struct {
	BaseURL   string            `yaml:"baseURL"`
	Timeout   string            `yaml:"timeout"`
	Headers   map[string]string `yaml:"headers"`
	UserAgent string            `yaml:"userAgent"`
	Debug     bool              `yaml:"debug"`
	Auth      *struct {
		Strategy string                 `yaml:"strategy"`
		Options  map[string]interface{} `yaml:"options"`
	} `yaml:"auth"`
}

// LoadConfigFile reads a YAML client configuration. Timeout is a duration
// string such as "10s".
func LoadConfigFile(path string) (*content.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config := &content.Config{
		BaseURL:   raw.BaseURL,
		Headers:   raw.Headers,
		UserAgent: raw.UserAgent,
		Debug:     raw.Debug,
	}

	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing timeout: %w", err)
		}

		config.Timeout = timeout
	}

	if raw.Auth != nil {
		config.Auth = &content.AuthConfig{
			Strategy: raw.Auth.Strategy,
			Options:  raw.Auth.Options,
		}
	}

	return config, nil
}

// NewFromFile creates a client from a YAML configuration file.
func NewFromFile(path string) (content.Client, error) {
	config, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}

	return New(config)
}
