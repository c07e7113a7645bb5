package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ClientConfig drives the daemonctl command layer. The core transport
// takes no configuration beyond what is passed per call.
type ClientConfig struct {
	Socket    string `toml:"socket"`
	ChunkSize int    `toml:"chunk_size"`
	Timeout   string `toml:"timeout"`
}

func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout: "30s",
	}
}

func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()
	if err := loadToml(path, &cfg); err != nil {
		return ClientConfig{}, err
	}
	if cfg.Timeout == "" {
		cfg.Timeout = DefaultClientConfig().Timeout
	}
	if err := ValidateClientConfig(cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateClientConfig(cfg ClientConfig) error {
	if strings.TrimSpace(cfg.Socket) == "" {
		return fmt.Errorf("client config missing socket path")
	}
	if cfg.ChunkSize < 0 {
		return fmt.Errorf("client config chunk_size must not be negative")
	}
	if _, err := time.ParseDuration(cfg.Timeout); err != nil {
		return fmt.Errorf("client config timeout invalid: %w", err)
	}
	return nil
}

// TimeoutDuration parses the configured timeout. Call after validation.
func (c ClientConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}
