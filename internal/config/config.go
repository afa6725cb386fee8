package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingAPIKey  = errors.New("missing ETHERSCAN_API_KEY")
	ErrMissingAddress = errors.New("missing ETH_ADDRESS")
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Etherscan EtherscanConfig `yaml:"etherscan"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// EtherscanConfig holds the explorer credentials and the account being served
type EtherscanConfig struct {
	APIKey  string        `yaml:"api_key"`
	Address string        `yaml:"address"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig represents the logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 3000,
			Host: "127.0.0.1",
		},
		Etherscan: EtherscanConfig{
			BaseURL: "https://api.etherscan.io/v2/api",
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, an optional .env file and
// environment variables, then validates it
func Load(path string) (*Config, error) {
	cfg := Default()

	// Load from YAML file if it exists
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// .env is optional and never overrides the real environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Override with environment variables
	cfg.loadEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the required settings are present
func (c *Config) Validate() error {
	if c.Etherscan.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Etherscan.Address == "" {
		return ErrMissingAddress
	}
	return nil
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) loadEnv() {
	// Server config
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}

	// Etherscan config
	if apiKey := os.Getenv("ETHERSCAN_API_KEY"); apiKey != "" {
		c.Etherscan.APIKey = apiKey
	}
	if address := os.Getenv("ETH_ADDRESS"); address != "" {
		c.Etherscan.Address = address
	}
	if baseURL := os.Getenv("ETHERSCAN_BASE_URL"); baseURL != "" {
		c.Etherscan.BaseURL = baseURL
	}
	if timeout := os.Getenv("ETHERSCAN_TIMEOUT_SECONDS"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil && t > 0 {
			c.Etherscan.Timeout = time.Duration(t) * time.Second
		}
	}

	// Log config
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}
