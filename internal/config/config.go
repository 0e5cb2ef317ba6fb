package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultServerURL = "http://localhost:8080"
	defaultTimeout   = 10 * time.Second
)

type Config struct {
	ServerURL string `json:"server_url"`

	// Timeout bounds every API request. Not persisted; set from
	// CORKBOARD_TIMEOUT or the default.
	Timeout time.Duration `json:"-"`
}

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	boardDir := filepath.Join(configDir, "corkboard")
	if err := os.MkdirAll(boardDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(boardDir, "config.json"), nil
}

// Load reads the saved config and applies environment overrides. It returns
// (nil, nil) when no config file exists yet, which the TUI uses to drive
// first-time setup.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // not initialized
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return &cfg, nil
}

// Default returns a config without touching the saved file, for commands
// that should work before setup has run.
func Default() *Config {
	cfg := &Config{ServerURL: DefaultServerURL}
	cfg.applyEnv()
	return cfg
}

func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (cfg *Config) applyEnv() {
	_ = godotenv.Load() // a .env in the working directory is optional

	if v := os.Getenv("CORKBOARD_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}

	cfg.Timeout = defaultTimeout
	if v := os.Getenv("CORKBOARD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
}
