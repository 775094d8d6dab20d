package global

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type GlobalConfig struct {
	BaseURL        string
	GatherCooldown time.Duration
	RequestTimeout time.Duration
	Debug          bool
}

// Values that can be overridden from the environment
type envConfig struct {
	BaseURL        string        `env:"POKEDEX_BASE_URL"`
	GatherCooldown time.Duration `env:"POKEDEX_GATHER_COOLDOWN"`
	RequestTimeout time.Duration `env:"POKEDEX_REQUEST_TIMEOUT"`
	Debug          bool          `env:"POKEDEX_DEBUG"`
}

const (
	DefaultBaseURL        = "http://localhost:3000/api"
	DefaultGatherCooldown = 60 * time.Minute
	DefaultRequestTimeout = 10 * time.Second
)

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "pokedex")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

func SaveConfig(path string, config GlobalConfig) error {
	jsonString, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	return os.WriteFile(path, jsonString, 0644)
}

// Reads the config file at path, writing defaults there if it's missing or empty
func LoadConfig(path string) (GlobalConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return populateConfig(GlobalConfig{}), err
	}

	if len(contents) == 0 {
		config := populateConfig(GlobalConfig{})
		return config, SaveConfig(path, config)
	}

	config := GlobalConfig{}
	if err := json.Unmarshal(contents, &config); err != nil {
		return populateConfig(GlobalConfig{}), err
	}

	return populateConfig(config), nil
}

// Environment variables win over the config file
func ApplyEnv(config GlobalConfig) (GlobalConfig, error) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return config, err
	}

	if e.BaseURL != "" {
		config.BaseURL = e.BaseURL
	}
	if e.GatherCooldown > 0 {
		config.GatherCooldown = e.GatherCooldown
	}
	if e.RequestTimeout > 0 {
		config.RequestTimeout = e.RequestTimeout
	}
	config.Debug = config.Debug || e.Debug

	return config, nil
}

func populateConfig(config GlobalConfig) GlobalConfig {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.GatherCooldown <= 0 {
		config.GatherCooldown = DefaultGatherCooldown
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}

	return config
}
