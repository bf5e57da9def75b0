package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// AppName names the config, data and cache subdirectories
const AppName = "vncards"

// Config represents the application configuration.
// Environment variables override values read from the config file.
type Config struct {
	AssetsDir         string `toml:"assets_dir" env:"VNCARDS_ASSETS_DIR"`
	MaxHands          int    `toml:"max_hands" env:"VNCARDS_MAX_HANDS"`
	InitialPriceLimit uint16 `toml:"initial_price_limit" env:"VNCARDS_INITIAL_PRICE_LIMIT"`
	LogLevel          string `toml:"log_level" env:"VNCARDS_LOG_LEVEL"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		AssetsDir:         GetAssetsPath(),
		MaxHands:          5,
		InitialPriceLimit: 30,
		LogLevel:          "info",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetAssetsPath returns the default path to the game assets
func GetAssetsPath() string {
	return filepath.Join(GetXDGDataHome(), AppName, "assets")
}

// GetCacheDir returns the directory for generated files such as ANSI art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), AppName)
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), AppName, "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first run,
// then applies environment overrides.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = Default()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetAssetsDir resolves the assets directory to use: an explicit path wins,
// then the configured one.
func GetAssetsDir(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("assets directory not found: %s", explicit)
		}
		return explicit, nil
	}

	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.AssetsDir, nil
}
