package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config represents the application configuration
type Config struct {
	DefaultDeck   string `toml:"default_deck" env:"PLANESWALKER_DEFAULT_DECK"`
	DefaultFormat string `toml:"default_format" env:"PLANESWALKER_DEFAULT_FORMAT"`
	NoColor       bool   `toml:"no_color"`
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

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "planeswalker", "decks")
}

// GetFormatLibraryPath returns the directory holding format files
func GetFormatLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "planeswalker", "formats")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "planeswalker", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults when missing.
// Environment variables override values from the file.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = &Config{}
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		DefaultDeck:   "starter",
		DefaultFormat: "standard",
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := defaultConfig()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
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

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDeckPath returns the path to a deck, either in the deck library or a relative path
func GetDeckPath(deckName string) (string, error) {
	deckPath := filepath.Join(GetDeckLibraryPath(), deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// GetFormatPath resolves a format name to a file. The format library is
// searched first (name.toml, name.yaml, name.yml), then name is tried as a
// path relative to baseDir and finally as given.
func GetFormatPath(formatName, baseDir string) (string, error) {
	libraryPath := GetFormatLibraryPath()
	for _, ext := range decodableExtensions {
		candidate := filepath.Join(libraryPath, formatName+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	candidates := []string{formatName}
	if baseDir != "" && !filepath.IsAbs(formatName) {
		candidates = append([]string{filepath.Join(baseDir, formatName)}, candidates...)
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("format not found: %s", formatName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config file
func SetDefaultDeck(deckName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckName
	return writeConfig(config)
}
