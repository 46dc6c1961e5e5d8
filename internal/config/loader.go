package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "shufflepop.yaml"

// LoadShufflePop loads the game configuration.
// Search order: customPath -> ~/.shufflepop/configs/shufflepop.yaml ->
// ./configs/shufflepop.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped silently when unusable.
func LoadShufflePop(customPath string) (ShufflePopConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShufflePopConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ShufflePopConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Default returns the embedded default configuration, falling back to the
// hardcoded one if the embedded YAML is unusable.
func Default() ShufflePopConfig {
	cfg, err := Parse(defaultShufflePopYAML)
	if err != nil {
		return DefaultShufflePopConfig()
	}
	return cfg
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Omitted tuning keys keep their default values; a levels list, when present,
// replaces the built-in catalog entirely.
func Parse(data []byte) (ShufflePopConfig, error) {
	cfg := DefaultShufflePopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShufflePopConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ShufflePopConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg ShufflePopConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shufflepop", "configs", filename)
}
