package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/adaptkit"
	projectConfigDir = ".adaptkit"
	configFileName   = "config.yaml"
)

// Load builds the effective configuration by layering defaults, the
// optional user config, the optional project config and finally an
// explicit file if one was given. Absent user/project files are not
// errors; an absent explicit file is.
func Load(explicitPath string) (Config, error) {
	config := DefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; carry on with defaults.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadFromFile(userConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = merge(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadFromFile(projectConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = merge(config, projectConfig)
	}

	if explicitPath != "" {
		explicitConfig, err := loadFromFile(explicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = merge(config, explicitConfig)
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadFromFile loads a Config from a YAML file.
func loadFromFile(filePath string) (Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// merge merges 'overlay' config into 'base' config. Only fields the
// overlay actually sets override the base.
func merge(base, overlay Config) Config {
	merged := base
	if overlay.Sentence != "" {
		merged.Sentence = overlay.Sentence
	}
	if overlay.ColorMode != "" {
		merged.ColorMode = overlay.ColorMode
	}
	return merged
}
