package globalconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/urlb/internal/utils/pathutils"

	"gopkg.in/yaml.v3"
)

// PersistentConfig is stored in ~/.config/urlb/config.yml.
type PersistentConfig struct {
	ManifestFile string `yaml:"manifest_file"`
}

const (
	configDir  = ".config/urlb"
	configFile = "config.yml"
)

var ErrNoConfig = errors.New("no configuration found, run 'urlb init' first")

func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

func LoadPersistentConfig() (*PersistentConfig, error) {
	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(fullConfigDir, configFile)

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg PersistentConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	if cfg.ManifestFile == "" {
		return nil, fmt.Errorf("%s: manifest_file is empty", configPath)
	}

	absPath, err := pathutils.ToAbsolutePath(cfg.ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}

	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("manifest not found at %s: %w", cfg.ManifestFile, err)
	}

	cfg.ManifestFile = absPath
	return &cfg, nil
}

// Save writes the config, storing the manifest path in ~/ form when it lives
// under the home directory.
func (c *PersistentConfig) Save() error {
	configDirRights := 0o755
	configFileRights := 0o644

	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(fullConfigDir, os.FileMode(configDirRights)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	homePath, err := pathutils.ToHomePathFormat(c.ManifestFile)
	if err != nil {
		return fmt.Errorf("failed to convert to home path format: %w", err)
	}

	data, err := yaml.Marshal(&PersistentConfig{ManifestFile: homePath})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(filepath.Join(fullConfigDir, configFile), data, os.FileMode(configFileRights))
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
