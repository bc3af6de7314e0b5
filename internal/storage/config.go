package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/olm/internal/model"
)

// Environment variables that override the config file.
const (
	EnvStoreFormat      = "OLM_STORE_FORMAT"
	EnvStorePath        = "OLM_STORE_PATH"
	EnvOnRenameConflict = "OLM_ON_RENAME_CONFLICT"
	EnvStrictOnion      = "OLM_STRICT_ONION"
)

var (
	ErrInvalidConflictPolicy = errors.New("on_rename_conflict must be reject or overwrite")
	ErrInvalidStrictOnion    = errors.New("strict_onion must be a boolean")
)

// Config holds application configuration.
type Config struct {
	Store            StoreConfig `yaml:"store"`
	OnRenameConflict string      `yaml:"on_rename_conflict"`
	StrictOnion      bool        `yaml:"strict_onion"`
}

// StoreConfig selects the backend and its location.
type StoreConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"` // empty = DefaultPath(Format)

	// UniqueTitles is a pointer so an absent key keeps the default.
	UniqueTitles *bool `yaml:"unique_titles"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	unique := true
	return Config{
		Store: StoreConfig{
			Format:       string(FormatTitleMap),
			UniqueTitles: &unique,
		},
		OnRenameConflict: model.ConflictReject.String(),
	}
}

// LoadConfig reads config from the yaml file, applies defaults and
// environment overrides, then validates.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Non-fatal: keep going with defaults even if the write fails
		_ = SaveConfig(path, &config)
	case err != nil:
		return nil, err
	default:
		var fromFile Config
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		config.merge(fromFile)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// merge copies every field set in other over c.
func (c *Config) merge(other Config) {
	if other.Store.Format != "" {
		c.Store.Format = other.Store.Format
	}
	if other.Store.Path != "" {
		c.Store.Path = other.Store.Path
	}
	if other.Store.UniqueTitles != nil {
		c.Store.UniqueTitles = other.Store.UniqueTitles
	}
	if other.OnRenameConflict != "" {
		c.OnRenameConflict = other.OnRenameConflict
	}
	c.StrictOnion = c.StrictOnion || other.StrictOnion
}

// applyEnv overrides fields from the environment (env vars take precedence).
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvStoreFormat); v != "" {
		c.Store.Format = v
	}
	if v := os.Getenv(EnvStorePath); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv(EnvOnRenameConflict); v != "" {
		c.OnRenameConflict = v
	}
	if v := os.Getenv(EnvStrictOnion); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrictOnion, ErrInvalidStrictOnion)
		}
		c.StrictOnion = strict
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := ParseFormat(c.Store.Format); err != nil {
		return err
	}
	if _, err := c.ConflictPolicy(); err != nil {
		return err
	}
	return nil
}

// ConflictPolicy parses OnRenameConflict.
func (c *Config) ConflictPolicy() (model.ConflictPolicy, error) {
	switch c.OnRenameConflict {
	case "", "reject":
		return model.ConflictReject, nil
	case "overwrite":
		return model.ConflictOverwrite, nil
	}
	return model.ConflictReject, fmt.Errorf("%w: got %q", ErrInvalidConflictPolicy, c.OnRenameConflict)
}

// StorageOptions converts the store section into Open options.
func (c *Config) StorageOptions() Options {
	unique := true
	if c.Store.UniqueTitles != nil {
		unique = *c.Store.UniqueTitles
	}
	return Options{
		Format:       Format(c.Store.Format),
		Path:         c.Store.Path,
		UniqueTitles: unique,
	}
}

// SaveConfig writes config to the yaml file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// DefaultConfigFilePath returns the default config path: $XDG_CONFIG_HOME/olm/config.yaml
func DefaultConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}
