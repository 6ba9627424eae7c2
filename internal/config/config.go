// Package config resolves the store path and the XDG configuration directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todos"

	// DefaultStoreFile is the store file used when nothing overrides it.
	// Relative paths resolve against the working directory.
	DefaultStoreFile = "todos.csv"

	// ConfigFile is the optional TOML settings file inside the config dir.
	ConfigFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// EnvStoreFile overrides the store path.
	EnvStoreFile = "TODOS_FILE"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// StorePath is the CSV file tasks are loaded from and saved to.
	StorePath string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// Overrides carries values given on the command line. Zero values mean
// "not set".
type Overrides struct {
	Dir       string
	StorePath string
	Quiet     bool
	Debug     bool
}

// fileSettings mirrors config.toml.
type fileSettings struct {
	StoreFile string `toml:"store_file"`
	Quiet     *bool  `toml:"quiet"`
	Debug     *bool  `toml:"debug"`
}

// New creates a Config with defaults and the given config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todos or $HOME/.config/todos.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, StorePath: DefaultStoreFile}, nil
}

// Load builds a Config from, in increasing priority: defaults, config.toml in
// the config directory, the environment, and command-line overrides.
func Load(o Overrides) (*Config, error) {
	cfg, err := New(o.Dir)
	if err != nil {
		return nil, err
	}

	if err := cfg.loadFile(cfg.FilePath()); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvStoreFile); v != "" {
		cfg.StorePath = v
	}

	if o.StorePath != "" {
		cfg.StorePath = o.StorePath
	}
	if o.Quiet {
		cfg.Quiet = true
	}
	if o.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// loadFile applies settings from a TOML file. A missing file is not an error.
func (c *Config) loadFile(path string) error {
	var fsettings fileSettings
	if _, err := toml.DecodeFile(path, &fsettings); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading config file %s: %w", path, err)
	}

	if fsettings.StoreFile != "" {
		c.StorePath = fsettings.StoreFile
	}
	if fsettings.Quiet != nil {
		c.Quiet = *fsettings.Quiet
	}
	if fsettings.Debug != nil {
		c.Debug = *fsettings.Debug
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.toml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory (mode 0700) if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
