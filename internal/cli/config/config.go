// Package config persists CLI settings under the user's home directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persisted CLI state: the saved API key plus per-command
// defaults. Missing and corrupt files both read as an empty Config so the
// CLI never fails on local state.
type Config struct {
	APIKey   string    `json:"apiKey,omitempty"`
	Defaults *Defaults `json:"defaults,omitempty"`
}

// Defaults holds optional per-command default values.
type Defaults struct {
	Search  *SearchDefaults  `json:"search,omitempty"`
	Install *InstallDefaults `json:"install,omitempty"`
}

type SearchDefaults struct {
	Limit int `json:"limit,omitempty"`
}

type InstallDefaults struct {
	Dir string `json:"dir,omitempty"`
}

// Path returns the config file location, ~/.agentmart/config.json.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".agentmart", "config.json"), nil
}

// Load reads the config file at path. An empty path uses Path(). A missing
// or unparseable file yields an empty Config and no error.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return &Config{}, nil
	}
	var c Config
	if err := json.Unmarshal(b, &c); err != nil {
		return &Config{}, nil
	}
	return &c, nil
}

// Save writes the config file, creating its directory if needed. The file
// holds a credential, so both get restrictive permissions.
func Save(path string, c *Config) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o600)
}

// SearchLimit returns the saved default search page size, or 0.
func (c *Config) SearchLimit() int {
	if c == nil || c.Defaults == nil || c.Defaults.Search == nil {
		return 0
	}
	return c.Defaults.Search.Limit
}

// InstallDir returns the saved default install directory, or "".
func (c *Config) InstallDir() string {
	if c == nil || c.Defaults == nil || c.Defaults.Install == nil {
		return ""
	}
	return c.Defaults.Install.Dir
}
