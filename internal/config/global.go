// Package config loads searxng-mcp's own configuration and the user's
// server settings files, and adapts them to the launch.Host interface.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the config file.
const (
	EnvHome          = "SEARXNG_MCP_HOME"
	EnvNode          = "SEARXNG_MCP_NODE"
	EnvDir           = "SEARXNG_MCP_DIR"
	EnvSettings      = "SEARXNG_MCP_SETTINGS"
	EnvRetentionDays = "SEARXNG_MCP_DEBUG_RETENTION_DAYS"
)

// GlobalConfig holds settings from ~/.searxng-mcp/config.yaml.
type GlobalConfig struct {
	Node   NodeConfig   `yaml:"node"`
	Server ServerConfig `yaml:"server"`
	Debug  DebugConfig  `yaml:"debug"`
}

// NodeConfig locates the Node.js runtime.
type NodeConfig struct {
	// Binary is the node executable. Empty means look it up on PATH.
	Binary string `yaml:"binary,omitempty"`
}

// ServerConfig locates the installed server package and its settings.
type ServerConfig struct {
	// Dir is the directory mcp-searxng is installed under
	// (node_modules/mcp-searxng lives inside it).
	Dir string `yaml:"dir,omitempty"`
	// Settings is the default settings file (JSON, YAML or TOML).
	Settings string `yaml:"settings,omitempty"`
}

// DebugConfig controls the JSONL debug log.
type DebugConfig struct {
	RetentionDays int `yaml:"retention_days"`
}

// DefaultGlobalConfig returns the configuration used when no file exists.
func DefaultGlobalConfig() *GlobalConfig {
	home := GlobalConfigDir()
	return &GlobalConfig{
		Server: ServerConfig{
			Dir:      filepath.Join(home, "server"),
			Settings: filepath.Join(home, "settings.json"),
		},
		Debug: DebugConfig{
			RetentionDays: 14,
		},
	}
}

// LoadGlobal reads config.yaml from GlobalConfigDir and applies environment
// overrides. A missing file is not an error.
func LoadGlobal() (*GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	path := filepath.Join(GlobalConfigDir(), "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if v := os.Getenv(EnvNode); v != "" {
		cfg.Node.Binary = v
	}
	if v := os.Getenv(EnvDir); v != "" {
		cfg.Server.Dir = v
	}
	if v := os.Getenv(EnvSettings); v != "" {
		cfg.Server.Settings = v
	}
	if v := os.Getenv(EnvRetentionDays); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", EnvRetentionDays, v)
		}
		cfg.Debug.RetentionDays = days
	}
	return cfg, nil
}

// GlobalConfigDir returns $SEARXNG_MCP_HOME, or ~/.searxng-mcp.
func GlobalConfigDir() string {
	if v := os.Getenv(EnvHome); v != "" {
		return v
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".searxng-mcp")
	}
	return filepath.Join(homeDir, ".searxng-mcp")
}

// DebugDir is where debug logs are written.
func DebugDir() string {
	return filepath.Join(GlobalConfigDir(), "debug")
}
