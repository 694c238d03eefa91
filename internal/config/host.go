package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/majorcontext/searxng-mcp/internal/launch"
)

var _ launch.Host = (*Host)(nil)

// ErrNodeNotFound is returned when no node binary is configured or on PATH.
var ErrNodeNotFound = errors.New("node not found")

// Host resolves launch inputs from the global configuration.
type Host struct {
	cfg *GlobalConfig

	// SettingsPath overrides cfg.Server.Settings when set.
	SettingsPath string

	lookPath func(string) (string, error)
}

// NewHost returns a Host backed by cfg.
func NewHost(cfg *GlobalConfig) *Host {
	return &Host{cfg: cfg, lookPath: exec.LookPath}
}

// NodeBinaryPath returns the configured node binary, or node from PATH.
func (h *Host) NodeBinaryPath() (string, error) {
	if h.cfg.Node.Binary != "" {
		return h.cfg.Node.Binary, nil
	}
	path, err := h.lookPath("node")
	if err != nil {
		return "", fmt.Errorf("%w in PATH: install Node.js 20 or later, or set node.binary in %s (%v)",
			ErrNodeNotFound, filepath.Join(GlobalConfigDir(), "config.yaml"), err)
	}
	return path, nil
}

// WorkDir returns the absolute server install directory, falling back to
// the current directory.
func (h *Host) WorkDir() (string, error) {
	if h.cfg.Server.Dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(h.cfg.Server.Dir)
}

// Settings loads the raw settings record. A missing file yields nil.
func (h *Host) Settings() ([]byte, error) {
	path := h.SettingsPath
	if path == "" {
		path = h.cfg.Server.Settings
	}
	if path == "" {
		return nil, nil
	}
	return LoadSettings(path)
}
