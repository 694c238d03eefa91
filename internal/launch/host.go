package launch

import (
	"fmt"
	"path/filepath"
)

// Pinned server package. Bump PackageVersion only after reviewing the
// upstream release.
const (
	PackageName    = "mcp-searxng"
	PackageVersion = "0.4.1"
)

// ServerPath is the server entry point relative to the working directory
// the package is installed into.
var ServerPath = filepath.Join("node_modules", PackageName, "dist", "index.js")

// Host supplies the environment-specific inputs to a build. Installing the
// package and storing settings are the host's concern.
type Host interface {
	// NodeBinaryPath returns the node executable used to run the server.
	NodeBinaryPath() (string, error)
	// WorkDir returns the directory the server package is installed in.
	WorkDir() (string, error)
	// Settings returns the raw JSON settings document, or nil if the user
	// has not configured the server yet.
	Settings() ([]byte, error)
}

// EntryPoint returns the absolute server script path under workDir.
func EntryPoint(workDir string) string {
	return filepath.Join(workDir, ServerPath)
}

// ForHost builds the descriptor for h.
func ForHost(h Host) (*Descriptor, error) {
	node, err := h.NodeBinaryPath()
	if err != nil {
		return nil, fmt.Errorf("locating node binary: %w", err)
	}
	dir, err := h.WorkDir()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	raw, err := h.Settings()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return Build(node, EntryPoint(dir), raw)
}
