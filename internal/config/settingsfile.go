package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Editor settings layout the server record may be nested under:
//
//	{"context_servers": {"mcp-server-searxng": {"settings": {...}}}}
const (
	contextServersKey = "context_servers"
	ContextServerID   = "mcp-server-searxng"
	settingsKey       = "settings"
)

// LoadSettings reads a settings file and returns the server settings record
// as JSON, ready for settings.Parse. The format follows the extension:
// .yaml/.yml and .toml are converted, anything else is read as JSON with
// comments and trailing commas allowed, as editors write it.
//
// It returns nil, nil when the file does not exist, is empty, or uses the
// editor layout without a settings entry for this server. That is the
// "not configured yet" case, not an error.
func LoadSettings(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		var std []byte
		if std, err = hujson.Standardize(data); err == nil {
			err = json.Unmarshal(std, &doc)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	record, ok := unwrapEditorLayout(doc)
	if !ok {
		return nil, nil
	}
	out, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("converting %s to JSON: %w", filepath.Base(path), err)
	}
	return out, nil
}

// unwrapEditorLayout returns the settings record nested in the editor
// layout, or doc itself when it is not in that layout. ok is false when
// the layout is used but holds no settings for this server.
func unwrapEditorLayout(doc any) (record any, ok bool) {
	root, isMap := doc.(map[string]any)
	if !isMap {
		return doc, true
	}
	servers, found := root[contextServersKey]
	if !found {
		return doc, true
	}

	serverMap, _ := servers.(map[string]any)
	server, _ := serverMap[ContextServerID].(map[string]any)
	s, found := server[settingsKey]
	if !found || s == nil {
		return nil, false
	}
	return s, true
}
