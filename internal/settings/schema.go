package settings

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

//go:embed content/default_settings.jsonc
var defaultSettings string

//go:embed content/installation_instructions.md
var installationInstructions string

const schemaDraft = "http://json-schema.org/draft-07/schema#"

// userAgentPattern is the ASCII subset of the user agent whitelist, used by
// editors for inline hints. ValidateUserAgent is authoritative.
const userAgentPattern = `^[a-zA-Z0-9 /_.()-]+$`

// DefaultSettings returns the settings template shown to users on first run.
func DefaultSettings() string {
	return defaultSettings
}

// InstallationInstructions returns the markdown setup guide.
func InstallationInstructions() string {
	return installationInstructions
}

// Schema returns the JSON schema describing the Settings record.
func Schema() ([]byte, error) {
	s, err := jsonschema.For[Settings](nil)
	if err != nil {
		return nil, fmt.Errorf("generating settings schema: %w", err)
	}
	s.Schema = schemaDraft
	// Editors keep unrelated keys next to ours; Parse ignores them too.
	s.AdditionalProperties = nil

	for _, prop := range s.Properties {
		// Optional fields are pointers; present them as plain strings.
		if len(prop.Types) > 0 {
			prop.Types = nil
			prop.Type = "string"
		}
	}

	limit := func(name string, n int) {
		if p, ok := s.Properties[name]; ok {
			p.MaxLength = &n
		}
	}
	limit("searxng_url", MaxURLLength)
	limit("http_proxy", MaxURLLength)
	limit("https_proxy", MaxURLLength)
	limit("auth_username", MaxCredentialLength)
	limit("auth_password", MaxCredentialLength)
	limit("user_agent", MaxUserAgentLength)
	limit("no_proxy", MaxNoProxyLength)

	for _, name := range []string{"searxng_url", "http_proxy", "https_proxy"} {
		if p, ok := s.Properties[name]; ok {
			p.Format = "uri"
		}
	}
	if p, ok := s.Properties["searxng_url"]; ok {
		p.Examples = []any{"https://searx.be", "https://search.disroot.org"}
	}
	if p, ok := s.Properties["user_agent"]; ok {
		p.Pattern = userAgentPattern
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding settings schema: %w", err)
	}
	return data, nil
}
