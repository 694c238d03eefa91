// Package settings parses and validates the user-supplied configuration for
// the SearXNG MCP server. Validation is pure: no network or filesystem access.
package settings

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// Settings is a validated SearXNG MCP server configuration.
// Optional fields are nil when the user did not set them.
type Settings struct {
	SearxngURL   string  `json:"searxng_url" jsonschema:"URL of the SearXNG instance (required)"`
	AuthUsername *string `json:"auth_username,omitempty" jsonschema:"HTTP Basic Auth username (optional)"`
	AuthPassword *string `json:"auth_password,omitempty" jsonschema:"HTTP Basic Auth password (optional)"`
	UserAgent    *string `json:"user_agent,omitempty" jsonschema:"Custom User-Agent header (optional)"`
	HTTPProxy    *string `json:"http_proxy,omitempty" jsonschema:"HTTP proxy URL (optional)"`
	HTTPSProxy   *string `json:"https_proxy,omitempty" jsonschema:"HTTPS proxy URL (optional)"`
	NoProxy      *string `json:"no_proxy,omitempty" jsonschema:"Comma-separated list of hosts to bypass proxy (optional)"`
}

// payload mirrors Settings with the required field as a pointer so a
// missing key can be told apart from an empty string.
type payload struct {
	SearxngURL   *string `json:"searxng_url"`
	AuthUsername *string `json:"auth_username"`
	AuthPassword *string `json:"auth_password"`
	UserAgent    *string `json:"user_agent"`
	HTTPProxy    *string `json:"http_proxy"`
	HTTPSProxy   *string `json:"https_proxy"`
	NoProxy      *string `json:"no_proxy"`
}

// Parse decodes a raw JSON settings document and validates every field.
// It returns either a fully valid Settings or the first *ValidationError.
// Unknown keys are ignored.
func Parse(raw []byte) (*Settings, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fail(ErrSchema, "settings", "", "settings document is empty")
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &ValidationError{
			Field:  "settings",
			Kind:   ErrSchema,
			Reason: "check searxng_url and the optional fields in your settings",
			Cause:  err,
		}
	}
	if p.SearxngURL == nil {
		return nil, fail(ErrSchema, "searxng_url", "", "missing required field")
	}

	s := &Settings{
		SearxngURL:   *p.SearxngURL,
		AuthUsername: p.AuthUsername,
		AuthPassword: p.AuthPassword,
		UserAgent:    p.UserAgent,
		HTTPProxy:    p.HTTPProxy,
		HTTPSProxy:   p.HTTPSProxy,
		NoProxy:      p.NoProxy,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.SearxngURL = trimTrailingSlash(s.SearxngURL)
	return s, nil
}

// Validate checks every field in a fixed order (URL, user agent, HTTP proxy,
// HTTPS proxy, NO_PROXY, then URL and credential lengths) and returns the
// first failure. It is idempotent.
func (s *Settings) Validate() error {
	checks := []func() *ValidationError{
		func() *ValidationError { return validateURL("searxng_url", s.SearxngURL, true) },
		func() *ValidationError { return optional(s.UserAgent, "user_agent", validateUserAgent) },
		func() *ValidationError { return optional(s.HTTPProxy, "http_proxy", validateProxy) },
		func() *ValidationError { return optional(s.HTTPSProxy, "https_proxy", validateProxy) },
		func() *ValidationError { return optional(s.NoProxy, "no_proxy", validateNoProxy) },
		func() *ValidationError { return validateURLLength("searxng_url", s.SearxngURL) },
		func() *ValidationError { return optional(s.HTTPProxy, "http_proxy", validateURLLength) },
		func() *ValidationError { return optional(s.HTTPSProxy, "https_proxy", validateURLLength) },
		func() *ValidationError { return optional(s.AuthUsername, "auth_username", validateCredential) },
		func() *ValidationError { return optional(s.AuthPassword, "auth_password", validateCredential) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func validateProxy(field, value string) *ValidationError {
	return validateURL(field, value, false)
}

func optional(v *string, field string, check func(field, value string) *ValidationError) *ValidationError {
	if v == nil {
		return nil
	}
	return check(field, *v)
}

// trimTrailingSlash drops trailing slashes from an already validated URL.
// URLs with a query or fragment are left alone since the slash may belong
// to them.
func trimTrailingSlash(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return raw
	}
	return strings.TrimRight(raw, "/")
}
