// Package launch builds the process descriptor used to start the SearXNG MCP
// server from validated settings and host-provided paths.
package launch

import (
	"github.com/majorcontext/searxng-mcp/internal/log"
	"github.com/majorcontext/searxng-mcp/internal/settings"
)

// Environment variable names read by the mcp-searxng server.
const (
	EnvSearxngURL   = "SEARXNG_URL"
	EnvAuthUsername = "AUTH_USERNAME"
	EnvAuthPassword = "AUTH_PASSWORD"
	EnvUserAgent    = "USER_AGENT"
	EnvHTTPProxy    = "HTTP_PROXY"
	EnvHTTPSProxy   = "HTTPS_PROXY"
	EnvNoProxy      = "NO_PROXY"
)

// redactedValue replaces secret values in Redacted descriptors.
const redactedValue = "********"

// EnvVar is a single environment variable passed to the server process.
type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Descriptor is everything needed to start the server process.
// Env is ordered and names are unique.
type Descriptor struct {
	Executable string   `json:"command"`
	Args       []string `json:"args"`
	Env        []EnvVar `json:"env"`
}

// Build assembles a Descriptor. executable and entryPoint are used verbatim.
//
// When raw is empty the settings have not been configured yet and a
// descriptor without environment is returned, so the host can prompt for
// configuration instead of failing. Otherwise raw is parsed and validated
// and the first validation error is returned unchanged.
func Build(executable, entryPoint string, raw []byte) (*Descriptor, error) {
	d := &Descriptor{
		Executable: executable,
		Args:       []string{entryPoint},
		Env:        []EnvVar{},
	}
	if len(raw) == 0 {
		log.Debug("no settings configured, building bare command", "executable", executable)
		return d, nil
	}

	s, err := settings.Parse(raw)
	if err != nil {
		return nil, err
	}
	d.Env = environment(s)

	log.Debug("built server command", "executable", executable, "env", d.envNames())
	return d, nil
}

// environment renders s in the fixed order SEARXNG_URL, AUTH_USERNAME,
// AUTH_PASSWORD, USER_AGENT, HTTP_PROXY, HTTPS_PROXY, NO_PROXY.
func environment(s *settings.Settings) []EnvVar {
	env := []EnvVar{{Name: EnvSearxngURL, Value: s.SearxngURL}}
	for _, opt := range []struct {
		name  string
		value *string
	}{
		{EnvAuthUsername, s.AuthUsername},
		{EnvAuthPassword, s.AuthPassword},
		{EnvUserAgent, s.UserAgent},
		{EnvHTTPProxy, s.HTTPProxy},
		{EnvHTTPSProxy, s.HTTPSProxy},
		{EnvNoProxy, s.NoProxy},
	} {
		if opt.value != nil {
			env = append(env, EnvVar{Name: opt.name, Value: *opt.value})
		}
	}
	return env
}

// Environ returns Env as NAME=value strings, the form os/exec expects.
func (d *Descriptor) Environ() []string {
	out := make([]string, len(d.Env))
	for i, e := range d.Env {
		out[i] = e.Name + "=" + e.Value
	}
	return out
}

// Lookup returns the value of the named variable.
func (d *Descriptor) Lookup(name string) (string, bool) {
	for _, e := range d.Env {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// Redacted returns a copy of d with secret values masked, for display.
func (d *Descriptor) Redacted() *Descriptor {
	out := &Descriptor{
		Executable: d.Executable,
		Args:       append([]string(nil), d.Args...),
		Env:        make([]EnvVar, len(d.Env)),
	}
	for i, e := range d.Env {
		if e.Name == EnvAuthPassword && e.Value != "" {
			e.Value = redactedValue
		}
		out.Env[i] = e
	}
	return out
}

func (d *Descriptor) envNames() []string {
	names := make([]string, len(d.Env))
	for i, e := range d.Env {
		names[i] = e.Name
	}
	return names
}
