package settings

import (
	"errors"
	"fmt"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// Length limits, in characters.
const (
	MaxURLLength        = 2048
	MaxUserAgentLength  = 256
	MaxCredentialLength = 256
	MaxNoProxyLength    = 1024
)

const (
	userAgentExtra = " /-_.()"
	noProxyExtra   = ".-*"
)

// hostProfile converts internationalized host names to their ASCII form.
// STD3 rules are off so hosts with underscores still pass through, matching
// how browsers treat URL hosts.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
)

// ValidateURL checks a SearXNG instance URL. The URL must be absolute http or
// https, must not carry credentials, must not point at loopback or private
// hosts and must not contain ".." in its path.
func ValidateURL(value string) error {
	if err := validateURL("searxng_url", value, true); err != nil {
		return err
	}
	return nil
}

// ValidateProxyURL applies the same scheme, credential and path checks as
// ValidateURL. Private hosts are allowed since proxies commonly live on the
// local network.
func ValidateProxyURL(value string) error {
	if err := validateURL("proxy", value, false); err != nil {
		return err
	}
	return nil
}

// ValidateUserAgent checks a literal User-Agent header value.
func ValidateUserAgent(value string) error {
	if err := validateUserAgent("user_agent", value); err != nil {
		return err
	}
	return nil
}

// ValidateNoProxy checks a comma-separated proxy bypass list.
func ValidateNoProxy(value string) error {
	if err := validateNoProxy("no_proxy", value); err != nil {
		return err
	}
	return nil
}

func validateURL(field, value string, guardHost bool) *ValidationError {
	u, err := url.Parse(value)
	if err != nil {
		return &ValidationError{
			Field:  field,
			Value:  value,
			Kind:   ErrMalformedURL,
			Reason: "provide a valid http:// or https:// URL",
			Cause:  err,
		}
	}
	if !u.IsAbs() {
		return fail(ErrMalformedURL, field, value, "URL must be absolute, e.g. https://searx.be")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fail(ErrUnsupportedScheme, field, u.Scheme, "URL must use http:// or https://")
	}
	if u.Hostname() == "" {
		return fail(ErrMalformedURL, field, value, "URL has no host")
	}
	if u.User != nil {
		reason := "use the auth_username and auth_password settings instead"
		if !guardHost {
			reason = "pass proxy credentials separately"
		}
		return fail(ErrEmbeddedCredentials, field, u.Redacted(), reason)
	}

	if guardHost {
		host, err := canonicalHost(u.Hostname())
		if err != nil {
			return &ValidationError{
				Field:  field,
				Value:  u.Hostname(),
				Kind:   ErrMalformedURL,
				Reason: "host is not a valid domain name or IP address",
				Cause:  err,
			}
		}
		if isForbiddenHost(host) {
			return fail(ErrForbiddenHost, field, u.Hostname(), "private and localhost URLs are not allowed; use a publicly accessible SearXNG instance")
		}
	}

	if strings.Contains(u.Path, "..") || strings.Contains(u.EscapedPath(), "..") {
		return fail(ErrPathTraversal, field, u.EscapedPath(), "URL path must not contain '..'")
	}
	return nil
}

func validateUserAgent(field, value string) *ValidationError {
	if n := utf8.RuneCountInString(value); n > MaxUserAgentLength {
		return fail(ErrTooLong, field, "", fmt.Sprintf("maximum length is %d characters, got %d", MaxUserAgentLength, n))
	}
	if !allowed(value, userAgentExtra) {
		return fail(ErrInvalidCharacters, field, value, fmt.Sprintf("only letters, digits and %q are allowed", userAgentExtra))
	}
	return nil
}

func validateNoProxy(field, value string) *ValidationError {
	if n := utf8.RuneCountInString(value); n > MaxNoProxyLength {
		return fail(ErrTooLong, field, "", fmt.Sprintf("maximum length is %d characters, got %d", MaxNoProxyLength, n))
	}
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "..") {
			return fail(ErrSuspiciousPattern, field, entry, "entries must not contain '..'")
		}
		if !allowed(entry, noProxyExtra) {
			return fail(ErrInvalidCharacters, field, entry, fmt.Sprintf("only letters, digits and %q are allowed", noProxyExtra))
		}
	}
	return nil
}

// validateURLLength caps URL fields. It is applied by Settings.Validate only,
// after the ordered field checks.
func validateURLLength(field, value string) *ValidationError {
	if n := utf8.RuneCountInString(value); n > MaxURLLength {
		return fail(ErrTooLong, field, "", fmt.Sprintf("maximum length is %d characters, got %d", MaxURLLength, n))
	}
	return nil
}

func validateCredential(field, value string) *ValidationError {
	if n := utf8.RuneCountInString(value); n > MaxCredentialLength {
		return fail(ErrTooLong, field, "", fmt.Sprintf("maximum length is %d characters, got %d", MaxCredentialLength, n))
	}
	return nil
}

// allowed reports whether every rune of s is a letter, a number, or in extra.
func allowed(s, extra string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune(extra, r) {
			continue
		}
		return false
	}
	return true
}

// canonicalHost lowercases host and folds its alternate spellings into one
// form: IPv6 literals are compressed, IDN labels become punycode and numeric
// IPv4 shorthands ("127.1", "0x7f.0.0.1") become dotted quads. The IPv4 parse
// runs on the ASCII form so full-width digits are caught too.
func canonicalHost(host string) (string, error) {
	host = strings.ToLower(host)
	if host == "" {
		return "", fmt.Errorf("empty host")
	}

	if strings.Contains(host, ":") {
		addr, err := netip.ParseAddr(host)
		if err != nil {
			return "", err
		}
		return addr.WithZone("").String(), nil
	}

	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return "", err
	}
	ascii = strings.ToLower(ascii)

	if ip, ok, err := parseIPv4(ascii); err != nil {
		return "", err
	} else if ok {
		return ip, nil
	}
	return ascii, nil
}

// parseIPv4 interprets host the way URL parsers in browsers do: one to four
// dot-separated decimal, octal (leading 0) or hex (0x) parts, the last part
// filling the remaining bytes. ok is false when host is not numeric at all.
func parseIPv4(host string) (ip string, ok bool, err error) {
	parts := strings.Split(host, ".")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return "", false, nil
	}

	nums := make([]uint64, len(parts))
	for i, p := range parts {
		n, numeric := parseIPv4Number(p)
		if !numeric {
			return "", false, nil
		}
		nums[i] = n
	}

	last := len(nums) - 1
	for _, n := range nums[:last] {
		if n > 255 {
			return "", false, fmt.Errorf("IPv4 part %d out of range", n)
		}
	}
	if nums[last] >= 1<<(8*(5-len(nums))) {
		return "", false, fmt.Errorf("IPv4 address %q out of range", host)
	}

	v := nums[last]
	for i, n := range nums[:last] {
		v += n << (8 * (3 - i))
	}
	addr := netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
	return addr.String(), true, nil
}

func parseIPv4Number(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	base := 10
	switch {
	case len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X"):
		s = s[2:]
		base = 16
		if s == "" {
			return 0, true
		}
	case len(s) >= 2 && s[0] == '0':
		s = s[1:]
		base = 8
	}
	n, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		// Overflowing but well-formed numbers are still numeric.
		if errors.Is(err, strconv.ErrRange) {
			return 1 << 40, true
		}
		return 0, false
	}
	return n, true
}

// isForbiddenHost matches a canonical host against the SSRF blocklist. The
// checks are string prefixes, not CIDR arithmetic.
func isForbiddenHost(host string) bool {
	if host == "localhost" || host == "0.0.0.0" {
		return true
	}
	for _, prefix := range []string{"127.", "10.", "192.168."} {
		if strings.HasPrefix(host, prefix) {
			return true
		}
	}
	if rest, ok := strings.CutPrefix(host, "172."); ok {
		octet, _, _ := strings.Cut(rest, ".")
		if n, err := strconv.Atoi(octet); err == nil && n >= 16 && n <= 31 {
			return true
		}
	}

	// Only IPv6 literals contain a colon after canonicalization.
	if strings.Contains(host, ":") {
		if strings.HasPrefix(host, "::") {
			return true
		}
		for _, prefix := range []string{"fe8", "fe9", "fea", "feb"} {
			if strings.HasPrefix(host, prefix) {
				return true
			}
		}
	}
	return false
}
