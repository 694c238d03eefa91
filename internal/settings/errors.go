package settings

import (
	"errors"
	"fmt"
)

// Validation failure kinds. A *ValidationError always wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	// ErrSchema is returned when the settings payload does not match the
	// record shape (missing required field, wrong type, not an object).
	ErrSchema = errors.New("invalid settings format")
	// ErrMalformedURL is returned when a value is not an absolute URL.
	ErrMalformedURL = errors.New("malformed URL")
	// ErrUnsupportedScheme is returned for schemes other than http and https.
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")
	// ErrEmbeddedCredentials is returned when a URL carries user info.
	ErrEmbeddedCredentials = errors.New("embedded credentials")
	// ErrForbiddenHost is returned when a URL points at a loopback or private host.
	ErrForbiddenHost = errors.New("forbidden host")
	// ErrPathTraversal is returned when a URL path contains "..".
	ErrPathTraversal = errors.New("path traversal")
	// ErrTooLong is returned when a value exceeds its length limit.
	ErrTooLong = errors.New("value too long")
	// ErrInvalidCharacters is returned when a value contains characters
	// outside its whitelist.
	ErrInvalidCharacters = errors.New("invalid characters")
	// ErrSuspiciousPattern is returned when a NO_PROXY entry contains "..".
	ErrSuspiciousPattern = errors.New("suspicious pattern")
)

// ValidationError describes why a single settings field was rejected.
type ValidationError struct {
	Field  string // settings key, e.g. "searxng_url"
	Value  string // offending value, with any credentials redacted
	Kind   error  // one of the Err* sentinels
	Reason string // human-readable guidance
	Cause  error  // underlying parse/decode error, if any
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Field, e.Kind)
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (%v)", e.Cause)
	}
	return msg
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func fail(kind error, field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Kind: kind, Reason: reason}
}
