// Package ui prints user-facing messages for the searxng-mcp CLI.
// Diagnostics go to stderr with a colored prefix; command output goes
// to stdout and is only colored when stdout is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr

	stdoutTTY = isTerminal(os.Stdout)
	color     = detectColor(os.Stdout)
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func detectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(f)
}

// SetOutput redirects stdout and stderr output (for testing). Nil restores
// the process streams.
func SetOutput(stdout, stderr io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	out, errOut = stdout, stderr
}

// Stdout returns the writer command output should go to.
func Stdout() io.Writer { return out }

// SetColorEnabled overrides color detection (for testing).
func SetColorEnabled(enabled bool) { color = enabled }

// SetTerminal overrides stdout terminal detection (for testing).
func SetTerminal(tty bool) { stdoutTTY = tty }

// IsTerminal reports whether stdout is an interactive terminal. Commands
// use it to pick human-readable or JSON output.
func IsTerminal() bool { return stdoutTTY }

func ansi(code, s string) string {
	if !color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Bold wraps s in bold ANSI codes.
func Bold(s string) string { return ansi("1", s) }

// Dim wraps s in dim ANSI codes.
func Dim(s string) string { return ansi("2", s) }

// Green wraps s in green ANSI codes.
func Green(s string) string { return ansi("32", s) }

// Red wraps s in red ANSI codes.
func Red(s string) string { return ansi("31", s) }

// Yellow wraps s in yellow ANSI codes.
func Yellow(s string) string { return ansi("33", s) }

// OKTag is a green check mark.
func OKTag() string { return Green("✓") }

// FailTag is a red cross.
func FailTag() string { return Red("✗") }

// Printf writes formatted command output to stdout.
func Printf(format string, args ...any) {
	fmt.Fprintf(out, format, args...)
}

// Warnf prints a warning to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(errOut, "%s %s\n", ansi("33", "Warning:"), fmt.Sprintf(format, args...))
}

// Errorf prints an error to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(errOut, "%s %s\n", ansi("31", "Error:"), fmt.Sprintf(format, args...))
}

// Infof prints an unprefixed message to stderr.
func Infof(format string, args ...any) {
	fmt.Fprintf(errOut, format+"\n", args...)
}
