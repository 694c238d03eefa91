package log

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"
)

const (
	dayLayout  = "2006-01-02"
	filePrefix = "searxng-mcp-"
	fileSuffix = ".jsonl"
	latestLink = "latest.jsonl"
)

// debugFile matches searxng-mcp-YYYY-MM-DD.jsonl.
var debugFile = regexp.MustCompile(`^searxng-mcp-\d{4}-\d{2}-\d{2}\.jsonl$`)

// FileWriter appends to one file per day in dir and keeps a "latest.jsonl"
// symlink pointing at the current one.
type FileWriter struct {
	dir string

	mu   sync.Mutex
	file *os.File
	day  string
}

// NewFileWriter opens today's debug file in dir, creating dir if needed.
func NewFileWriter(dir string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating debug log dir: %w", err)
	}
	fw := &FileWriter{dir: dir}

	fw.mu.Lock()
	defer fw.mu.Unlock()
	if err := fw.openLocked(time.Now()); err != nil {
		return nil, err
	}
	return fw, nil
}

// Write implements io.Writer, switching files when the day changes.
func (fw *FileWriter) Write(p []byte) (int, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	now := time.Now()
	if now.Format(dayLayout) != fw.day || fw.file == nil {
		if err := fw.openLocked(now); err != nil {
			return 0, err
		}
	}
	return fw.file.Write(p)
}

// Close closes the current file.
func (fw *FileWriter) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.file == nil {
		return nil
	}
	err := fw.file.Close()
	fw.file = nil
	return err
}

// Path returns the file currently written to.
func (fw *FileWriter) Path() string {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return filepath.Join(fw.dir, fileName(fw.day))
}

func (fw *FileWriter) openLocked(now time.Time) error {
	if fw.file != nil {
		fw.file.Close()
		fw.file = nil
	}

	day := now.Format(dayLayout)
	name := fileName(day)
	f, err := os.OpenFile(filepath.Join(fw.dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	fw.file = f
	fw.day = day

	// Best effort: a missing link only affects convenience.
	link := filepath.Join(fw.dir, latestLink)
	tmp := link + ".tmp"
	os.Remove(tmp)
	if err := os.Symlink(name, tmp); err == nil {
		_ = os.Rename(tmp, link)
	}
	return nil
}

func fileName(day string) string {
	return filePrefix + day + fileSuffix
}

// Cleanup deletes debug files in dir dated more than retentionDays ago.
// Other files are left alone.
func Cleanup(dir string, retentionDays int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !debugFile.MatchString(name) {
			continue
		}
		day := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		t, err := time.Parse(dayLayout, day)
		if err != nil {
			continue
		}
		if t.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}
