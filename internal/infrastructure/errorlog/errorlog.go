// Package errorlog appends handled domain errors to a plain-text file.
//
// The file is opened in append mode, written and closed on every call. There
// is no buffering and no rotation; a single process is assumed to be the only
// writer.
package errorlog

import (
	"fmt"
	"os"
)

// DefaultPath is relative to the process working directory.
const DefaultPath = "errors.log"

// Writer appends one line per logged message.
type Writer struct {
	path string
}

// New creates a writer for path. An empty path means DefaultPath.
func New(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path}
}

// Path returns the log file location.
func (w *Writer) Path() string {
	return w.path
}

// Log appends msg and a newline.
func (w *Writer) Log(msg string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}

	if _, err := f.WriteString(msg + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("write error log: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close error log: %w", err)
	}
	return nil
}

// LogError appends the rendered error.
func (w *Writer) LogError(err error) error {
	if err == nil {
		return nil
	}
	return w.Log(err.Error())
}
