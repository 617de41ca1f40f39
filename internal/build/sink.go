package build

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"semtheme/internal/domain"
)

// Sink persists encoded theme documents.
type Sink interface {
	// Path returns where a document called name would be written.
	Path(name string) string
	// Write stores data under name and returns the written path.
	Write(name string, data []byte) (string, error)
}

// FileSink writes <Dir>/<name>.json, creating Dir on demand.
type FileSink struct {
	Dir string
}

// Path implements Sink. ".json" is appended unless name already ends with it.
func (s FileSink) Path(name string) string {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(s.Dir, name)
}

// Write implements Sink.
func (s FileSink) Write(name string, data []byte) (string, error) {
	path := s.Path(name)
	//nolint:gosec // G301: output directory is user-visible
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", writeError(path, err)
	}
	//nolint:gosec // G306: theme files are meant to be world-readable
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", writeError(path, err)
	}
	return path, nil
}

// Encode serializes a document with keys in construction order. HTML
// characters are left unescaped and no trailing newline is written.
func Encode(doc *domain.Document, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(doc); err != nil {
		return nil, encodeError(doc.Name, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
