package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// NotFoundError reports a missing template file. Analysis callers recover
// from it by switching to the tabular fallback; decision callers surface it,
// since no decision fallback exists.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template: %s not found", e.Path)
}

// Load reads and parses the template file at path. A missing file yields a
// *NotFoundError; any other read or parse failure is wrapped as-is.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("template: read %s: %w", path, err)
	}
	return Parse(data)
}
