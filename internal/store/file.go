package store

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio/maybe"
	"github.com/pkg/errors"
)

// ErrCorrupt is returned by File.Load when the file does not hold an integer.
var ErrCorrupt = errors.New("high score file is corrupt")

// File stores the high score as one decimal integer, the entire file contents.
type File struct {
	path string
}

// NewFileStore returns a File store rooted at path.
func NewFileStore(path string) *File {
	return &File{path: path}
}

// Path is the backing file location.
func (f *File) Path() string { return f.path }

// Load reads the file. A missing file is not an error.
func (f *File) Load(ctx context.Context) (int, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, errors.Wrapf(err, "could not read high score: %s", f.path)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, errors.Wrapf(ErrCorrupt, "%s: %q", f.path, strings.TrimSpace(string(data)))
	}
	return n, true, nil
}

// Save atomically (best effort) overwrites the file with value.
func (f *File) Save(ctx context.Context, value int) error {
	dir := filepath.Dir(f.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "could not create data directory: %s", dir)
		}
	}
	if err := maybe.WriteFile(f.path, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return errors.Wrapf(err, "could not write high score: %s", f.path)
	}
	return nil
}
