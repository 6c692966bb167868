package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// URLPrefix is where the upload dir is mounted for static serving.
const URLPrefix = "/uploads"

var ErrBadFilename = errors.New("invalid upload filename")

type DiskStore struct {
	Dir string
}

// NewDiskStore makes sure dir exists.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{Dir: dir}, nil
}

// Save writes src under the base name of filename, replacing any existing
// file with that name, and returns the public image URL.
func (s *DiskStore) Save(filename string, src io.Reader) (string, error) {
	name := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == "/" || name == ".." || name == "" {
		return "", ErrBadFilename
	}

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	return path.Join(strings.TrimPrefix(URLPrefix, "/"), name), nil
}
