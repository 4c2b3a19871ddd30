package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no artifact exists under the given name.
var ErrNotFound = errors.New("artifact not found")

// Store keeps generated contract documents on the local filesystem, one file
// per artifact. Names never contain path separators, so a stored artifact
// can always be fetched back under the name returned by Save.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact directory: %w", err)
	}
	return &Store{dir: abs}, nil
}

// Save writes the artifact and returns its absolute path.
func (s *Store) Save(name string, content []byte) (string, error) {
	if !safeName(name) {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Open resolves a name to the stored artifact's absolute path. Unknown and
// unsafe names both come back as ErrNotFound so the HTTP surface cannot be
// used to probe the filesystem.
func (s *Store) Open(name string) (string, error) {
	if !safeName(name) {
		return "", ErrNotFound
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

func safeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}
