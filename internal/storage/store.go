package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Error variables
var (
	// ErrInvalidName is returned when a file name fails validation.
	ErrInvalidName = errors.New("invalid asset name")
	// ErrNotFound is returned when the named asset does not exist.
	ErrNotFound = errors.New("asset not found")
)

var nameRegexp = regexp.MustCompile(`^[a-z0-9_\-.]+$`)

// AssetStore owns a directory of model artifacts on local disk.
// It is the only component allowed to write under its root.
type AssetStore struct {
	root string
}

// New creates the root directory if missing and returns a store over it.
func New(root string) (*AssetStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("asset store root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create asset dir: %w", err)
	}
	return &AssetStore{root: root}, nil
}

// Root returns the directory the store writes under.
func (s *AssetStore) Root() string {
	return s.root
}

// ValidateName rejects names that could escape the store root.
func ValidateName(name string) error {
	if name == "" || !nameRegexp.MatchString(name) || strings.Contains(name, "..") {
		return ErrInvalidName
	}
	return nil
}

// Put atomically publishes the reader's bytes under name. The bytes are
// streamed into a temporary sibling which is renamed into place, so a
// partially written file never becomes visible.
func (s *AssetStore) Put(name string, r io.Reader) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, name+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write asset %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close asset %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.root, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publish asset %s: %w", name, err)
	}
	return nil
}

// Delete removes the named asset. Deleting an absent asset is not an error.
func (s *AssetStore) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete asset %s: %w", name, err)
	}
	return nil
}

// Exists reports whether the named asset is published.
func (s *AssetStore) Exists(name string) bool {
	if ValidateName(name) != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(s.root, name))
	return err == nil
}

// ReadStream opens the named asset for reading. The caller closes it.
func (s *AssetStore) ReadStream(name string) (io.ReadCloser, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.root, name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open asset %s: %w", name, err)
	}
	return f, nil
}

// List returns the names of all published assets ending with suffix,
// in unspecified order.
func (s *AssetStore) List(suffix string) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		// Unpublished temp siblings never surface to callers.
		if strings.Contains(name, ".tmp") || ValidateName(name) != nil {
			continue
		}
		if strings.HasSuffix(name, suffix) {
			names = append(names, name)
		}
	}
	return names, nil
}
