// Package storage provides object storage for uploaded documents.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore is the object-storage contract the document service depends on.
// Paths are forward-slash relative keys, e.g. "7/plan-etage-3.pdf".
type BlobStore interface {
	// Upload writes the object and returns the number of bytes stored.
	Upload(path string, r io.Reader) (int64, error)

	// PublicURL returns the URL the object is served from.
	PublicURL(path string) string

	// Remove deletes the given objects. Missing objects are not an error.
	Remove(paths []string) error
}

// DiskStore stores objects as files under a root directory.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates a DiskStore rooted at dir. The directory is created
// if it does not exist.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root %s: %w", dir, err)
	}
	return &DiskStore{root: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Root returns the root directory objects are stored under.
func (s *DiskStore) Root() string {
	return s.root
}

// Upload writes the object to disk, creating parent directories as needed.
func (s *DiskStore) Upload(path string, r io.Reader) (int64, error) {
	full, err := s.resolve(path)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return 0, fmt.Errorf("storage: create dir for %s: %w", path, err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return 0, fmt.Errorf("storage: create %s: %w", path, err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, r)
	if err != nil {
		os.Remove(full)
		return 0, fmt.Errorf("storage: write %s: %w", path, err)
	}
	return n, nil
}

// PublicURL returns the URL the object is served from.
func (s *DiskStore) PublicURL(path string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// Remove deletes the given objects. A missing object is treated as already
// removed.
func (s *DiskStore) Remove(paths []string) error {
	var errs []string
	for _, p := range paths {
		full, err := s.resolve(p)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("%s: %v", p, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("storage: remove: %s", strings.Join(errs, "; "))
	}
	return nil
}

// resolve maps a storage key to an absolute file path, rejecting keys that
// escape the root.
func (s *DiskStore) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	if clean == "/" {
		return "", fmt.Errorf("storage: empty path")
	}
	full := filepath.Join(s.root, clean)
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: path %q escapes root", path)
	}
	return full, nil
}
