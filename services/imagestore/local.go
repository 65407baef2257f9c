package imagestore

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes uploaded images under <dir>/products and stores the
// relative path on the product.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	targetDir := filepath.Join(s.dir, "products")
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", err
	}

	// Strip any path the client sent along with the filename.
	name := filepath.Base(filename)
	target := filepath.Join(targetDir, name)

	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(target)
		return "", err
	}

	return filepath.ToSlash(filepath.Join("products", name)), nil
}
