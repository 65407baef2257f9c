package imagestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreUpload(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	url, err := store.Upload(context.Background(), "photo.png", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "products/photo.png" {
		t.Errorf("url = %q, want products/photo.png", url)
	}

	content, err := os.ReadFile(filepath.Join(dir, "products", "photo.png"))
	if err != nil {
		t.Fatalf("stored file not found: %v", err)
	}
	if string(content) != "png-bytes" {
		t.Errorf("stored content = %q", content)
	}
}

func TestLocalStoreUploadStripsClientPath(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	url, err := store.Upload(context.Background(), "../../etc/passwd.png", "image/png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "products/passwd.png" {
		t.Errorf("url = %q, want products/passwd.png", url)
	}

	if _, err := os.Stat(filepath.Join(dir, "products", "passwd.png")); err != nil {
		t.Errorf("expected file inside the upload dir: %v", err)
	}
}
