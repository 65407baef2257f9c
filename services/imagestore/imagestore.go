package imagestore

import (
	"context"
	"io"

	"inventory-app/config"
)

// Store persists an uploaded product image and returns the reference that
// gets stored on the product row: a public URL for remote storage, a
// relative path for local storage.
type Store interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// NewFromConfig picks the storage strategy configured by IMAGE_STORAGE.
func NewFromConfig() Store {
	if config.ImageStorage == "sanity" {
		return NewSanityStore(SanityConfig{
			ProjectID:  config.SanityProjectID,
			Dataset:    config.SanityDataset,
			Token:      config.SanityToken,
			APIVersion: config.SanityAPIVersion,
		})
	}

	return NewLocalStore(config.UploadDir)
}
