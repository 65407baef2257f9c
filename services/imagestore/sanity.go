package imagestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type SanityConfig struct {
	ProjectID  string
	Dataset    string
	Token      string
	APIVersion string

	// BaseURL overrides the https://{project}.api.sanity.io default.
	BaseURL string
}

// SanityStore uploads image bytes to the Sanity asset endpoint and stores
// the returned asset URL on the product.
type SanityStore struct {
	cfg    SanityConfig
	client *http.Client
}

func NewSanityStore(cfg SanityConfig) *SanityStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	}

	return &SanityStore{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sanityUploadResponse struct {
	Document struct {
		URL string `json:"url"`
	} `json:"document"`
}

func (s *SanityStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	uploadURL := fmt.Sprintf("%s/v%s/assets/images/%s?filename=%s",
		s.cfg.BaseURL, s.cfg.APIVersion, s.cfg.Dataset, url.QueryEscape(filename))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, r)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("sanity upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result sanityUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode sanity response: %w", err)
	}

	if result.Document.URL == "" {
		return "", fmt.Errorf("sanity response missing document.url")
	}

	return result.Document.URL, nil
}
