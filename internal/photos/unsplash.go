package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultUnsplashURL is the public Unsplash API root.
const DefaultUnsplashURL = "https://api.unsplash.com"

// UnsplashFinder searches Unsplash and returns the first landscape result.
type UnsplashFinder struct {
	accessKey string
	baseURL   string
	client    *http.Client
}

type UnsplashOption func(*UnsplashFinder)

// WithBaseURL points the finder at another API root, such as a test server.
func WithBaseURL(u string) UnsplashOption {
	return func(f *UnsplashFinder) { f.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(c *http.Client) UnsplashOption {
	return func(f *UnsplashFinder) { f.client = c }
}

func NewUnsplashFinder(accessKey string, opts ...UnsplashOption) *UnsplashFinder {
	f := &UnsplashFinder{
		accessKey: accessKey,
		baseURL:   DefaultUnsplashURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
			Small   string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

func (f *UnsplashFinder) FindPhoto(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrPhotoNotFound
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")
	params.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+f.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unsplash status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("unsplash decode: %w", err)
	}
	if len(out.Results) == 0 {
		return "", ErrPhotoNotFound
	}
	first := out.Results[0].URLs
	if first.Regular != "" {
		return first.Regular, nil
	}
	if first.Small != "" {
		return first.Small, nil
	}
	return "", ErrPhotoNotFound
}
