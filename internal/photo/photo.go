// Package photo looks up a representative photo for a destination from an
// Unsplash-style search API. Results are cached in memory for the life of
// the process, keyed by destination. Any failure yields a placeholder image;
// errors never reach the caller.
package photo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the public Unsplash API.
const DefaultBaseURL = "https://api.unsplash.com"

// DefaultMaxBytes bounds one response body when Config.MaxBytes is unset.
const DefaultMaxBytes = 10 << 20

// Image is a fetched photo, or the placeholder.
type Image struct {
	Data        []byte
	ContentType string
	Placeholder bool
}

// Config configures a Service.
type Config struct {
	// BaseURL of the search API; DefaultBaseURL when empty.
	BaseURL string
	// AccessKey is sent as "Authorization: Client-ID <key>". Without a key
	// every lookup returns the placeholder.
	AccessKey string
	// HTTPClient used for both requests; http.DefaultClient when nil.
	HTTPClient *http.Client
	// Timeout bounds one complete lookup (search plus download).
	// Defaults to 15 seconds.
	Timeout time.Duration
	// MaxBytes bounds each response body. A larger body fails the lookup.
	// Defaults to DefaultMaxBytes.
	MaxBytes int64
}

// Service fetches and caches destination photos.
type Service struct {
	baseURL   string
	accessKey string
	client    *http.Client
	timeout   time.Duration
	maxBytes  int64
	log       *slog.Logger

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]Image
}

// New constructs a Service. A nil logger falls back to slog.Default().
func New(cfg Config, log *slog.Logger) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		accessKey: cfg.AccessKey,
		client:    cfg.HTTPClient,
		timeout:   cfg.Timeout,
		maxBytes:  cfg.MaxBytes,
		log:       log,
		cache:     make(map[string]Image),
	}
}

// Lookup returns the photo for destination. Cached photos are returned
// without touching the network. Concurrent lookups for the same destination
// share a single fetch, which runs to completion (or its timeout) even if
// the caller's context is cancelled. Failures are not cached.
func (s *Service) Lookup(ctx context.Context, destination string) Image {
	if img, ok := s.cached(destination); ok {
		return img
	}
	if s.accessKey == "" {
		return Placeholder()
	}

	v, _, _ := s.group.Do(destination, func() (any, error) {
		if img, ok := s.cached(destination); ok {
			return img, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		img, err := s.fetch(fetchCtx, destination)
		if err != nil {
			s.log.WarnContext(ctx, "destination photo unavailable; using placeholder",
				"destination", destination,
				"error", err,
			)
			return Placeholder(), nil
		}

		s.mu.Lock()
		s.cache[destination] = img
		s.mu.Unlock()
		return img, nil
	})
	return v.(Image)
}

// Cached reports how many destinations currently have a cached photo.
func (s *Service) Cached() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

func (s *Service) cached(destination string) (Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.cache[destination]
	return img, ok
}

// searchResponse is the subset of the search payload we read.
type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// fetch runs the two requests: search for the destination, then download
// the first result's "regular" rendition.
func (s *Service) fetch(ctx context.Context, destination string) (Image, error) {
	q := url.Values{}
	q.Set("query", destination)
	q.Set("per_page", "1")
	searchURL := s.baseURL + "/search/photos?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return Image{}, fmt.Errorf("photo.Service.fetch: build search request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)
	req.Header.Set("Accept-Version", "v1")

	body, _, err := s.do(req)
	if err != nil {
		return Image{}, fmt.Errorf("photo.Service.fetch: search: %w", err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return Image{}, fmt.Errorf("photo.Service.fetch: decode search response: %w", err)
	}
	if len(sr.Results) == 0 || sr.Results[0].URLs.Regular == "" {
		return Image{}, errors.New("photo.Service.fetch: no results")
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, sr.Results[0].URLs.Regular, nil)
	if err != nil {
		return Image{}, fmt.Errorf("photo.Service.fetch: build image request: %w", err)
	}
	data, contentType, err := s.do(req)
	if err != nil {
		return Image{}, fmt.Errorf("photo.Service.fetch: download: %w", err)
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return Image{}, fmt.Errorf("photo.Service.fetch: unexpected content type %q", contentType)
	}
	return Image{Data: data, ContentType: contentType}, nil
}

// do executes req and returns the body of a 2xx response.
func (s *Service) do(req *http.Request) ([]byte, string, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	// One byte past the limit tells a full body from a cut one.
	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, "", fmt.Errorf("response body exceeds %d bytes", s.maxBytes)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
