package ingest

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"daily-journal/internal/apperr"
)

const (
	// DefaultTimeout bounds a single page or thumbnail fetch.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxBytes caps how much of a response body is read.
	DefaultMaxBytes = 5 * 1024 * 1024

	defaultUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15"
)

// FetchResult is a downloaded response body with its media type.
type FetchResult struct {
	URL       *url.URL
	Body      []byte
	MediaType string
}

// Fetcher downloads pages and images with a hard deadline.
type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
	maxBytes  int64
}

// NewFetcher creates a fetcher. Zero values select the defaults.
func NewFetcher(timeout time.Duration, maxBytes int64) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		timeout:   timeout,
		maxBytes:  maxBytes,
	}
}

// NormalizeURL validates a user supplied URL, defaulting the scheme to https.
func NormalizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperr.UnsupportedFormat("url", fmt.Errorf("empty url"))
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, apperr.UnsupportedFormat("url", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, apperr.UnsupportedFormat("url", fmt.Errorf("unsupported scheme: %s", u.Scheme))
	}
	if u.Host == "" {
		return nil, apperr.UnsupportedFormat("url", fmt.Errorf("missing host"))
	}
	return u, nil
}

// Fetch performs a GET. Network errors, timeouts and non-2xx statuses are
// reported as *apperr.UnreachableError.
func (f *Fetcher) Fetch(ctx context.Context, u *url.URL) (*FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, apperr.Unreachable(u.String(), fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperr.Unreachable(u.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.Unreachable(u.String(), fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, apperr.Unreachable(u.String(), fmt.Errorf("read body: %w", err))
	}

	return &FetchResult{
		URL:       resp.Request.URL,
		Body:      body,
		MediaType: mediaType(resp.Header.Get("Content-Type"), body),
	}, nil
}

func mediaType(header string, body []byte) string {
	if header != "" {
		if mt, _, err := mime.ParseMediaType(header); err == nil {
			return mt
		}
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(body))
	return mt
}
