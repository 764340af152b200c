// Package fetch implements the Fetcher interface.
// It performs plain sequential HTTP GET requests, optionally rate-limited.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/chapterpdf/core"
	"go.uber.org/zap"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "chapterpdf/1.0 (https://github.com/gaurav-prasanna/chapterpdf)"
)

// Options configures an HTTPFetcher. Zero values select the defaults.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	// RateLimit is requests per second; zero means unlimited.
	RateLimit float64
	Client    *http.Client
	Logger    *zap.Logger
}

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client  *http.Client
	ua      string
	limiter *RateLimiter
	log     *zap.Logger
}

// New creates an HTTPFetcher.
func New(opts Options) *HTTPFetcher {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPFetcher{
		client:  client,
		ua:      ua,
		limiter: NewRateLimiter(opts.RateLimit),
		log:     log,
	}
}

// Fetch retrieves the HTML content of the given URL. Any non-2xx status
// is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	f.log.Debug("GET",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
