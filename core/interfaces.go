// Package core defines the pipeline interfaces and shared types for chapterpdf.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Target describes one run: where the chapters live and where the PDF goes.
// Start and End are zero when not given on the command line.
type Target struct {
	BaseURL string
	Output  string
	Start   int
	End     int
}

// Chapter is one fetched chapter page. Foreword and Body hold the outer
// HTML of the matching elements, or "" when the page had none.
type Chapter struct {
	Index    int
	Foreword string
	Body     string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the foreword and chapter body out of a chapter page.
type Extractor interface {
	Extract(html string) (foreword, body string, err error)
}

// Renderer converts a complete HTML document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
	// Name identifies the engine in logs.
	Name() string
}
