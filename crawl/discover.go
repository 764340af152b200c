// Package crawl discovers how many chapters a story has and validates
// the URLs the pipeline is allowed to fetch.
package crawl

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/chapterpdf/core"
)

// DefaultChapterLinkSelector matches the anchors listing a story's chapters.
const DefaultChapterLinkSelector = "a.chapter-link"

// Discovery is the outcome of chapter-count discovery.
type Discovery struct {
	// Links is the raw number of chapter links found on the index page.
	Links int
	// Count is the chapter count to use; never below 1.
	Count int
	// Fallback is set when no links were found and Count was forced to 1.
	Fallback bool
}

// DiscoverChapterCount fetches the index page at baseURL and counts its
// chapter links. Zero links is treated as a single-chapter story.
func DiscoverChapterCount(ctx context.Context, fetcher core.Fetcher, baseURL, selector string) (Discovery, error) {
	result, err := fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return Discovery{}, core.NewError(core.KindUnreachable, "discover", baseURL, err)
	}

	n, err := CountChapters(result.HTML, selector)
	if err != nil {
		return Discovery{}, core.NewError(core.KindParse, "discover", baseURL, err)
	}

	if n == 0 {
		return Discovery{Links: 0, Count: 1, Fallback: true}, nil
	}
	return Discovery{Links: n, Count: n}, nil
}

// CountChapters counts the elements in html that match selector.
func CountChapters(html, selector string) (int, error) {
	if selector == "" {
		selector = DefaultChapterLinkSelector
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc.Find(selector).Length(), nil
}
