// Package extract implements the Extractor interface.
// A chapter page carries up to two regions of interest: an optional
// foreword (author's note) and the chapter content. Each is located by a
// fixed selector and returned as serialized outer HTML.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/chapterpdf/core"
	"github.com/gaurav-prasanna/chapterpdf/crawl"
)

const (
	DefaultForewordSelector = "#foreword"
	DefaultContentSelector  = "#chapter-content"
)

// ChapterExtractor finds the foreword and chapter content of a page.
type ChapterExtractor struct {
	ForewordSelector string
	ContentSelector  string
}

// New creates a ChapterExtractor. Empty selectors fall back to the defaults.
func New(forewordSel, contentSel string) *ChapterExtractor {
	if forewordSel == "" {
		forewordSel = DefaultForewordSelector
	}
	if contentSel == "" {
		contentSel = DefaultContentSelector
	}
	return &ChapterExtractor{ForewordSelector: forewordSel, ContentSelector: contentSel}
}

// Extract parses html and returns the outer HTML of the first foreword
// element and the first content element. A missing element yields ""
// and is not an error.
func (e *ChapterExtractor) Extract(html string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("parsing HTML: %w", err)
	}

	foreword, err := outerHTML(doc, e.ForewordSelector)
	if err != nil {
		return "", "", err
	}
	body, err := outerHTML(doc, e.ContentSelector)
	if err != nil {
		return "", "", err
	}
	return foreword, body, nil
}

func outerHTML(doc *goquery.Document, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", nil
	}
	result, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", selector, err)
	}
	return result, nil
}

// FetchChapter fetches "{baseURL}/{index}" and extracts its regions.
// Nothing is retried; the first failure is returned.
func FetchChapter(ctx context.Context, fetcher core.Fetcher, extractor core.Extractor, baseURL string, index int) (*core.Chapter, error) {
	chapterURL := crawl.ChapterURL(baseURL, index)
	op := fmt.Sprintf("fetch chapter %d", index)

	result, err := fetcher.Fetch(ctx, chapterURL)
	if err != nil {
		return nil, core.NewError(core.KindUnreachable, op, chapterURL, err)
	}

	foreword, body, err := extractor.Extract(result.HTML)
	if err != nil {
		return nil, core.NewError(core.KindParse, op, chapterURL, err)
	}

	return &core.Chapter{Index: index, Foreword: foreword, Body: body}, nil
}
