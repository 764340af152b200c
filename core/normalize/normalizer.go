// Package normalize converts the assembled HTML document into Markdown,
// the input format of the pure-Go PDF engine.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts an HTML document into Markdown. The head is dropped
// and foreword boxes become blockquotes so they stay distinguishable
// from the chapter text.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("head, script, style").Remove()
	doc.Find("div.foreword-box").Each(func(_ int, s *goquery.Selection) {
		inner, err := s.Html()
		if err != nil {
			return
		}
		s.ReplaceWithHtml("<blockquote>" + inner + "</blockquote>")
	})

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serializing body: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
