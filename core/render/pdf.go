// Package render: pure-Go PDF engine.
// Converts the assembled HTML to Markdown and lays it out with gofpdf.
// Handles headings, paragraphs, lists and foreword blockquotes; images
// and arbitrary CSS are not rendered.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Normalizer converts HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// FPDFRenderer renders a chapter document with gofpdf. It needs no
// external browser.
type FPDFRenderer struct {
	normalizer Normalizer
}

// NewFPDFRenderer creates an FPDFRenderer.
func NewFPDFRenderer(n Normalizer) *FPDFRenderer {
	return &FPDFRenderer{normalizer: n}
}

// Name returns the engine name.
func (r *FPDFRenderer) Name() string {
	return "fpdf"
}

// Render converts the HTML document into PDF bytes.
func (r *FPDFRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	markdown, err := r.normalizer.Normalize(html)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	lines := strings.Split(markdown, "\n")
	first := true
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Skip empty lines (add spacing instead).
		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		// Headings. Every chapter after the first starts a new page.
		if strings.HasPrefix(trimmed, "#") {
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			text := strings.TrimSpace(trimmed[level:])
			if level == 1 && !first {
				pdf.AddPage()
			}
			first = false
			renderHeading(pdf, tr(cleanInlineMarkdown(text)), level)
			continue
		}

		// Foreword blockquotes: shaded, bordered cells.
		if strings.HasPrefix(trimmed, ">") {
			text := strings.TrimSpace(strings.TrimLeft(trimmed, "> "))
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetFillColor(240, 240, 240)
			pdf.SetDrawColor(204, 204, 204)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(text)), "LR", "L", true)
			continue
		}

		// List items.
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			pdf.SetFont("Helvetica", "", 11)
			text := "• " + cleanInlineMarkdown(strings.TrimSpace(trimmed[2:]))
			pdf.MultiCell(0, 5.5, tr(text), "", "L", false)
			continue
		}

		// Numbered list items.
		if numberedItem.MatchString(trimmed) {
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5.5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
			continue
		}

		// Regular paragraph text.
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5.5, tr(cleanInlineMarkdown(line)), "", "J", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderHeading sets the font size based on heading level and writes text.
// Level 1 headings are centered.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	align := "L"
	if level == 1 {
		align = "C"
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", align, false)
	pdf.Ln(2)
}

var (
	numberedItem = regexp.MustCompile(`^\d+\.\s`)
	italicMarker = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCode   = regexp.MustCompile("`([^`]+)`")
	linkSyntax   = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	escapedChar  = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()#+\-.!|>])`)
)

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	// Remove bold markers.
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	// Remove italic markers (but not inside words like don't).
	text = italicMarker.ReplaceAllString(text, " $1 ")
	// Remove inline code markers.
	text = inlineCode.ReplaceAllString(text, "$1")
	// Remove link syntax, keep text.
	text = linkSyntax.ReplaceAllString(text, "$1")
	// Drop Markdown escapes.
	text = escapedChar.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
