// Package assemble concatenates chapters into one self-contained HTML
// document with an inline stylesheet.
package assemble

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/chapterpdf/core"
)

// ForewordClass is the CSS class of the box wrapping a chapter's foreword.
const ForewordClass = "foreword-box"

// Document accumulates chapters in ascending index order.
type Document struct {
	stylesheet string
	body       strings.Builder
	last       int
	chapters   int
}

// New creates an empty Document whose head embeds stylesheet.
func New(stylesheet string) *Document {
	return &Document{stylesheet: stylesheet}
}

// AddChapter appends ch. Indexes must be strictly increasing.
func (d *Document) AddChapter(ch core.Chapter) error {
	if ch.Index <= d.last {
		return fmt.Errorf("chapter %d added after chapter %d", ch.Index, d.last)
	}
	d.body.WriteString(ChapterHTML(ch.Index, ch.Foreword, ch.Body))
	d.last = ch.Index
	d.chapters++
	return nil
}

// Chapters returns the number of chapters added so far.
func (d *Document) Chapters() int {
	return d.chapters
}

// HTML returns the complete document.
func (d *Document) HTML() string {
	var b strings.Builder
	b.Grow(d.body.Len() + len(d.stylesheet) + 128)
	b.WriteString("<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	b.WriteString(d.stylesheet)
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(d.body.String())
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// ChapterHTML renders one chapter: a heading, the foreword box when
// foreword is non-empty, then the body.
func ChapterHTML(index int, foreword, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Chapter %d</h1>\n", index)
	if foreword != "" {
		fmt.Fprintf(&b, "<div class=%q>%s</div>\n", ForewordClass, foreword)
	}
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}
