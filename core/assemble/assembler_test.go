package assemble

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/chapterpdf/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var headingRe = regexp.MustCompile(`<h1>Chapter (\d+)</h1>`)

func TestChapterHTML_WithForeword(t *testing.T) {
	got := ChapterHTML(2, "<section id=\"foreword\">note</section>", "<p>body</p>")
	want := "<h1>Chapter 2</h1>\n" +
		"<div class=\"foreword-box\"><section id=\"foreword\">note</section></div>\n" +
		"<p>body</p>\n"
	assert.Equal(t, want, got)
}

func TestChapterHTML_WithoutForeword(t *testing.T) {
	got := ChapterHTML(1, "", "<p>body</p>")
	assert.Equal(t, "<h1>Chapter 1</h1>\n<p>body</p>\n", got)
	assert.NotContains(t, got, ForewordClass)
}

func TestDocument_HeadingsInOrder(t *testing.T) {
	for _, r := range [][2]int{{1, 1}, {1, 5}, {3, 9}, {10, 12}} {
		start, end := r[0], r[1]
		t.Run(fmt.Sprintf("%d-%d", start, end), func(t *testing.T) {
			doc := New("body{}")
			for i := start; i <= end; i++ {
				require.NoError(t, doc.AddChapter(core.Chapter{Index: i, Body: "<p>x</p>"}))
			}

			matches := headingRe.FindAllStringSubmatch(doc.HTML(), -1)
			require.Len(t, matches, end-start+1)
			for j, m := range matches {
				assert.Equal(t, fmt.Sprint(start+j), m[1])
			}
			assert.Equal(t, end-start+1, doc.Chapters())
		})
	}
}

func TestDocument_SingleWrapper(t *testing.T) {
	doc := New("h1 { text-align: center; }")
	require.NoError(t, doc.AddChapter(core.Chapter{Index: 1, Foreword: "f", Body: "b1"}))
	require.NoError(t, doc.AddChapter(core.Chapter{Index: 2, Body: "b2"}))

	html := doc.HTML()
	for _, tag := range []string{"<html>", "</html>", "<head>", "<body>", "</body>", "<style>"} {
		assert.Equal(t, 1, strings.Count(html, tag), tag)
	}
	assert.Contains(t, html, "h1 { text-align: center; }")
	assert.Equal(t, 1, strings.Count(html, ForewordClass))
	assert.True(t, strings.Index(html, "b1") < strings.Index(html, "b2"))
}

func TestDocument_RejectsOutOfOrder(t *testing.T) {
	doc := New("")
	require.NoError(t, doc.AddChapter(core.Chapter{Index: 2}))
	assert.Error(t, doc.AddChapter(core.Chapter{Index: 2}))
	assert.Error(t, doc.AddChapter(core.Chapter{Index: 1}))
	assert.Equal(t, 1, doc.Chapters())
}

func TestDocument_Empty(t *testing.T) {
	html := New("").HTML()
	assert.NotContains(t, html, "<h1>")
	assert.Contains(t, html, "<body>")
}
