// Package output handles file naming and writing for chapterpdf.
// When no output path is given, the file name is derived from the story
// URL (e.g. www_fanfiction_net_s_42.pdf).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Extension of every file chapterpdf writes.
const Extension = ".pdf"

// WriteFile writes data to path, creating parent directories as needed.
// A failed write may leave a partial file behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the output file name for rawURL in the current
// directory.
func DefaultPath(rawURL string) string {
	return filenameFromURL(rawURL) + Extension
}

// filenameFromURL converts a URL into a flat filename.
// Example: https://www.fanfiction.net/s/42 → www_fanfiction_net_s_42
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		// Fallback: sanitize the raw string.
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
