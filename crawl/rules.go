// Package crawl: URL rules.
// Provides helpers to validate target URLs against the allowed host and
// to derive chapter URLs from a base URL.
package crawl

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// IsAllowedHost reports whether rawURL matches the host pattern.
func IsAllowedHost(rawURL string, pattern *regexp.Regexp) bool {
	return pattern.MatchString(strings.TrimSpace(rawURL))
}

// NormalizeURL strips fragments and trailing slashes so that chapter
// numbers can be appended with a single "/".
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return strings.TrimRight(rawURL, "/")
	}

	// Remove fragment.
	parsed.Fragment = ""

	// Remove trailing slashes, root included.
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	parsed.RawPath = ""

	return parsed.String()
}

// ChapterURL returns "{base}/{index}".
func ChapterURL(baseURL string, index int) string {
	return NormalizeURL(baseURL) + "/" + strconv.Itoa(index)
}
