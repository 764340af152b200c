// Package config holds the values that parameterize a chapterpdf run.
// Nothing here is read from disk or the environment: the CLI fills a
// Config from its flags and hands it to the pipeline.
package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Render engines.
const (
	EngineChrome = "chrome"
	EngineFPDF   = "fpdf"
)

// DefaultStylesheet is embedded in the head of every generated document.
const DefaultStylesheet = `body {
    font-family: Arial, sans-serif;
}
h1 {
    text-align: center;
}
.foreword-box {
    background-color: #f0f0f0;
    padding: 10px;
    margin: 20px 0;
    border: 1px solid #ccc;
    line-height: 0.8;
}`

// Config controls which site is accepted, how pages are read and how the
// result is rendered.
type Config struct {
	// AllowedHost is the only host accepted by the validator, without
	// the optional "www." prefix.
	AllowedHost string

	ChapterLinkSelector string
	ForewordSelector    string
	ContentSelector     string

	Stylesheet string

	UserAgent string
	Timeout   time.Duration
	// RateLimit is the maximum number of requests per second. Zero
	// disables limiting.
	RateLimit float64

	Engine     string
	ChromePath string
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		AllowedHost:         "fanfiction.net",
		ChapterLinkSelector: "a.chapter-link",
		ForewordSelector:    "#foreword",
		ContentSelector:     "#chapter-content",
		Stylesheet:          DefaultStylesheet,
		UserAgent:           "chapterpdf/1.0 (https://github.com/gaurav-prasanna/chapterpdf)",
		Timeout:             30 * time.Second,
		Engine:              EngineChrome,
	}
}

// Validate reports the first setting that would make a run impossible.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AllowedHost) == "" {
		return fmt.Errorf("allowed host must not be empty")
	}
	if strings.Contains(c.AllowedHost, "/") {
		return fmt.Errorf("allowed host %q must not contain a path", c.AllowedHost)
	}
	for name, sel := range map[string]string{
		"chapter link selector": c.ChapterLinkSelector,
		"foreword selector":     c.ForewordSelector,
		"content selector":      c.ContentSelector,
	} {
		if strings.TrimSpace(sel) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	switch c.Engine {
	case EngineChrome, EngineFPDF:
	default:
		return fmt.Errorf("unknown render engine %q (want %s or %s)", c.Engine, EngineChrome, EngineFPDF)
	}
	return nil
}

// HostPattern compiles the URL pattern accepted for AllowedHost:
// scheme://[www.]host[/path].
func (c *Config) HostPattern() *regexp.Regexp {
	host := strings.TrimPrefix(strings.ToLower(c.AllowedHost), "www.")
	return regexp.MustCompile(`^https?://(www\.)?` + regexp.QuoteMeta(host) + `(/.*)?$`)
}
