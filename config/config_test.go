package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty host", func(c *Config) { c.AllowedHost = " " }},
		{"host with path", func(c *Config) { c.AllowedHost = "example.com/books" }},
		{"empty content selector", func(c *Config) { c.ContentSelector = "" }},
		{"negative timeout", func(c *Config) { c.Timeout = -1 }},
		{"negative rate", func(c *Config) { c.RateLimit = -0.5 }},
		{"unknown engine", func(c *Config) { c.Engine = "wkhtmltopdf" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestHostPattern(t *testing.T) {
	cfg := Defaults()
	cfg.AllowedHost = "fiction.example.org"
	re := cfg.HostPattern()

	for _, ok := range []string{
		"https://fiction.example.org",
		"http://fiction.example.org/s/123",
		"https://www.fiction.example.org/s/123/",
	} {
		assert.True(t, re.MatchString(ok), ok)
	}
	for _, bad := range []string{
		"ftp://fiction.example.org/s/1",
		"https://example.com/book",
		"https://fictionXexample.org/s/1",
		"https://fiction.example.org.evil.com/s/1",
		"https://evil.com/fiction.example.org",
	} {
		assert.False(t, re.MatchString(bad), bad)
	}
}

func TestHostPatternIgnoresWWWInConfig(t *testing.T) {
	cfg := Defaults()
	cfg.AllowedHost = "www.Fiction.example.org"
	assert.True(t, cfg.HostPattern().MatchString("https://fiction.example.org/s/1"))
}
