package crawl

import (
	"context"
	"regexp"

	"github.com/gaurav-prasanna/chapterpdf/core"
)

// Validator confirms that a URL belongs to the allowed host and answers.
type Validator struct {
	pattern *regexp.Regexp
	fetcher core.Fetcher
}

// NewValidator creates a Validator for the given host pattern.
func NewValidator(pattern *regexp.Regexp, fetcher core.Fetcher) *Validator {
	return &Validator{pattern: pattern, fetcher: fetcher}
}

// CheckURL matches rawURL against the host pattern without touching the
// network.
func (v *Validator) CheckURL(rawURL string) error {
	if !IsAllowedHost(rawURL, v.pattern) {
		return core.NewError(core.KindInvalidURL, "validate", rawURL, nil)
	}
	return nil
}

// Validate runs CheckURL and then issues one GET to rawURL, which must
// succeed with a 2xx status.
func (v *Validator) Validate(ctx context.Context, rawURL string) error {
	if err := v.CheckURL(rawURL); err != nil {
		return err
	}
	if _, err := v.fetcher.Fetch(ctx, rawURL); err != nil {
		return core.NewError(core.KindUnreachable, "validate", rawURL, err)
	}
	return nil
}
