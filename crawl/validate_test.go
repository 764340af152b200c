package crawl

import (
	"context"
	"errors"
	"testing"

	"github.com/gaurav-prasanna/chapterpdf/config"
	"github.com/gaurav-prasanna/chapterpdf/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFetcher struct {
	html  string
	err   error
	calls []string
}

func (f *recordingFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	f.calls = append(f.calls, url)
	if f.err != nil {
		return nil, f.err
	}
	return &core.FetchResult{URL: url, StatusCode: 200, HTML: f.html}, nil
}

func TestValidate_DisallowedHostMakesNoRequest(t *testing.T) {
	f := &recordingFetcher{}
	v := NewValidator(config.Defaults().HostPattern(), f)

	err := v.Validate(context.Background(), "https://example.com/book")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidURL)
	assert.Empty(t, f.calls)
}

func TestValidate_Reachable(t *testing.T) {
	f := &recordingFetcher{html: "<html></html>"}
	v := NewValidator(config.Defaults().HostPattern(), f)

	require.NoError(t, v.Validate(context.Background(), "https://www.fanfiction.net/s/42"))
	assert.Equal(t, []string{"https://www.fanfiction.net/s/42"}, f.calls)
}

func TestValidate_Unreachable(t *testing.T) {
	cause := errors.New("unexpected status 503")
	f := &recordingFetcher{err: cause}
	v := NewValidator(config.Defaults().HostPattern(), f)

	err := v.Validate(context.Background(), "https://www.fanfiction.net/s/42")
	assert.ErrorIs(t, err, core.ErrUnreachable)
	assert.ErrorIs(t, err, cause)
}
