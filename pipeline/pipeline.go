// Package pipeline orchestrates a chapterpdf run:
// validate → discover → fetch/extract/encode each chapter → assemble → render → write.
//
// Every stage runs sequentially and the first error aborts the run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/chapterpdf/config"
	"github.com/gaurav-prasanna/chapterpdf/core"
	"github.com/gaurav-prasanna/chapterpdf/core/assemble"
	"github.com/gaurav-prasanna/chapterpdf/core/encode"
	"github.com/gaurav-prasanna/chapterpdf/core/extract"
	"github.com/gaurav-prasanna/chapterpdf/core/output"
	"github.com/gaurav-prasanna/chapterpdf/crawl"
	"go.uber.org/zap"
)

// Tracker receives one Increment per fetched chapter and a final Close.
type Tracker interface {
	Increment()
	Close()
}

// Pipeline holds everything a run needs. It keeps no state between runs.
type Pipeline struct {
	cfg       *config.Config
	fetcher   core.Fetcher
	extractor core.Extractor
	renderer  core.Renderer
	log       *zap.Logger
	progress  func(total int) Tracker
}

// New creates a Pipeline. A nil logger discards all logs.
func New(cfg *config.Config, fetcher core.Fetcher, extractor core.Extractor, renderer core.Renderer, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: extractor,
		renderer:  renderer,
		log:       log,
	}
}

// WithProgress installs a tracker factory called once the chapter range
// is known.
func (p *Pipeline) WithProgress(fn func(total int) Tracker) *Pipeline {
	p.progress = fn
	return p
}

// Run builds the document for t, renders it and writes the PDF to t.Output.
func (p *Pipeline) Run(ctx context.Context, t core.Target) error {
	html, err := p.Build(ctx, t)
	if err != nil {
		return err
	}

	p.log.Info("rendering PDF",
		zap.String("engine", p.renderer.Name()),
		zap.Int("html_bytes", len(html)),
	)
	data, err := p.renderer.Render(ctx, html)
	if err != nil {
		return core.NewError(core.KindRender, "render", "", err)
	}

	if err := output.WriteFile(t.Output, data); err != nil {
		return core.NewError(core.KindRender, "write", "", err)
	}
	p.log.Info("PDF written", zap.String("path", t.Output), zap.Int("bytes", len(data)))
	return nil
}

// Build validates t, fetches every chapter in range and returns the
// assembled HTML document.
func (p *Pipeline) Build(ctx context.Context, t core.Target) (string, error) {
	if t.Start < 0 || t.End < 0 {
		return "", core.NewError(core.KindInvalidRange, "range", "",
			fmt.Errorf("chapter bounds must be positive (start=%d, end=%d)", t.Start, t.End))
	}
	if t.Start > 0 && t.End > 0 && t.Start > t.End {
		return "", core.NewError(core.KindInvalidRange, "range", "",
			fmt.Errorf("start %d is after end %d", t.Start, t.End))
	}

	validator := crawl.NewValidator(p.cfg.HostPattern(), p.fetcher)
	if err := validator.Validate(ctx, t.BaseURL); err != nil {
		return "", err
	}
	p.log.Debug("target validated", zap.String("url", t.BaseURL))

	discovery, err := crawl.DiscoverChapterCount(ctx, p.fetcher, t.BaseURL, p.cfg.ChapterLinkSelector)
	if err != nil {
		return "", err
	}
	if discovery.Fallback {
		p.log.Warn("no chapter links found; treating story as a single chapter",
			zap.String("url", t.BaseURL),
			zap.String("selector", p.cfg.ChapterLinkSelector),
		)
	}

	start, end, err := ResolveRange(t.Start, t.End, discovery.Count)
	if err != nil {
		return "", err
	}
	p.log.Info("fetching chapters",
		zap.Int("discovered", discovery.Count),
		zap.Int("start", start),
		zap.Int("end", end),
	)

	var tracker Tracker
	if p.progress != nil {
		tracker = p.progress(end - start + 1)
		defer tracker.Close()
	}

	doc := assemble.New(p.cfg.Stylesheet)
	for i := start; i <= end; i++ {
		ch, err := extract.FetchChapter(ctx, p.fetcher, p.extractor, t.BaseURL, i)
		if err != nil {
			return "", err
		}
		if ch.Foreword == "" && ch.Body == "" {
			p.log.Warn("chapter page had no content", zap.Int("chapter", i))
		}

		ch.Foreword = encode.NonASCII(ch.Foreword)
		ch.Body = encode.NonASCII(ch.Body)
		if err := doc.AddChapter(*ch); err != nil {
			return "", fmt.Errorf("assemble: %w", err)
		}

		p.log.Debug("chapter added",
			zap.Int("chapter", i),
			zap.Bool("foreword", ch.Foreword != ""),
			zap.Int("body_bytes", len(ch.Body)),
		)
		if tracker != nil {
			tracker.Increment()
		}
	}

	return doc.HTML(), nil
}

// ResolveRange applies the defaults to the requested bounds: start
// defaults to 1 and end to the discovered chapter count. Zero means
// "not given".
func ResolveRange(start, end, discovered int) (int, int, error) {
	if start < 0 || end < 0 {
		return 0, 0, core.NewError(core.KindInvalidRange, "range", "",
			fmt.Errorf("chapter bounds must be positive (start=%d, end=%d)", start, end))
	}
	if start == 0 {
		start = 1
	}
	if end == 0 {
		end = discovered
	}
	if end < 1 {
		end = 1
	}
	if start > end {
		return 0, 0, core.NewError(core.KindInvalidRange, "range", "",
			fmt.Errorf("start %d is after end %d", start, end))
	}
	return start, end, nil
}
