// Package render: headless Chrome engine.
// Prints the assembled HTML through Chrome's DevTools protocol, which
// honors the document's inline stylesheet.
package render

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const defaultChromeTimeout = 2 * time.Minute

// ChromeOptions configures a ChromeRenderer.
type ChromeOptions struct {
	// ExecPath overrides the browser binary; empty lets chromedp search.
	ExecPath string
	Timeout  time.Duration

	// Paper dimensions and margins in inches (A4 by default).
	PaperWidth  float64
	PaperHeight float64
	Margin      float64
}

// DefaultChromeOptions returns A4 with 0.4in margins.
func DefaultChromeOptions() ChromeOptions {
	return ChromeOptions{
		Timeout:     defaultChromeTimeout,
		PaperWidth:  8.27,
		PaperHeight: 11.69,
		Margin:      0.4,
	}
}

// ChromeRenderer renders HTML to PDF with headless Chrome.
type ChromeRenderer struct {
	opts ChromeOptions
	log  *zap.Logger
}

// NewChromeRenderer creates a ChromeRenderer.
func NewChromeRenderer(opts ChromeOptions, log *zap.Logger) *ChromeRenderer {
	def := DefaultChromeOptions()
	if opts.Timeout == 0 {
		opts.Timeout = def.Timeout
	}
	if opts.PaperWidth == 0 || opts.PaperHeight == 0 {
		opts.PaperWidth, opts.PaperHeight = def.PaperWidth, def.PaperHeight
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ChromeRenderer{opts: opts, log: log}
}

// Name returns the engine name.
func (r *ChromeRenderer) Name() string {
	return "chrome"
}

// Render writes html to a temporary file, loads it in headless Chrome and
// prints it to PDF.
func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	// A file:// URL avoids data URL size limits on long stories.
	tmpFile, err := os.CreateTemp("", "chapterpdf-*.html")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(html); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
	)
	if r.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			r.log.Debug(fmt.Sprintf("chromedp: "+format, args...))
		}),
	)
	defer browserCancel()

	start := time.Now()
	var pdfData []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfData, _, err = page.PrintToPDF().
				WithPaperWidth(r.opts.PaperWidth).
				WithPaperHeight(r.opts.PaperHeight).
				WithMarginTop(r.opts.Margin).
				WithMarginBottom(r.opts.Margin).
				WithMarginLeft(r.opts.Margin).
				WithMarginRight(r.opts.Margin).
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("printing to PDF: %w", err)
	}

	r.log.Debug("chrome print finished",
		zap.Int("html_bytes", len(html)),
		zap.Int("pdf_bytes", len(pdfData)),
		zap.Duration("duration", time.Since(start)),
	)
	return pdfData, nil
}
