package ui

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Progress reports chapter fetches. A nil *Progress does nothing.
type Progress struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// NewProgress starts a bar of total chapters written to w.
func NewProgress(w io.Writer, total int) *Progress {
	p := mpb.New(
		mpb.WithWidth(52),
		mpb.WithOutput(w),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	bar := p.New(int64(total),
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name("Chapters  "),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			decor.CountersNoUnit(" | %d/%d", decor.WCSyncWidth),
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
		),
	)
	return &Progress{p: p, bar: bar}
}

// Increment marks one chapter as done.
func (pr *Progress) Increment() {
	if pr == nil {
		return
	}
	pr.bar.Increment()
}

// Close stops the bar, leaving it on screen. It must be called exactly
// once, whether or not every chapter completed.
func (pr *Progress) Close() {
	if pr == nil {
		return
	}
	if !pr.bar.Completed() {
		pr.bar.Abort(false)
	}
	pr.p.Wait()
}
