// Package cmd: convert command.
// The root command orchestrates the pipeline:
// validate → discover → fetch/extract/encode → assemble → render → write.
//
// It handles flag validation and renderer selection.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gaurav-prasanna/chapterpdf/config"
	"github.com/gaurav-prasanna/chapterpdf/core"
	"github.com/gaurav-prasanna/chapterpdf/core/extract"
	"github.com/gaurav-prasanna/chapterpdf/core/fetch"
	"github.com/gaurav-prasanna/chapterpdf/core/normalize"
	"github.com/gaurav-prasanna/chapterpdf/core/output"
	"github.com/gaurav-prasanna/chapterpdf/core/render"
	"github.com/gaurav-prasanna/chapterpdf/internal/ui"
	"github.com/gaurav-prasanna/chapterpdf/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Flag variables.
var (
	flagStart       int
	flagEnd         int
	flagEngine      string
	flagAllowedHost string
	flagRate        float64
	flagTimeout     time.Duration
	flagUserAgent   string
	flagChromePath  string
	flagNoProgress  bool
	flagVerbose     bool
)

func init() {
	def := config.Defaults()
	flags := rootCmd.Flags()

	// Chapter range.
	flags.IntVar(&flagStart, "start", 0, "First chapter to fetch (default 1)")
	flags.IntVar(&flagEnd, "end", 0, "Last chapter to fetch (default: number of chapters found)")

	// Rendering.
	flags.StringVar(&flagEngine, "engine", def.Engine, "PDF engine: chrome (headless Chrome) or fpdf (pure Go, basic layout)")
	flags.StringVar(&flagChromePath, "chrome-path", "", "Path to the Chrome/Chromium binary (default: search PATH)")

	// Network.
	flags.StringVar(&flagAllowedHost, "allowed-host", def.AllowedHost, "Host accepted in <url>, without www.")
	flags.Float64Var(&flagRate, "rate", def.RateLimit, "Maximum requests per second (0 = unlimited)")
	flags.DurationVar(&flagTimeout, "timeout", def.Timeout, "Timeout for each HTTP request")
	flags.StringVar(&flagUserAgent, "user-agent", def.UserAgent, "User-Agent header sent with every request")

	// Output.
	flags.BoolVar(&flagNoProgress, "no-progress", false, "Disable the progress bar")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func runConvert(cmd *cobra.Command, args []string) error {
	rawURL := args[0]
	outPath := output.DefaultPath(rawURL)
	if len(args) == 2 {
		outPath = args[1]
	}

	// --- Validate flags ---
	if err := validateRange(flagStart, flagEnd, cmd.Flags().Changed("start"), cmd.Flags().Changed("end")); err != nil {
		return err
	}

	cfg := config.Defaults()
	cfg.AllowedHost = flagAllowedHost
	cfg.Engine = flagEngine
	cfg.ChromePath = flagChromePath
	cfg.RateLimit = flagRate
	cfg.Timeout = flagTimeout
	cfg.UserAgent = flagUserAgent
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := ui.NewLogger(flagVerbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Initialize pipeline components.
	fetcher := fetch.New(fetch.Options{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		Logger:    log,
	})
	extractor := extract.New(cfg.ForewordSelector, cfg.ContentSelector)
	renderer, err := selectRenderer(cfg, log)
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, fetcher, extractor, renderer, log)
	if !flagNoProgress && !flagVerbose {
		p.WithProgress(func(total int) pipeline.Tracker {
			return ui.NewProgress(os.Stderr, total)
		})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	target := core.Target{
		BaseURL: rawURL,
		Output:  outPath,
		Start:   flagStart,
		End:     flagEnd,
	}
	if err := p.Run(ctx, target); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", outPath)
	return nil
}

// validateRange rejects chapter bounds that were given explicitly but are
// not positive, or that are out of order.
func validateRange(start, end int, startSet, endSet bool) error {
	if startSet && start < 1 {
		return core.NewError(core.KindInvalidRange, "flags", "", fmt.Errorf("--start must be at least 1 (got %d)", start))
	}
	if endSet && end < 1 {
		return core.NewError(core.KindInvalidRange, "flags", "", fmt.Errorf("--end must be at least 1 (got %d)", end))
	}
	if start > 0 && end > 0 && start > end {
		return core.NewError(core.KindInvalidRange, "flags", "", fmt.Errorf("--start %d is after --end %d", start, end))
	}
	return nil
}

// selectRenderer creates the Renderer for the configured engine.
func selectRenderer(cfg *config.Config, log *zap.Logger) (core.Renderer, error) {
	switch cfg.Engine {
	case config.EngineChrome:
		opts := render.DefaultChromeOptions()
		opts.ExecPath = cfg.ChromePath
		return render.NewChromeRenderer(opts, log), nil
	case config.EngineFPDF:
		return render.NewFPDFRenderer(normalize.New()), nil
	default:
		return nil, fmt.Errorf("unknown render engine %q", cfg.Engine)
	}
}
