// Package cmd implements the chapterpdf CLI using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chapterpdf <url> [output.pdf]",
	Short: "chapterpdf — download a story's chapters into a single PDF",
	Long: `chapterpdf fetches the chapters of a story, one page per chapter at
"<url>/<n>", extracts each chapter's foreword and content, and renders
them together as one PDF.

Examples:
  chapterpdf https://www.fanfiction.net/s/42 story.pdf
  chapterpdf https://www.fanfiction.net/s/42 story.pdf --start 3 --end 10
  chapterpdf https://www.fanfiction.net/s/42 --engine fpdf`,
	Args:          cobra.RangeArgs(1, 2),
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
