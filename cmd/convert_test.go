package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/chapterpdf/config"
	"github.com/gaurav-prasanna/chapterpdf/core"
	"github.com/gaurav-prasanna/chapterpdf/core/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidateRange(t *testing.T) {
	assert.NoError(t, validateRange(0, 0, false, false))
	assert.NoError(t, validateRange(2, 0, true, false))
	assert.NoError(t, validateRange(2, 2, true, true))

	assert.ErrorIs(t, validateRange(0, 0, true, false), core.ErrInvalidRange)
	assert.ErrorIs(t, validateRange(0, -4, false, true), core.ErrInvalidRange)
	assert.ErrorIs(t, validateRange(5, 3, true, true), core.ErrInvalidRange)
}

func TestSelectRenderer(t *testing.T) {
	cfg := config.Defaults()

	r, err := selectRenderer(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &render.ChromeRenderer{}, r)

	cfg.Engine = config.EngineFPDF
	r, err = selectRenderer(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &render.FPDFRenderer{}, r)

	cfg.Engine = "pdfkit"
	_, err = selectRenderer(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestRootRejectsDisallowedHost(t *testing.T) {
	out := filepath.Join(t.TempDir(), "story.pdf")
	rootCmd.SetArgs([]string{"https://example.com/book", out, "--no-progress"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidURL)
	assert.NoFileExists(t, out)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "chapterpdf dev\n", buf.String())
}
