package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/lain9293/simple-lisp/go/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataPath(t *testing.T, name string) string {
	td, err := testutils.TestDataDir()
	require.NoError(t, err)
	return filepath.Join(td, name)
}

func TestLoad_EmptyPath_ReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_AllFields_Success(t *testing.T) {
	cfg, err := Load(testDataPath(t, "full.json5"))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Prompt:             "> ",
		ContinuationPrompt: ". ",
		HistoryFile:        "/tmp/lisp_history",
		Output:             OutputJSON,
		MaxDepth:           64,
		Jobs:               2,
		Color:              false,
	}, cfg)
}

func TestLoad_MissingFields_KeepDefaults(t *testing.T) {
	cfg, err := Load(testDataPath(t, "partial.json5"))
	require.NoError(t, err)
	want := Default()
	want.Output = OutputYAML
	assert.Equal(t, want, cfg)
}

func TestLoad_BadOutput_Error(t *testing.T) {
	_, err := Load(testDataPath(t, "bad_output.json5"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `got "xml"`)
}

func TestLoad_MissingFile_Error(t *testing.T) {
	_, err := Load(testDataPath(t, "nope.json5"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening config")
}

func TestDecode_Malformed_Error(t *testing.T) {
	cfg := Default()
	require.Error(t, Decode(strings.NewReader("{output: "), cfg))
}

func TestValidate_Negative_Error(t *testing.T) {
	cfg := Default()
	cfg.Jobs = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxDepth = -3
	assert.Error(t, cfg.Validate())
}

func TestValidOutput(t *testing.T) {
	for _, o := range Outputs {
		assert.True(t, ValidOutput(o), o)
	}
	assert.False(t, ValidOutput(""))
	assert.False(t, ValidOutput("SEXPR"))
}
