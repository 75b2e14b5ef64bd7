// Package config holds the settings of the lisp command line tool, read from
// an optional JSON5 file.
package config

import (
	"io"
	"os"

	"github.com/flynn/json5"
	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/util"
)

// Output formats for evaluated values.
const (
	OutputSExpr = "sexpr"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Outputs lists every supported output format.
var Outputs = []string{OutputSExpr, OutputJSON, OutputYAML}

// Config is the contents of a lisp config file. Fields missing from the file
// keep the value from Default().
type Config struct {
	// Prompt shown by the REPL before each expression.
	Prompt string `json:"prompt"`

	// ContinuationPrompt is shown while an expression is incomplete, e.g.
	// after an unclosed "(".
	ContinuationPrompt string `json:"continuation_prompt"`

	// HistoryFile is where the REPL keeps its line history. Empty disables
	// history.
	HistoryFile string `json:"history_file"`

	// Output is one of "sexpr", "json" or "yaml".
	Output string `json:"output"`

	// MaxDepth limits list nesting. 0 means no limit.
	MaxDepth int `json:"max_depth"`

	// Jobs is how many files `run` evaluates at once. 0 means no limit.
	Jobs int `json:"jobs"`

	// Color enables coloured REPL output.
	Color bool `json:"color"`
}

// Default returns the config used when no file is given.
func Default() *Config {
	return &Config{
		Prompt:             "lisp> ",
		ContinuationPrompt: "  ... ",
		Output:             OutputSExpr,
		Jobs:               4,
		Color:              true,
	}
}

// Load reads the JSON5 file at path on top of Default(). An empty path
// returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, skerr.Wrapf(err, "opening config %s", path)
	}
	defer util.Close(f)
	if err := Decode(f, cfg); err != nil {
		return nil, skerr.Wrapf(err, "reading config %s", path)
	}
	return cfg, nil
}

// Decode reads JSON5 from r into cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	if err := json5.NewDecoder(r).Decode(cfg); err != nil {
		return skerr.Wrap(err)
	}
	return cfg.Validate()
}

// Validate returns an error if any field holds an unusable value.
func (c *Config) Validate() error {
	if !ValidOutput(c.Output) {
		return skerr.Fmt("output must be one of %v, got %q", Outputs, c.Output)
	}
	if c.MaxDepth < 0 {
		return skerr.Fmt("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Jobs < 0 {
		return skerr.Fmt("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}

// ValidOutput reports whether s names a supported output format.
func ValidOutput(s string) bool {
	for _, o := range Outputs {
		if o == s {
			return true
		}
	}
	return false
}
