package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/util"
	"github.com/lain9293/simple-lisp/lisp/go/config"
	"github.com/lain9293/simple-lisp/lisp/go/lisp"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// flag names shared by several subcommands
const (
	outputFlagName   = "output"
	maxDepthFlagName = "max-depth"
)

// commonCmd holds the flags and I/O shared by the subcommands. Flags that are
// not given on the command line fall back to the config file.
type commonCmd struct {
	global   *globalCmd
	output   string
	maxDepth int

	stdin  io.Reader
	stdout io.Writer
}

func (cmd *commonCmd) flags() []cli.Flag {
	return []cli.Flag{cmd.outputFlag(), cmd.maxDepthFlag()}
}

func (cmd *commonCmd) outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        outputFlagName,
		Value:       config.OutputSExpr,
		Usage:       "output format for values: " + strings.Join(config.Outputs, ", "),
		Destination: &cmd.output,
	}
}

func (cmd *commonCmd) maxDepthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:        maxDepthFlagName,
		Value:       0,
		Usage:       "maximum list nesting, 0 for no limit",
		Destination: &cmd.maxDepth,
	}
}

// setup resolves config fallbacks and the app's I/O streams.
func (cmd *commonCmd) setup(cliCtx *cli.Context) error {
	cfg := cmd.global.config()
	if !cliCtx.IsSet(outputFlagName) {
		cmd.output = cfg.Output
	}
	if !cliCtx.IsSet(maxDepthFlagName) {
		cmd.maxDepth = cfg.MaxDepth
	}
	if !config.ValidOutput(cmd.output) {
		return skerr.Fmt("--%s must be one of %v, got %q", outputFlagName, config.Outputs, cmd.output)
	}
	cmd.stdin = cliCtx.App.Reader
	cmd.stdout = cliCtx.App.Writer
	return nil
}

func (cmd *commonCmd) in() io.Reader {
	if cmd.stdin == nil {
		return os.Stdin
	}
	return cmd.stdin
}

func (cmd *commonCmd) out() io.Writer {
	if cmd.stdout == nil {
		return os.Stdout
	}
	return cmd.stdout
}

func (cmd *commonCmd) lispContext() *lisp.Context {
	return lisp.NewContext(lisp.WithMaxDepth(cmd.maxDepth))
}

// formatValue renders v in the given output format, without a trailing
// newline.
func formatValue(v lisp.Value, output string) (string, error) {
	switch output {
	case config.OutputJSON:
		b, err := json.Marshal(v)
		if err != nil {
			return "", skerr.Wrap(err)
		}
		return string(b), nil
	case config.OutputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", skerr.Wrap(err)
		}
		return strings.TrimSuffix(string(b), "\n"), nil
	case config.OutputSExpr, "":
		return v.String(), nil
	}
	return "", skerr.Fmt("unknown output format %q", output)
}

// sourceText returns args joined by spaces, or stdin when args is empty or
// a single "-".
func (cmd *commonCmd) sourceText(args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == util.StdinName) {
		return util.ReadFileOrStdin(util.StdinName, cmd.in())
	}
	return strings.Join(args, " "), nil
}
