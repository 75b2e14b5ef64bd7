package cli

import (
	"context"
	"fmt"

	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/sklog"
	"github.com/lain9293/simple-lisp/go/urfavecli"
	"github.com/urfave/cli/v2"
)

// evalCmd holds the flag values for the `eval` subcommand, which executes a
// single expression given on the command line or on stdin.
type evalCmd struct {
	commonCmd
}

// EvalCommand returns a [*cli.Command] that executes one expression and
// prints its value.
func EvalCommand(g *globalCmd) *cli.Command {
	cmd := &evalCmd{commonCmd: commonCmd{global: g}}
	return &cli.Command{
		Name:        "eval",
		Description: "eval executes one expression and prints the resulting value.",
		Usage:       "lisp eval [--output sexpr|json|yaml] '(car (1 2 3))'",
		ArgsUsage:   "<expression> (or - for stdin)",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *evalCmd) action(cliCtx *cli.Context) error {
	urfavecli.LogFlags(cliCtx)
	if err := cmd.setup(cliCtx); err != nil {
		return err
	}
	return cmd.eval(cliCtx.Context, cliCtx.Args().Slice())
}

func (cmd *evalCmd) eval(ctx context.Context, args []string) error {
	src, err := cmd.sourceText(args)
	if err != nil {
		return err
	}
	sklog.DebugfCtx(ctx, "Executing %q", src)
	v, err := cmd.lispContext().Execute(src)
	if err != nil {
		return skerr.Wrap(err)
	}
	s, err := formatValue(v, cmd.output)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.out(), s)
	return skerr.Wrap(err)
}
