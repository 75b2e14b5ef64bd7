package cli

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/urfavecli"
	"github.com/urfave/cli/v2"
)

// flag names
const (
	dumpFlagName = "dump"
)

// dumpConfig prints the raw fields of each node, without pointer addresses.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// parseCmd holds the flag values for the `parse` subcommand.
type parseCmd struct {
	commonCmd
	dump bool
}

// ParseCommand returns a [*cli.Command] that prints the parsed tree of its
// input.
func ParseCommand(g *globalCmd) *cli.Command {
	cmd := &parseCmd{commonCmd: commonCmd{global: g}}
	return &cli.Command{
		Name:        "parse",
		Description: "parse prints each expression in canonical form, or the full annotated tree with --dump.",
		Usage:       "lisp parse [--dump] '(cons (1) (2))'",
		ArgsUsage:   "<expression> (or - for stdin)",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *parseCmd) flags() []cli.Flag {
	fl := []cli.Flag{
		&cli.BoolFlag{
			Name:        dumpFlagName,
			Value:       false,
			Usage:       "dump the annotated tree, including positions",
			Destination: &cmd.dump,
		},
	}
	return append(fl, cmd.maxDepthFlag())
}

func (cmd *parseCmd) action(cliCtx *cli.Context) error {
	urfavecli.LogFlags(cliCtx)
	if err := cmd.setup(cliCtx); err != nil {
		return err
	}
	return cmd.parse(cliCtx.Context, cliCtx.Args().Slice())
}

func (cmd *parseCmd) parse(_ context.Context, args []string) error {
	src, err := cmd.sourceText(args)
	if err != nil {
		return err
	}
	nodes, err := cmd.lispContext().ParseAll(src)
	if err != nil {
		return skerr.Wrap(err)
	}
	w := cmd.out()
	for _, n := range nodes {
		if cmd.dump {
			dumpConfig.Fdump(w, n)
			continue
		}
		if _, err := fmt.Fprintln(w, n.String()); err != nil {
			return skerr.Wrap(err)
		}
	}
	return nil
}
