package cli

import (
	"context"
	"strconv"

	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/urfavecli"
	"github.com/lain9293/simple-lisp/lisp/go/lisp"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// tokensCmd holds the state for the `tokens` subcommand.
type tokensCmd struct {
	commonCmd
}

// TokensCommand returns a [*cli.Command] that prints the token stream of its
// input as a table.
func TokensCommand(g *globalCmd) *cli.Command {
	cmd := &tokensCmd{commonCmd: commonCmd{global: g}}
	return &cli.Command{
		Name:        "tokens",
		Description: "tokens prints the tokens the lexer produces for the input.",
		Usage:       "lisp tokens '(print \"a b\" 12)'",
		ArgsUsage:   "<expression> (or - for stdin)",
		Action:      cmd.action,
	}
}

func (cmd *tokensCmd) action(cliCtx *cli.Context) error {
	urfavecli.LogFlags(cliCtx)
	cmd.stdin = cliCtx.App.Reader
	cmd.stdout = cliCtx.App.Writer
	return cmd.tokens(cliCtx.Context, cliCtx.Args().Slice())
}

func (cmd *tokensCmd) tokens(_ context.Context, args []string) error {
	src, err := cmd.sourceText(args)
	if err != nil {
		return err
	}
	toks, err := lisp.Tokenize(src)
	if err != nil {
		return skerr.Wrap(err)
	}
	table := tablewriter.NewWriter(cmd.out())
	table.SetHeader([]string{"#", "Type", "Value", "Position"})
	table.SetAutoWrapText(false)
	for i, tok := range toks {
		table.Append([]string{
			strconv.Itoa(i),
			tok.Typ.String(),
			strconv.Quote(tok.Val),
			tok.Pos.String(),
		})
	}
	table.Render()
	return nil
}
