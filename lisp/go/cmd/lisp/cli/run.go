package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/sklog"
	"github.com/lain9293/simple-lisp/go/sklog/structuredlogging"
	"github.com/lain9293/simple-lisp/go/timer"
	"github.com/lain9293/simple-lisp/go/urfavecli"
	"github.com/lain9293/simple-lisp/go/util"
	"github.com/lain9293/simple-lisp/lisp/go/lisp"
	"github.com/urfave/cli/v2"
)

// flag names
const (
	jobsFlagName = "jobs"
)

// runCmd holds the flag values for the `run` subcommand, which executes every
// top-level expression of one or more program files.
type runCmd struct {
	commonCmd
	jobs int
}

// RunCommand returns a [*cli.Command] that executes program files
// concurrently and prints their values in argument order.
func RunCommand(g *globalCmd) *cli.Command {
	cmd := &runCmd{commonCmd: commonCmd{global: g}}
	return &cli.Command{
		Name:        "run",
		Description: "run executes every expression in each file. Files are evaluated concurrently, results are printed in the order the files were given.",
		Usage:       "lisp run [--jobs N] a.lisp b.lisp",
		ArgsUsage:   "<file>... (- for stdin)",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *runCmd) flags() []cli.Flag {
	fl := []cli.Flag{
		&cli.IntFlag{
			Name:        jobsFlagName,
			Value:       0,
			Usage:       "how many files to evaluate at once, 0 for no limit",
			Destination: &cmd.jobs,
		},
	}
	return append(fl, cmd.commonCmd.flags()...)
}

func (cmd *runCmd) action(cliCtx *cli.Context) error {
	urfavecli.LogFlags(cliCtx)
	if err := cmd.setup(cliCtx); err != nil {
		return err
	}
	if !cliCtx.IsSet(jobsFlagName) {
		cmd.jobs = cmd.global.config().Jobs
	}
	return cmd.run(cliCtx.Context, cliCtx.Args().Slice())
}

// run evaluates files and prints the values of those that succeeded. The
// returned error aggregates every failed file.
func (cmd *runCmd) run(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return skerr.Fmt("at least one file is required")
	}
	if cmd.jobs < 0 {
		return skerr.Fmt("--%s must not be negative, got %d", jobsFlagName, cmd.jobs)
	}
	lctx := cmd.lispContext()
	// Stdin can only be read once, so it is read before fanning out.
	var stdinText string
	for _, f := range files {
		if f == util.StdinName {
			s, err := util.ReadFileOrStdin(util.StdinName, cmd.in())
			if err != nil {
				return err
			}
			stdinText = s
			break
		}
	}

	results := make([][]lisp.Value, len(files))
	g := util.NewNamedErrGroup(cmd.jobs)
	for i, f := range files {
		fileCtx := structuredlogging.WithContext(ctx, structuredlogging.Context{
			Labels: map[string]string{"file": f},
		})
		g.Go(f, func() error {
			defer timer.NewCtx(fileCtx, "evaluating "+f).Stop()
			src := stdinText
			if f != util.StdinName {
				var err error
				if src, err = util.ReadFileOrStdin(f, nil); err != nil {
					return err
				}
			}
			sklog.DebugfCtx(fileCtx, "Read %s", humanize.Bytes(uint64(len(src))))
			vs, err := lctx.ExecuteAll(src)
			if err != nil {
				sklog.DebugfCtx(fileCtx, "Failed: %s", err)
				return err
			}
			sklog.DebugfCtx(fileCtx, "Evaluated %d expressions", len(vs))
			results[i] = vs
			return nil
		})
	}
	groupErr := g.Wait()

	w := cmd.out()
	for _, vs := range results {
		for _, v := range vs {
			s, err := formatValue(v, cmd.output)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, s); err != nil {
				return skerr.Wrap(err)
			}
		}
	}
	return groupErr
}
