package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/sklog"
	"github.com/lain9293/simple-lisp/go/urfavecli"
	"github.com/lain9293/simple-lisp/go/util"
	"github.com/lain9293/simple-lisp/lisp/go/config"
	"github.com/lain9293/simple-lisp/lisp/go/lisp"
	"github.com/peterh/liner"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"github.com/urfave/cli/v2"
)

// REPL commands. Any other input line that starts with ':' and holds a
// single word is reported as an unknown command.
const (
	quitCommand = ":quit"
	helpCommand = ":help"
)

var replCommands = []string{helpCommand, quitCommand}

const replHelp = `Enter an expression, e.g. (cons (1 2) (3)). Lists left open continue
on the next line. Built-ins: print, car, cdr, cons.
  :help   show this message
  :quit   leave (Ctrl-D works too)`

// lineReader is the part of *liner.State the REPL loop uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// historyStore is the part of *liner.State that persists history.
type historyStore interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// replCmd holds the state for the `repl` subcommand.
type replCmd struct {
	commonCmd
	cfg *config.Config

	valueColor *color.Color
	errorColor *color.Color
}

// ReplCommand returns a [*cli.Command] that starts an interactive
// read-eval-print loop.
func ReplCommand(g *globalCmd) *cli.Command {
	cmd := &replCmd{commonCmd: commonCmd{global: g}}
	return &cli.Command{
		Name:        "repl",
		Description: "repl reads expressions line by line and prints their values. Unfinished expressions continue on the next line. Type :quit or Ctrl-D to leave.",
		Usage:       "lisp repl",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *replCmd) action(cliCtx *cli.Context) error {
	urfavecli.LogFlags(cliCtx)
	if err := cmd.setup(cliCtx); err != nil {
		return err
	}
	cmd.configure(cmd.global.config())

	line := liner.NewLiner()
	defer util.Close(line)
	line.SetCtrlCAborts(true)
	cmd.readHistory(line)
	defer cmd.writeHistory(line)
	return cmd.loop(cliCtx.Context, line)
}

func (cmd *replCmd) configure(cfg *config.Config) {
	cmd.cfg = cfg
	cmd.valueColor = color.New(color.FgGreen)
	cmd.errorColor = color.New(color.FgRed)
	if !cfg.Color {
		cmd.valueColor.DisableColor()
		cmd.errorColor.DisableColor()
	}
}

func (cmd *replCmd) readHistory(h historyStore) {
	if cmd.cfg.HistoryFile == "" {
		return
	}
	f, err := os.Open(cmd.cfg.HistoryFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			sklog.Warningf("Could not open history %s: %s", cmd.cfg.HistoryFile, err)
		}
		return
	}
	defer util.Close(f)
	if _, err := h.ReadHistory(f); err != nil {
		sklog.Warningf("Could not read history %s: %s", cmd.cfg.HistoryFile, err)
	}
}

func (cmd *replCmd) writeHistory(h historyStore) {
	if cmd.cfg.HistoryFile == "" {
		return
	}
	f, err := os.Create(cmd.cfg.HistoryFile)
	if err != nil {
		sklog.Warningf("Could not create history %s: %s", cmd.cfg.HistoryFile, err)
		return
	}
	defer util.Close(f)
	if _, err := h.WriteHistory(f); err != nil {
		sklog.Warningf("Could not write history %s: %s", cmd.cfg.HistoryFile, err)
	}
}

// loop reads until EOF or :quit. Evaluation errors are printed and the loop
// continues; only a failure to read input is returned.
func (cmd *replCmd) loop(ctx context.Context, in lineReader) error {
	lctx := cmd.lispContext()
	var pending []string
	for {
		prompt := cmd.cfg.Prompt
		if len(pending) > 0 {
			prompt = cmd.cfg.ContinuationPrompt
		}
		line, err := in.Prompt(prompt)
		if err == io.EOF {
			return nil
		}
		if err == liner.ErrPromptAborted {
			pending = nil
			continue
		}
		if err != nil {
			return skerr.Wrap(err)
		}
		if len(pending) == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if isReplCommand(trimmed) {
				switch trimmed {
				case quitCommand:
					return nil
				case helpCommand:
					fmt.Fprintln(cmd.out(), replHelp)
				default:
					cmd.errorColor.Fprintln(cmd.out(), unknownReplCommand(trimmed))
				}
				continue
			}
		}
		pending = append(pending, line)
		src := strings.Join(pending, "\n")
		vs, err := lctx.ExecuteAll(src)
		if lisp.IsIncomplete(err) {
			continue
		}
		pending = nil
		in.AppendHistory(src)
		if err != nil {
			sklog.DebugfCtx(ctx, "Error for %q: %s", src, err)
			cmd.errorColor.Fprintln(cmd.out(), err.Error())
			continue
		}
		for _, v := range vs {
			s, err := formatValue(v, cmd.output)
			if err != nil {
				return err
			}
			cmd.valueColor.Fprintln(cmd.out(), s)
		}
	}
}

func isReplCommand(line string) bool {
	return strings.HasPrefix(line, ":") && !strings.ContainsAny(line, " \t()\"")
}

// unknownReplCommand describes an unknown command, suggesting the closest
// known one if it is only a typo away.
func unknownReplCommand(line string) string {
	msg := fmt.Sprintf("unknown command %s, try %s", line, helpCommand)
	best, bestDist := "", 3
	for _, c := range replCommands {
		d := levenshtein.DistanceForStrings([]rune(line), []rune(c), levenshtein.DefaultOptions)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	if best != "" {
		msg = fmt.Sprintf("unknown command %s, did you mean %s?", line, best)
	}
	return msg
}
