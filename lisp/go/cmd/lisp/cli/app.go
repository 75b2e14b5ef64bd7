// Package cli implements the subcommands of the lisp tool.
package cli

import (
	"io"
	"os"

	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/sklog"
	"github.com/lain9293/simple-lisp/go/sklog/structuredlogging"
	"github.com/lain9293/simple-lisp/lisp/go/config"
	"github.com/urfave/cli/v2"
)

// flag names
const (
	configFlagName  = "config"
	verboseFlagName = "verbose"
	logJSONFlagName = "log-json"
)

// globalCmd holds the app-wide flags and the config loaded from them. It is
// shared by every subcommand.
type globalCmd struct {
	configPath string
	verbose    bool
	logJSON    bool

	cfg *config.Config
}

// NewApp returns the lisp [*cli.App] with all subcommands registered.
func NewApp() *cli.App {
	g := &globalCmd{}
	return &cli.App{
		Name:  "lisp",
		Usage: "lisp evaluates S-expressions built from numbers, strings, lists and the print, car, cdr and cons built-ins.",
		Flags: g.flags(),
		Before: g.before,
		After:  g.after,
		Commands: []*cli.Command{
			EvalCommand(g),
			RunCommand(g),
			ParseCommand(g),
			TokensCommand(g),
			ReplCommand(g),
		},
	}
}

func (g *globalCmd) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        configFlagName,
			Value:       "",
			Usage:       "JSON5 config file",
			Destination: &g.configPath,
		}, &cli.BoolFlag{
			Name:        verboseFlagName,
			Value:       false,
			Usage:       "log debug messages",
			Destination: &g.verbose,
		}, &cli.BoolFlag{
			Name:        logJSONFlagName,
			Value:       false,
			Usage:       "write logs to stderr as structured JSON",
			Destination: &g.logJSON,
		},
	}
}

func (g *globalCmd) before(cliCtx *cli.Context) error {
	sklog.SetVerbose(g.verbose)
	if g.logJSON {
		var w io.Writer = os.Stderr
		if cliCtx.App.ErrWriter != nil {
			w = cliCtx.App.ErrWriter
		}
		l, err := structuredlogging.New(cliCtx.Context, w, map[string]string{"app": "lisp"})
		if err != nil {
			return skerr.Wrap(err)
		}
		sklog.SetLogger(l)
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return skerr.Wrap(err)
	}
	g.cfg = cfg
	sklog.Debugf("Loaded config %q: %+v", g.configPath, *cfg)
	return nil
}

func (g *globalCmd) after(_ *cli.Context) error {
	sklog.Flush()
	return nil
}

// config returns the loaded config, or the defaults if before has not run.
func (g *globalCmd) config() *config.Config {
	if g == nil || g.cfg == nil {
		return config.Default()
	}
	return g.cfg
}
