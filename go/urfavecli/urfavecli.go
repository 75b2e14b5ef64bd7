// Package urfavecli holds helpers for programs built on github.com/urfave/cli.
package urfavecli

import (
	"github.com/lain9293/simple-lisp/go/sklog"
	"github.com/urfave/cli/v2"
)

// LogFlags logs the value of every flag of the running command at debug
// level, one "Flags: --name=value" line per flag.
func LogFlags(c *cli.Context) {
	if c.Command == nil {
		return
	}
	for _, f := range c.Command.Flags {
		names := f.Names()
		if len(names) == 0 || names[0] == "help" {
			continue
		}
		sklog.Debugf("Flags: --%s=%v", names[0], c.Value(names[0]))
	}
}
