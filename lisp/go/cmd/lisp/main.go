// package main is the lisp command line tool: it evaluates expressions,
// runs program files and hosts an interactive REPL.
package main

import (
	"fmt"
	"os"

	lispcli "github.com/lain9293/simple-lisp/lisp/go/cmd/lisp/cli"
)

func main() {
	if err := lispcli.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
