package urfavecli

import (
	"os"
	"strings"
	"testing"

	"github.com/lain9293/simple-lisp/go/loggingsyncbuffer"
	"github.com/lain9293/simple-lisp/go/sklog"
	"github.com/lain9293/simple-lisp/go/sklog/stdlogging"
	"github.com/lain9293/simple-lisp/go/testutils/unittest"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v2"
)

func TestLogFlags(t *testing.T) {
	unittest.SmallTest(t)

	logsBuffer := loggingsyncbuffer.New()

	// Send logs to a buffer.
	sklog.SetLogger(stdlogging.New(logsBuffer))
	sklog.SetVerbose(true)
	defer func() {
		sklog.SetLogger(stdlogging.New(os.Stderr))
		sklog.SetVerbose(false)
	}()

	app := &cli.App{
		Name: "testapp",
		Commands: []*cli.Command{
			{
				Name: "my-command",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "boolNotPassedIn"},
					&cli.BoolFlag{Name: "bool"},
					&cli.IntFlag{Name: "int"},
					&cli.StringFlag{Name: "string"},
				},
				Action: func(c *cli.Context) error {
					LogFlags(c)
					return nil
				},
			},
		},
	}

	err := app.Run([]string{
		"testapp",
		"my-command",
		"--bool",
		"--int=65",
		"--string=sexpr",
	})
	require.NoError(t, err)

	flagLines := []string{}
	for _, line := range strings.Split(logsBuffer.String(), "\n") {
		if strings.Contains(line, "Flags:") {
			// Strip off everything before Flags: which contains timestamps and
			// other stuff that changes.
			flagLines = append(flagLines, strings.Split(line, "Flags:")[1])
		}
	}

	expected := []string{
		" --boolNotPassedIn=false",
		" --bool=true",
		" --int=65",
		" --string=sexpr",
	}
	require.Equal(t, expected, flagLines)
}
