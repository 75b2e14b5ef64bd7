package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/lain9293/simple-lisp/lisp/go/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	got := ParseCommand(&globalCmd{})
	require.NotNil(t, got)
	assert.Equal(t, "parse", got.Name)
}

func TestParseCommand_Flags_NoOutput(t *testing.T) {
	var names []string
	for _, f := range ParseCommand(&globalCmd{}).Flags {
		names = append(names, f.Names()[0])
	}
	assert.ElementsMatch(t, []string{dumpFlagName, maxDepthFlagName}, names)
}

func TestParseCommand_parse_Canonical(t *testing.T) {
	var out bytes.Buffer
	cmd := parseCmd{commonCmd: commonCmd{stdout: &out}}
	require.NoError(t, cmd.parse(context.Background(), []string{`(cons   (1)
	   "a b")  x`}))
	assert.Equal(t, "(cons (1) \"a b\")\nx\n", out.String())
}

func TestParseCommand_parse_Dump(t *testing.T) {
	var out bytes.Buffer
	cmd := parseCmd{commonCmd: commonCmd{stdout: &out}, dump: true}
	require.NoError(t, cmd.parse(context.Background(), []string{"(car (1))"}))
	assert.Contains(t, out.String(), `"car"`)
	assert.Contains(t, out.String(), "Children:")
	assert.Contains(t, out.String(), "Line:")
	assert.NotContains(t, out.String(), "0xc")
}

func TestParseCommand_parse_Unbalanced_Error(t *testing.T) {
	var out bytes.Buffer
	cmd := parseCmd{commonCmd: commonCmd{stdout: &out}}
	err := cmd.parse(context.Background(), []string{"(car (1)"})
	var parseErr *lisp.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, lisp.ParseUnbalanced, parseErr.Kind)
	assert.Empty(t, out.String())
}
