package structuredlogging

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/lain9293/simple-lisp/go/sklog/sklogimpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage_Short_SingleChunk(t *testing.T) {
	assert.Equal(t, []string{"(car (1 2 3))"}, slices.Collect(splitMessage("(car (1 2 3))")))
}

func TestSplitMessage_LongLine_SplitAtLimit(t *testing.T) {
	msg := strings.Repeat("a", maxLogMessageBytes+10)
	parts := slices.Collect(splitMessage(msg))
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], maxLogMessageBytes)
	assert.Len(t, parts[1], 10)
}

func TestSplitMessage_ManyLines_KeepsLinesIntact(t *testing.T) {
	line := strings.Repeat("b", maxLogMessageBytes/2)
	msg := line + "\n" + line + "\n" + line
	parts := slices.Collect(splitMessage(msg))
	require.Len(t, parts, 2)
	assert.Equal(t, line+"\n"+line, parts[0])
	assert.Equal(t, line, parts[1])
}

func TestConvertSeverity(t *testing.T) {
	for _, s := range sklogimpl.AllSeverities {
		assert.NotEqual(t, "Default", convertSeverity(s).String(), s.String())
	}
}

func TestWithContext_RoundTrip(t *testing.T) {
	ctx := WithContext(context.Background(), Context{Labels: map[string]string{"source": "a.lisp"}})
	c := getCtx(ctx)
	require.NotNil(t, c)
	assert.Equal(t, "a.lisp", c.Labels["source"])
	assert.Nil(t, getCtx(context.Background()))
}

func TestLogCtx_WritesJSONEntry(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(context.Background(), &buf, map[string]string{"app": "lisp"})
	require.NoError(t, err)

	ctx := WithContext(context.Background(), Context{Labels: map[string]string{"source": "a.lisp"}})
	l.LogCtx(ctx, 0, sklogimpl.Warning, "evaluated %d forms", 2)
	l.Flush()

	out := buf.String()
	assert.Contains(t, out, "evaluated 2 forms")
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "a.lisp")
}
