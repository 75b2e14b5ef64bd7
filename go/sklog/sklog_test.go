package sklog

import (
	"fmt"
	"testing"

	"github.com/lain9293/simple-lisp/go/sklog/sklogimpl"
	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	lines []string
}

func (c *captureLogger) Log(_ int, severity sklogimpl.Severity, format string, args ...interface{}) {
	msg := fmt.Sprint(args...)
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	c.lines = append(c.lines, severity.String()+": "+msg)
}

func (c *captureLogger) Flush() {}

func TestSetVerbose_TogglesDebug(t *testing.T) {
	c := &captureLogger{}
	SetLogger(c)
	defer SetVerbose(false)

	Debugf("hidden %d", 1)
	SetVerbose(true)
	Debugf("shown %d", 2)
	Info("info")
	Warningf("warn %s", "x")
	ErrorfWithDepth(0, "err %s", "y")

	assert.Equal(t, []string{"DEBUG: shown 2", "INFO: info", "WARNING: warn x", "ERROR: err y"}, c.lines)
}
